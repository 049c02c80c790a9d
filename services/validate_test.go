package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func validProductInput() ProductInput {
	return ProductInput{
		CategoryID: intPtr(1),
		Title:      strPtr("Widget"),
		Price:      floatPtr(9.99),
		About:      strPtr("A widget"),
		Img:        strPtr("widget.png"),
	}
}

func errorFields(t *testing.T, in ProductInput, patching bool) []string {
	t.Helper()
	var got []string
	for _, e := range ValidateProduct(in, patching) {
		got = append(got, e.Field)
	}
	return got
}

func TestValidateProductCreate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, ValidateProduct(validProductInput(), false))
	})

	t.Run("Missing Title", func(t *testing.T) {
		in := validProductInput()
		in.Title = nil
		assert.Equal(t, []string{"title"}, errorFields(t, in, false))
	})

	t.Run("Empty Title", func(t *testing.T) {
		in := validProductInput()
		in.Title = strPtr("")
		assert.Equal(t, []string{"title"}, errorFields(t, in, false))
	})

	t.Run("Title Too Long", func(t *testing.T) {
		in := validProductInput()
		in.Title = strPtr(strings.Repeat("a", 129))
		assert.Equal(t, []string{"title"}, errorFields(t, in, false))
	})

	t.Run("Title At Limit", func(t *testing.T) {
		in := validProductInput()
		in.Title = strPtr(strings.Repeat("a", 128))
		assert.Empty(t, ValidateProduct(in, false))
	})

	t.Run("Multibyte Title Is Measured In Characters", func(t *testing.T) {
		in := validProductInput()
		in.Title = strPtr(strings.Repeat("á", 100))
		assert.Empty(t, ValidateProduct(in, false))
	})

	t.Run("Multibyte Title Over Limit", func(t *testing.T) {
		in := validProductInput()
		in.Title = strPtr(strings.Repeat("á", 129))
		assert.Equal(t, []string{"title"}, errorFields(t, in, false))
	})

	t.Run("Negative CategoryID", func(t *testing.T) {
		in := validProductInput()
		in.CategoryID = intPtr(-1)
		assert.Equal(t, []string{"categoryId"}, errorFields(t, in, false))
	})

	t.Run("Negative Price", func(t *testing.T) {
		in := validProductInput()
		in.Price = floatPtr(-0.01)
		assert.Equal(t, []string{"price"}, errorFields(t, in, false))
	})

	t.Run("Missing Img", func(t *testing.T) {
		in := validProductInput()
		in.Img = nil
		assert.Equal(t, []string{"img"}, errorFields(t, in, false))
	})

	t.Run("Everything Missing Reports In Field Order", func(t *testing.T) {
		got := errorFields(t, ProductInput{}, false)
		assert.Equal(t, []string{"title", "categoryId", "price", "about", "img"}, got)
	})
}

func TestValidateProductPatch(t *testing.T) {
	t.Run("Absent Fields Are Not Required", func(t *testing.T) {
		in := ProductInput{Img: strPtr("widget.png")}
		assert.Empty(t, ValidateProduct(in, true))
	})

	t.Run("Empty String Counts As Absent", func(t *testing.T) {
		in := ProductInput{Title: strPtr(""), Img: strPtr("widget.png")}
		assert.Empty(t, ValidateProduct(in, true))
	})

	t.Run("Present Title Is Still Range Checked", func(t *testing.T) {
		in := ProductInput{Title: strPtr(strings.Repeat("a", 129)), Img: strPtr("widget.png")}
		assert.Equal(t, []string{"title"}, errorFields(t, in, true))
	})

	t.Run("Present Negative Price Is Rejected", func(t *testing.T) {
		in := ProductInput{Price: floatPtr(-1), Img: strPtr("widget.png")}
		assert.Equal(t, []string{"price"}, errorFields(t, in, true))
	})

	t.Run("Img Is Required Even When Patching", func(t *testing.T) {
		in := ProductInput{Title: strPtr("Widget")}
		assert.Equal(t, []string{"img"}, errorFields(t, in, true))
	})
}

func TestValidateCategory(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, ValidateCategory(CategoryInput{Title: strPtr("Tools")}, false))
	})

	t.Run("Missing Title On Create", func(t *testing.T) {
		errs := ValidateCategory(CategoryInput{}, false)
		assert.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
	})

	t.Run("Absent Title On Patch", func(t *testing.T) {
		assert.Empty(t, ValidateCategory(CategoryInput{}, true))
	})

	t.Run("Too Long Title On Patch", func(t *testing.T) {
		errs := ValidateCategory(CategoryInput{Title: strPtr(strings.Repeat("a", 129))}, true)
		assert.Len(t, errs, 1)
	})

	t.Run("Multibyte Title At Limit", func(t *testing.T) {
		assert.Empty(t, ValidateCategory(CategoryInput{Title: strPtr(strings.Repeat("æ", 128))}, false))
	})
}
