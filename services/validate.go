package services

import (
	"unicode/utf8"

	"github.com/athh15/vef2-hop1/models"
)

// ProductInput is a candidate product. Pointer fields distinguish an absent
// field from a zero value; an empty string counts as absent in patch mode.
type ProductInput struct {
	CategoryID *int     `json:"categoryId"`
	Title      *string  `json:"title"`
	Price      *float64 `json:"price"`
	About      *string  `json:"about"`
	Img        *string  `json:"img"`
}

type CategoryInput struct {
	Title *string `json:"title"`
}

func isEmptyString(s *string) bool {
	return s == nil || *s == ""
}

// ValidateProduct checks a candidate product against the field rules and
// returns the violations in field order, empty when the candidate is
// acceptable. In patch mode the required check is skipped for fields absent
// from the payload; a present field is still range-checked. The img rule runs
// unconditionally in both modes.
func ValidateProduct(in ProductInput, patching bool) []models.FieldError {
	var errors []models.FieldError

	if !patching || !isEmptyString(in.Title) {
		if !validTitle(in.Title) {
			errors = append(errors, models.FieldError{
				Field:   "title",
				Message: "Title must be a string of length 1 to 128 characters",
			})
		}
	}

	if !patching || in.CategoryID != nil {
		if in.CategoryID == nil || *in.CategoryID < 0 {
			errors = append(errors, models.FieldError{
				Field:   "categoryId",
				Message: "Category must be a number greater than or equal to 0",
			})
		}
	}

	if !patching || in.Price != nil {
		if in.Price == nil || *in.Price < 0 {
			errors = append(errors, models.FieldError{
				Field:   "price",
				Message: "Price must be a number greater than or equal to 0",
			})
		}
	}

	if !patching || !isEmptyString(in.About) {
		if isEmptyString(in.About) {
			errors = append(errors, models.FieldError{
				Field:   "about",
				Message: "About must be a non-empty string",
			})
		}
	}

	if in.Img == nil {
		errors = append(errors, models.FieldError{
			Field:   "img",
			Message: "Must be a string",
		})
	}

	return errors
}

// ValidateCategory applies the title rule only.
func ValidateCategory(in CategoryInput, patching bool) []models.FieldError {
	var errors []models.FieldError

	if !patching || !isEmptyString(in.Title) {
		if !validTitle(in.Title) {
			errors = append(errors, models.FieldError{
				Field:   "title",
				Message: "Title must be a string of length 1 to 128 characters",
			})
		}
	}

	return errors
}

// validTitle measures in characters, not bytes, so multibyte titles up to
// 128 characters pass the same way they fit the varchar(128) column.
func validTitle(s *string) bool {
	if s == nil {
		return false
	}
	n := utf8.RuneCountInString(*s)
	return n >= 1 && n <= 128
}
