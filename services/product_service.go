package services

import (
	"context"

	"github.com/athh15/vef2-hop1/models"
	"github.com/athh15/vef2-hop1/repository"
)

// ProductResult is the envelope returned by every mutating product call.
type ProductResult struct {
	Status Status
	Errors []models.FieldError
	Item   *models.Product
}

// ProductAPI is the surface consumed by the product controller.
type ProductAPI interface {
	List(ctx context.Context, params repository.ListParams) ([]models.Product, error)
	Read(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, in ProductInput) (ProductResult, error)
	Update(ctx context.Context, id int, in ProductInput) (ProductResult, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ProductService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

// List returns products matching the given filters, ordered by creation time.
// When both a category and search text are supplied, rows must match the
// category AND contain the search text in title or about.
func (s *ProductService) List(ctx context.Context, params repository.ListParams) ([]models.Product, error) {
	return s.repo.List(ctx, params)
}

func (s *ProductService) Read(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and sanitizes the candidate, then inserts only the columns
// that were actually supplied.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (ProductResult, error) {
	if errs := ValidateProduct(in, false); len(errs) > 0 {
		return ProductResult{Status: StatusInvalid, Errors: errs}, nil
	}

	product := models.Product{
		CategoryID: *in.CategoryID,
		Title:      sanitize(*in.Title),
	}
	columns := []string{"CategoryID", "Title"}

	if in.Price != nil {
		product.Price = *in.Price
		columns = append(columns, "Price")
	}
	if !isEmptyString(in.About) {
		product.About = sanitize(*in.About)
		columns = append(columns, "About")
	}
	if !isEmptyString(in.Img) {
		product.Img = sanitize(*in.Img)
		columns = append(columns, "Img")
	}

	if err := s.repo.Insert(ctx, &product, columns); err != nil {
		return ProductResult{}, err
	}

	return ProductResult{Status: StatusOK, Item: &product}, nil
}

// Update patches only the supplied fields; it never overwrites the full row.
func (s *ProductService) Update(ctx context.Context, id int, in ProductInput) (ProductResult, error) {
	if errs := ValidateProduct(in, true); len(errs) > 0 {
		return ProductResult{Status: StatusInvalid, Errors: errs}, nil
	}

	updates := map[string]interface{}{}
	if !isEmptyString(in.Title) {
		updates["title"] = sanitize(*in.Title)
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if !isEmptyString(in.About) {
		updates["about"] = sanitize(*in.About)
	}
	if in.Img != nil {
		updates["img"] = sanitize(*in.Img)
	}

	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return ProductResult{}, err
	}
	if rows == 0 {
		return ProductResult{Status: StatusNotFound}, nil
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProductResult{}, err
	}
	return ProductResult{Status: StatusOK, Item: item}, nil
}

// Delete reports true iff exactly one row was removed.
func (s *ProductService) Delete(ctx context.Context, id int) (bool, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}
