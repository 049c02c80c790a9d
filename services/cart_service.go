package services

import (
	"context"

	"github.com/athh15/vef2-hop1/models"
	"github.com/athh15/vef2-hop1/repository"
)

// CartInput is a candidate cart line. The client never supplies a total.
type CartInput struct {
	ProductID *int `json:"product"`
	Quantity  *int `json:"quantity"`
}

// CartResult carries the created line together with the product snapshot the
// total was computed from.
type CartResult struct {
	Status  Status
	Errors  []models.FieldError
	Line    *models.ProductOrder
	Product *models.Product
}

type CartAPI interface {
	AddToCart(ctx context.Context, in CartInput, userID int) (CartResult, error)
	GetCart(ctx context.Context, userID int) ([]models.ProductOrder, error)
	GetOrders(ctx context.Context, userID int, isAdmin bool) ([]models.Order, error)
}

type CartService struct {
	carts    repository.CartRepo
	products repository.ProductRepo
}

func NewCartService(carts repository.CartRepo, products repository.ProductRepo) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddToCart validates the line, re-reads the product's current price and
// computes the total server-side as price times quantity, then persists the
// line. A missing product is a field-level validation error, not a failure.
func (s *CartService) AddToCart(ctx context.Context, in CartInput, userID int) (CartResult, error) {
	var errs []models.FieldError

	if in.ProductID == nil || *in.ProductID <= 0 {
		errs = append(errs, models.FieldError{
			Field:   "product",
			Message: "Product must be a number greater than 0",
		})
	}
	if in.Quantity == nil || *in.Quantity < 0 {
		errs = append(errs, models.FieldError{
			Field:   "quantity",
			Message: "Quantity must be a number greater than or equal to 0",
		})
	}
	if len(errs) > 0 {
		return CartResult{Status: StatusInvalid, Errors: errs}, nil
	}

	product, err := s.products.FindByID(ctx, *in.ProductID)
	if err != nil {
		return CartResult{}, err
	}
	if product == nil {
		return CartResult{
			Status: StatusInvalid,
			Errors: []models.FieldError{{
				Field:   "product",
				Message: "Product does not exist",
			}},
		}, nil
	}

	line := models.ProductOrder{
		ProductID: product.ID,
		Quantity:  *in.Quantity,
		UserID:    userID,
		Total:     product.Price * float64(*in.Quantity),
	}
	if err := s.carts.InsertLine(ctx, &line); err != nil {
		return CartResult{}, err
	}

	return CartResult{Status: StatusOK, Line: &line, Product: product}, nil
}

// GetCart returns the caller's own cart lines only.
func (s *CartService) GetCart(ctx context.Context, userID int) ([]models.ProductOrder, error) {
	return s.carts.LinesByUser(ctx, userID)
}

// GetOrders returns every order for an admin and only the caller's own
// otherwise.
func (s *CartService) GetOrders(ctx context.Context, userID int, isAdmin bool) ([]models.Order, error) {
	if isAdmin {
		return s.carts.AllOrders(ctx)
	}
	return s.carts.OrdersByUser(ctx, userID)
}
