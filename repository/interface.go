package repository

import (
	"context"

	"github.com/athh15/vef2-hop1/models"
)

// ListParams narrows and orders a product listing.
type ListParams struct {
	CategoryID int
	Search     string
	Descending bool
	Offset     int
	Limit      int
}

// ProductRepo defines the persistence operations used by the product service.
type ProductRepo interface {
	List(ctx context.Context, params ListParams) ([]models.Product, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product, columns []string) error
	Update(ctx context.Context, id int, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int) (*models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id int, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	SetAdmin(ctx context.Context, id int, admin bool) (*models.User, error)
}

type CartRepo interface {
	InsertLine(ctx context.Context, line *models.ProductOrder) error
	LinesByUser(ctx context.Context, userID int) ([]models.ProductOrder, error)
	OrdersByUser(ctx context.Context, userID int) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
}
