package repository

import (
	"context"
	"errors"

	"github.com/athh15/vef2-hop1/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, params ListParams) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if params.CategoryID > 0 {
		q = q.Where("category_id = ?", params.CategoryID)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		q = q.Where("(title LIKE ? OR about LIKE ?)", pattern, pattern)
	}

	order := "created ASC"
	if params.Descending {
		order = "created DESC"
	}
	q = q.Order(order)

	if params.Limit > 0 {
		q = q.Offset(params.Offset).Limit(params.Limit)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Insert writes only the supplied columns so that omitted fields keep their
// database defaults.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product, columns []string) error {
	columns = append(columns, "Created", "Updated")
	return r.db.WithContext(ctx).Select(columns).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, id int, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	return result.RowsAffected, result.Error
}
