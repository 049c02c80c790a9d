package repository

import (
	"context"

	"github.com/athh15/vef2-hop1/models"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) InsertLine(ctx context.Context, line *models.ProductOrder) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *CartRepository) LinesByUser(ctx context.Context, userID int) ([]models.ProductOrder, error) {
	var lines []models.ProductOrder
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created ASC").Find(&lines).Error
	return lines, err
}

func (r *CartRepository) OrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created ASC").Find(&orders).Error
	return orders, err
}

func (r *CartRepository) AllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("created ASC").Find(&orders).Error
	return orders, err
}
