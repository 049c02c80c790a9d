package services

import (
	"context"
	"testing"

	"github.com/athh15/vef2-hop1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCartRepo struct{ mock.Mock }

func (m *MockCartRepo) InsertLine(ctx context.Context, line *models.ProductOrder) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepo) LinesByUser(ctx context.Context, userID int) ([]models.ProductOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductOrder), args.Error(1)
}

func (m *MockCartRepo) OrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockCartRepo) AllOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()
	widget := &models.Product{ID: 3, Title: "Widget", Price: 9.99}

	t.Run("Success Computes Total From Stored Price", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		mockProducts := new(MockProductRepo)
		service := NewCartService(mockCarts, mockProducts)

		mockProducts.On("FindByID", ctx, 3).Return(widget, nil).Once()
		mockCarts.On("InsertLine", ctx, mock.Anything).Return(nil).Once()

		result, err := service.AddToCart(ctx, CartInput{ProductID: intPtr(3), Quantity: intPtr(4)}, 11)

		assert.NoError(t, err)
		assert.Equal(t, StatusOK, result.Status)
		assert.InDelta(t, 39.96, result.Line.Total, 0.0001)
		assert.Equal(t, 11, result.Line.UserID)
		assert.Equal(t, widget, result.Product)
		mockCarts.AssertExpectations(t)
	})

	t.Run("Missing Product Is A Validation Error", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		mockProducts := new(MockProductRepo)
		service := NewCartService(mockCarts, mockProducts)

		mockProducts.On("FindByID", ctx, 999999).Return(nil, nil).Once()

		result, err := service.AddToCart(ctx, CartInput{ProductID: intPtr(999999), Quantity: intPtr(1)}, 11)

		assert.NoError(t, err)
		assert.Equal(t, StatusInvalid, result.Status)
		assert.Equal(t, "product", result.Errors[0].Field)
		mockCarts.AssertNotCalled(t, "InsertLine", mock.Anything, mock.Anything)
	})

	t.Run("Negative Quantity", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		mockProducts := new(MockProductRepo)
		service := NewCartService(mockCarts, mockProducts)

		result, err := service.AddToCart(ctx, CartInput{ProductID: intPtr(3), Quantity: intPtr(-1)}, 11)

		assert.NoError(t, err)
		assert.Equal(t, StatusInvalid, result.Status)
		assert.Equal(t, "quantity", result.Errors[0].Field)
		mockProducts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Absent Product And Quantity", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		mockProducts := new(MockProductRepo)
		service := NewCartService(mockCarts, mockProducts)

		result, err := service.AddToCart(ctx, CartInput{}, 11)

		assert.NoError(t, err)
		assert.Equal(t, StatusInvalid, result.Status)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("Zero Quantity Is Allowed", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		mockProducts := new(MockProductRepo)
		service := NewCartService(mockCarts, mockProducts)

		mockProducts.On("FindByID", ctx, 3).Return(widget, nil).Once()
		mockCarts.On("InsertLine", ctx, mock.Anything).Return(nil).Once()

		result, err := service.AddToCart(ctx, CartInput{ProductID: intPtr(3), Quantity: intPtr(0)}, 11)

		assert.NoError(t, err)
		assert.Equal(t, StatusOK, result.Status)
		assert.Zero(t, result.Line.Total)
	})
}

func TestGetOrders(t *testing.T) {
	ctx := context.Background()
	all := []models.Order{{ID: 1, UserID: 1}, {ID: 2, UserID: 2}}
	own := []models.Order{{ID: 1, UserID: 1}}

	t.Run("Admin Sees All Orders", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		service := NewCartService(mockCarts, new(MockProductRepo))
		mockCarts.On("AllOrders", ctx).Return(all, nil).Once()

		orders, err := service.GetOrders(ctx, 1, true)

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		mockCarts.AssertNotCalled(t, "OrdersByUser", mock.Anything, mock.Anything)
	})

	t.Run("Regular Caller Sees Own Orders", func(t *testing.T) {
		mockCarts := new(MockCartRepo)
		service := NewCartService(mockCarts, new(MockProductRepo))
		mockCarts.On("OrdersByUser", ctx, 1).Return(own, nil).Once()

		orders, err := service.GetOrders(ctx, 1, false)

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		mockCarts.AssertNotCalled(t, "AllOrders", mock.Anything)
	})
}
