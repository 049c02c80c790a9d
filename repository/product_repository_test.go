package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/athh15/vef2-hop1/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func productRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "category_id", "title", "price", "about", "img", "created", "updated"}).
		AddRow(1, 2, "Widget", 9.99, "A widget", "widget.png", now, now)
}

func TestListSearchScopedInsideCategory(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProductRepository(gormDB)

	// the search disjunction must stay parenthesized and AND-ed with the
	// category filter so other categories never leak into the page
	mock.ExpectQuery(regexp.QuoteMeta(`category_id = $1 AND (title LIKE $2 OR about LIKE $3)`)).
		WithArgs(2, "%widget%", "%widget%", 10).
		WillReturnRows(productRows())

	products, err := repo.List(context.Background(), repository.ListParams{
		CategoryID: 2,
		Search:     "widget",
		Limit:      10,
	})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 2, products[0].CategoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdering(t *testing.T) {
	t.Run("Ascending By Default", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := repository.NewProductRepository(gormDB)

		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created ASC`)).
			WillReturnRows(productRows())

		_, err := repo.List(context.Background(), repository.ListParams{})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Descending On Request", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := repository.NewProductRepository(gormDB)

		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created DESC`)).
			WillReturnRows(productRows())

		_, err := repo.List(context.Background(), repository.ListParams{Descending: true})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListPagination(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProductRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
		WithArgs(10, 20).
		WillReturnRows(productRows())

	_, err := repo.List(context.Background(), repository.ListParams{Offset: 20, Limit: 10})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProductRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.FindByID(context.Background(), 999999)
	assert.NoError(t, err)
	assert.Nil(t, product)
}
