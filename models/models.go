package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a single catalog item belonging to a category.
type Product struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	CategoryID int       `gorm:"index" json:"categoryId"`
	Title      string    `gorm:"size:128;not null" json:"title"`
	Price      float64   `json:"price"`
	About      string    `json:"about"`
	Img        string    `json:"img"`
	Created    time.Time `gorm:"autoCreateTime" json:"created"`
	Updated    time.Time `gorm:"autoUpdateTime" json:"updated"`
}

type Category struct {
	ID      int       `gorm:"primaryKey" json:"id"`
	Title   string    `gorm:"size:128;not null" json:"title"`
	Created time.Time `gorm:"autoCreateTime" json:"created"`
	Updated time.Time `gorm:"autoUpdateTime" json:"updated"`
}

// User stores the password only as a bcrypt digest.
type User struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	Email    string    `gorm:"unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Admin    bool      `gorm:"default:false" json:"admin"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
	Updated  time.Time `gorm:"autoUpdateTime" json:"updated"`
}

// Order is created as a byproduct of checkout and is read-only afterwards.
type Order struct {
	ID      int       `gorm:"primaryKey" json:"id"`
	UserID  int       `gorm:"index;not null" json:"userId"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Created time.Time `gorm:"autoCreateTime" json:"created"`
	Updated time.Time `gorm:"autoUpdateTime" json:"updated"`
}

// ProductOrder is one cart line. Total is always computed server-side from
// the product's stored price, never taken from client input.
type ProductOrder struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	ProductID int       `gorm:"index;not null" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UserID    int       `gorm:"index;not null" json:"userId"`
	Total     float64   `json:"total"`
	Created   time.Time `gorm:"autoCreateTime" json:"created"`
	Updated   time.Time `gorm:"autoUpdateTime" json:"updated"`
}

func (ProductOrder) TableName() string {
	return "productorders"
}

// FieldError is a single validation failure tied to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Category{}, &Product{}, &User{}, &Order{}, &ProductOrder{})
}
