package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product представляет модель товара в каталоге,
// соответствует таблице products в бд
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	RatingAvg   float64   `json:"rating_avg" db:"rating_avg"`
	RatingCount int64     `json:"rating_count" db:"rating_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
