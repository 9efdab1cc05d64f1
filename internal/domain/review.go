package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review представляет отзыв на товар,
// соответствует таблице reviews в бд.
// Name — это имя товара (не автора!), хранится всегда в нижнем регистре,
// чтобы поиск отзывов по имени товара был регистронезависимым.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
