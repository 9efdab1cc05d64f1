package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет модель пользователя, авторизованного через GitHub OAuth.
// Соответствует таблице 'users' в базе данных.
// Инвариант: на один GithubID существует не более одной строки (уникальный индекс в бд).
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	GithubID    string    `json:"github_id" db:"github_id"`
	Username    string    `json:"username" db:"username"`
	Email       string    `json:"email" db:"email"`
	AvatarURL   string    `json:"avatar_url,omitempty" db:"avatar_url"`
	AccessToken string    `json:"-" db:"access_token"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
