package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Код PostgreSQL для нарушения уникального индекса.
const pgUniqueViolation = "23505"

// UserStorage реализует интерфейс ports.UserRepository поверх GORM.
// Здесь только примитивы хранилища; сценарий upsert по githubId
// собирается выше, в usecase.UserUseCase.
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// FindByGithubID возвращает пользователя по внешнему идентификатору GitHub,
// (nil, nil) если такого нет.
func (s *UserStorage) FindByGithubID(ctx context.Context, githubID string) (*domain.User, error) {
	start := time.Now()

	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "github_id = ?", githubID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to find user by github_id", "github_id", githubID, "error", result.Error)
		return nil, &domain.StoreError{Op: "find user by github_id", Err: result.Error}
	}

	s.logger.Info("user found by github_id",
		"github_id", githubID,
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &user, nil
}

// FindByID получает пользователя по внутреннему id. Корректный id без совпадения — (nil, nil).
func (s *UserStorage) FindByID(ctx context.Context, id string) (*domain.User, error) {
	start := time.Now()

	userID, err := parseID(id)
	if err != nil {
		s.logger.Warn("malformed user id", "id", id)
		return nil, err
	}

	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.logger.Warn("user not found by id", "id", userID)
			return nil, nil
		}
		s.logger.Error("failed to find user by id", "id", userID, "error", result.Error)
		return nil, &domain.StoreError{Op: "find user by id", Err: result.Error}
	}

	s.logger.Info("user retrieved by id",
		"id", userID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &user, nil
}

// Insert вставляет нового пользователя с присвоением сгенерированного id.
// Нарушение уникального индекса (гонка двух одновременных upsert-вызовов)
// транслируется в domain.ErrDuplicate, а не отдаётся сырой ошибкой драйвера.
func (s *UserStorage) Insert(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			s.logger.Warn("duplicate user insert", "github_id", user.GithubID)
			return domain.ErrDuplicate
		}
		s.logger.Error("failed to insert user", "github_id", user.GithubID, "error", err)
		return &domain.StoreError{Op: "insert user", Err: err}
	}

	s.logger.Info("user inserted",
		"user_id", user.ID,
		"github_id", user.GithubID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateAccessToken обновляет только access token существующей строки пользователя
func (s *UserStorage) UpdateAccessToken(ctx context.Context, githubID, token string) error {
	start := time.Now()

	result := s.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("github_id = ?", githubID).
		Updates(map[string]any{
			"access_token": token,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		s.logger.Error("failed to update access token", "github_id", githubID, "error", result.Error)
		return &domain.StoreError{Op: "update access token", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		s.logger.Warn("no user matched for token update", "github_id", githubID)
		return domain.ErrNotFound
	}

	s.logger.Info("access token updated",
		"github_id", githubID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
