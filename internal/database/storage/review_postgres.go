package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewStorage реализует интерфейс ports.ReviewRepository поверх GORM.
// Нормализация имени товара (нижний регистр) живёт здесь и применяется
// симметрично: один раз перед записью и один раз при построении фильтра чтения.
// Запись "Widget" и чтение по "widget" обязаны попадать в одну и ту же запись.
type ReviewStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewReviewStorage создает новый экземпляр ReviewStorage
func NewReviewStorage(db *gorm.DB, logger *slog.Logger) *ReviewStorage {
	return &ReviewStorage{db: db, logger: logger}
}

// normalizeProductName — точка каноникализации ключа товара в этом репозитории.
func normalizeProductName(name string) string {
	return domain.NormalizeProductKey(name)
}

// Create сохраняет отзыв, нормализовав имя товара
func (s *ReviewStorage) Create(ctx context.Context, review *domain.Review) error {
	start := time.Now()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	review.Name = normalizeProductName(review.Name)

	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		s.logger.Error("failed to create review", "name", review.Name, "error", err)
		return &domain.StoreError{Op: "create review", Err: err}
	}

	s.logger.Info("review created",
		"id", review.ID,
		"name", review.Name,
		"rating", review.Rating,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetAll получает все отзывы из бд
func (s *ReviewStorage) GetAll(ctx context.Context) ([]domain.Review, error) {
	start := time.Now()

	var reviews []domain.Review
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error; err != nil {
		s.logger.Error("failed to list reviews", "error", err)
		return nil, &domain.StoreError{Op: "list reviews", Err: err}
	}

	s.logger.Info("reviews listed",
		"count", len(reviews),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return reviews, nil
}

// GetByProductName получает отзывы по имени товара.
// Фильтр нормализуется так же, как и при записи, поэтому поиск нечувствителен к регистру.
func (s *ReviewStorage) GetByProductName(ctx context.Context, name string) ([]domain.Review, error) {
	start := time.Now()

	normalized := normalizeProductName(name)

	var reviews []domain.Review
	if err := s.db.WithContext(ctx).
		Where("name = ?", normalized).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		s.logger.Error("failed to get reviews by product name", "name", normalized, "error", err)
		return nil, &domain.StoreError{Op: "get reviews by product name", Err: err}
	}

	s.logger.Info("reviews retrieved by product name",
		"name", normalized,
		"count", len(reviews),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return reviews, nil
}

// RatingSummary возвращает количество отзывов и средний рейтинг товара
func (s *ReviewStorage) RatingSummary(ctx context.Context, name string) (int64, float64, error) {
	start := time.Now()

	normalized := normalizeProductName(name)

	var summary struct {
		Count int64
		Avg   float64
	}
	err := s.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("name = ?", normalized).
		Scan(&summary).Error
	if err != nil {
		s.logger.Error("failed to compute rating summary", "name", normalized, "error", err)
		return 0, 0, &domain.StoreError{Op: "compute rating summary", Err: err}
	}

	s.logger.Info("rating summary computed",
		"name", normalized,
		"count", summary.Count,
		"avg", summary.Avg,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return summary.Count, summary.Avg, nil
}
