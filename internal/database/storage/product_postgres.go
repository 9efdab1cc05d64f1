package storage

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStorage реализует интерфейс ports.ProductRepository поверх GORM.
// Это единственный путь записи товаров: валидация выполняется до входа сюда.
type ProductStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewProductStorage создает новый экземпляр ProductStorage
func NewProductStorage(db *gorm.DB, logger *slog.Logger) *ProductStorage {
	return &ProductStorage{db: db, logger: logger}
}

// parseID — точка приведения внешнего идентификатора.
// Неразбираемый id — это domain.ErrInvalidID, а не ошибка хранилища.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return parsed, nil
}

// Create сохраняет товар в бд и присваивает сгенерированный id
func (s *ProductStorage) Create(ctx context.Context, product *domain.Product) error {
	start := time.Now()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		s.logger.Error("failed to create product", "name", product.Name, "error", err)
		return &domain.StoreError{Op: "create product", Err: err}
	}

	s.logger.Info("product created",
		"id", product.ID,
		"name", product.Name,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetByID получает товар по id. Корректный id без совпадения — (nil, nil).
func (s *ProductStorage) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	start := time.Now()

	productID, err := parseID(id)
	if err != nil {
		s.logger.Warn("malformed product id", "id", id)
		return nil, err
	}

	var product domain.Product
	result := s.db.WithContext(ctx).First(&product, "id = ?", productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.logger.Warn("product not found by id", "id", productID)
			return nil, nil
		}
		s.logger.Error("failed to get product by id", "id", productID, "error", result.Error)
		return nil, &domain.StoreError{Op: "get product by id", Err: result.Error}
	}

	s.logger.Info("product retrieved by id",
		"id", productID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &product, nil
}

// GetAll получает все товары из бд
func (s *ProductStorage) GetAll(ctx context.Context) ([]domain.Product, error) {
	start := time.Now()

	var products []domain.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		s.logger.Error("failed to list products", "error", err)
		return nil, &domain.StoreError{Op: "list products", Err: err}
	}

	s.logger.Info("products listed",
		"count", len(products),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return products, nil
}

// Update заменяет поля товара и возвращает запись ПОСЛЕ обновления.
// Если записи нет — domain.ErrNotFound, новая запись не создаётся.
func (s *ProductStorage) Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error) {
	start := time.Now()

	productID, err := parseID(id)
	if err != nil {
		s.logger.Warn("malformed product id", "id", id)
		return nil, err
	}

	var existing domain.Product
	result := s.db.WithContext(ctx).First(&existing, "id = ?", productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.logger.Warn("product not found for update", "id", productID)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to load product for update", "id", productID, "error", result.Error)
		return nil, &domain.StoreError{Op: "load product for update", Err: result.Error}
	}

	fields["updated_at"] = time.Now()
	if err := s.db.WithContext(ctx).Model(&existing).Updates(fields).Error; err != nil {
		s.logger.Error("failed to update product", "id", productID, "error", err)
		return nil, &domain.StoreError{Op: "update product", Err: err}
	}

	var updated domain.Product
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", productID).Error; err != nil {
		s.logger.Error("failed to reload product after update", "id", productID, "error", err)
		return nil, &domain.StoreError{Op: "reload product after update", Err: err}
	}

	s.logger.Info("product updated",
		"id", productID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &updated, nil
}

// Delete удаляет товар. Удаление несуществующего id — (false, nil), не ошибка.
func (s *ProductStorage) Delete(ctx context.Context, id string) (bool, error) {
	start := time.Now()

	productID, err := parseID(id)
	if err != nil {
		s.logger.Warn("malformed product id", "id", id)
		return false, err
	}

	result := s.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", productID)
	if result.Error != nil {
		s.logger.Error("failed to delete product", "id", productID, "error", result.Error)
		return false, &domain.StoreError{Op: "delete product", Err: result.Error}
	}

	s.logger.Info("product delete finished",
		"id", productID,
		"deleted", result.RowsAffected,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result.RowsAffected > 0, nil
}

// UpdateRatingSummary обновляет денормализованную сводку рейтинга товара.
// Имя приходит уже нормализованным (из события review.created), сравнение
// ведём по LOWER(name), чтобы попасть в товар независимо от регистра.
func (s *ProductStorage) UpdateRatingSummary(ctx context.Context, name string, avg float64, count int64) error {
	start := time.Now()

	result := s.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("LOWER(name) = ?", domain.NormalizeProductKey(name)).
		Updates(map[string]any{
			"rating_avg":   avg,
			"rating_count": count,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		s.logger.Error("failed to update rating summary", "name", name, "error", result.Error)
		return &domain.StoreError{Op: "update rating summary", Err: result.Error}
	}

	s.logger.Info("rating summary updated",
		"name", name,
		"avg", avg,
		"count", count,
		"matched", result.RowsAffected,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
