package usecase

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// ProductUseCase определяет бизнес-логику работы с товарами.
// Любой путь записи проходит через валидационный шлюз: непровалидированная
// запись до репозитория не доходит.
type ProductUseCase interface {
	// CreateProduct валидирует недоверенный ввод, сохраняет товар
	// и возвращает запись с присвоенным id.
	CreateProduct(ctx context.Context, input map[string]any) (*domain.Product, error)

	// GetProductByID получает товар по id; отсутствие записи — domain.ErrNotFound.
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts получает все товары.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// UpdateProduct валидирует ввод и заменяет поля товара,
	// возвращая запись после обновления.
	UpdateProduct(ctx context.Context, id string, input map[string]any) (*domain.Product, error)

	// DeleteProduct удаляет товар; флаг говорит, была ли запись удалена.
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

// ReviewUseCase определяет бизнес-логику работы с отзывами.
type ReviewUseCase interface {
	CreateReview(ctx context.Context, input map[string]any) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)

	// GetReviewsByProductName возвращает отзывы по имени товара в любом регистре.
	GetReviewsByProductName(ctx context.Context, name string) ([]domain.Review, error)

	// RefreshRatingSummary пересчитывает сводку рейтинга товара по отзывам.
	// Вызывается воркером при событии review.created.
	RefreshRatingSummary(ctx context.Context, name string) error
}

// UserUseCase определяет бизнес-логику работы с пользователями,
// в том числе координатор upsert по githubId.
type UserUseCase interface {
	// CreateUser — это upsert: для нового githubId вставляется полная запись,
	// для уже известного обновляется только access token. Две строки с одним
	// githubId не появляются никогда, в том числе при гонке двух вызовов.
	CreateUser(ctx context.Context, input map[string]any) (*domain.User, error)

	// GetUserByID получает пользователя по внутреннему id.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
