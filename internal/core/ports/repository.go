package ports

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// ProductRepository определяет единственный путь к хранилищу товаров.
// Приведение идентификатора (строка -> UUID) инкапсулировано внутри:
// некорректный id возвращается как domain.ErrInvalidID, а не как паника хранилища.
type ProductRepository interface {
	// Create сохраняет товар и присваивает сгенерированный id.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID возвращает товар по id. Корректный id без совпадения — (nil, nil),
	// это не ошибка: вызывающий сам решает, насколько это критично.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetAll возвращает все товары без пагинации.
	GetAll(ctx context.Context) ([]domain.Product, error)

	// Update частично или полностью заменяет поля и возвращает запись ПОСЛЕ
	// обновления. Если записи нет — domain.ErrNotFound, новая не создаётся.
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error)

	// Delete удаляет товар. Удаление несуществующего id — это "ничего не удалено"
	// (false, nil), а не ошибка.
	Delete(ctx context.Context, id string) (bool, error)

	// UpdateRatingSummary обновляет денормализованную сводку рейтинга товара
	// (заполняется воркером по событиям review.created).
	UpdateRatingSummary(ctx context.Context, name string, avg float64, count int64) error
}

// ReviewRepository определяет путь к хранилищу отзывов.
// Имя товара нормализуется к нижнему регистру и на записи, и на фильтре чтения,
// ровно один раз на операцию.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetAll(ctx context.Context) ([]domain.Review, error)
	GetByProductName(ctx context.Context, name string) ([]domain.Review, error)

	// RatingSummary возвращает количество отзывов и средний рейтинг товара.
	RatingSummary(ctx context.Context, name string) (count int64, avg float64, err error)
}

// UserRepository определяет путь к хранилищу пользователей.
// Сценарий upsert по githubId собирается выше, в usecase: здесь только примитивы.
type UserRepository interface {
	// FindByGithubID возвращает пользователя по внешнему идентификатору GitHub,
	// (nil, nil) если такого нет.
	FindByGithubID(ctx context.Context, githubID string) (*domain.User, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)

	// Insert вставляет нового пользователя. Нарушение уникального индекса
	// транслируется в domain.ErrDuplicate.
	Insert(ctx context.Context, user *domain.User) error

	// UpdateAccessToken обновляет только access token существующей строки.
	UpdateAccessToken(ctx context.Context, githubID, token string) error
}
