package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateProduct_RoundTrip(t *testing.T) {
	repo := newFakeProductRepo()
	pub := &fakePublisher{}
	uc := NewProductUseCase(repo, pub, discardLogger())

	created, err := uc.CreateProduct(context.Background(), map[string]any{
		"name":        "Widget",
		"description": "A small widget",
		"price":       "19.99",
		"stock":       "5",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, 19.99, created.Price)
	assert.Equal(t, 5, created.Stock)

	got, err := uc.GetProductByID(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Widget", got.Name)

	require.Len(t, pub.events, 1)
	assert.Equal(t, payloads.EventProductCreated, pub.events[0].Event)
	assert.Equal(t, created.ID.String(), pub.events[0].ID)
}

func TestCreateProduct_AllViolationsReported(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo, nil, discardLogger())

	_, err := uc.CreateProduct(context.Background(), map[string]any{
		"description": "no name, no price",
		"stock":       float64(1),
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Violations, 2)
	assert.Empty(t, repo.products, "невалидный ввод не должен доходить до хранилища")
}

func TestGetProductByID_Classification(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(), nil, discardLogger())

	_, err := uc.GetProductByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = uc.GetProductByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProduct_NotFoundDoesNotCreate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo, nil, discardLogger())

	_, err := uc.UpdateProduct(context.Background(), uuid.NewString(), map[string]any{
		"name":        "Widget",
		"description": "updated",
		"price":       float64(1),
		"stock":       float64(1),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.products)
}

func TestUpdateProduct_ReturnsPostUpdateRecord(t *testing.T) {
	repo := newFakeProductRepo()
	pub := &fakePublisher{}
	uc := NewProductUseCase(repo, pub, discardLogger())

	created, err := uc.CreateProduct(context.Background(), map[string]any{
		"name":        "Widget",
		"description": "A small widget",
		"price":       float64(10),
		"stock":       float64(2),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(context.Background(), created.ID.String(), map[string]any{
		"name":        "Widget v2",
		"description": "A bigger widget",
		"price":       "25.50",
		"stock":       float64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Equal(t, 25.50, updated.Price)
	assert.Equal(t, 7, updated.Stock)

	require.Len(t, pub.events, 2)
	assert.Equal(t, payloads.EventProductUpdated, pub.events[1].Event)
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	repo := newFakeProductRepo()
	pub := &fakePublisher{}
	uc := NewProductUseCase(repo, pub, discardLogger())

	// удаление несуществующего id — "ничего не удалено", не ошибка
	deleted, err := uc.DeleteProduct(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, pub.events)

	created, err := uc.CreateProduct(context.Background(), map[string]any{
		"name":        "Widget",
		"description": "A small widget",
		"price":       float64(10),
		"stock":       float64(2),
	})
	require.NoError(t, err)

	deleted, err = uc.DeleteProduct(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = uc.GetProductByID(context.Background(), created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, payloads.EventProductDeleted, last.Event)
}
