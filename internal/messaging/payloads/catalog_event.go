package payloads

// Типы событий каталога.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventReviewCreated  = "review.created"
)

// CatalogEventPayload представляет событие каталога, публикуемое в RabbitMQ
// после успешной записи. Name для отзывов — нормализованное имя товара,
// по нему воркер пересчитывает сводку рейтинга.
type CatalogEventPayload struct {
	Event string `json:"event"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
}
