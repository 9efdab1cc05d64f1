package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Классификация ошибок слоя доступа к данным.
// Ни одна из них не фатальна для процесса: репозиторий всегда возвращает
// классифицированный результат наверх, ничего не глотая.
var (
	// ErrNotFound — корректный идентификатор, но записи нет.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID — идентификатор не удалось разобрать (не UUID).
	// Отличается от ErrNotFound: это ошибка входных данных, а не отсутствие записи.
	ErrInvalidID = errors.New("invalid id")

	// ErrDuplicate — нарушение уникального индекса в хранилище.
	ErrDuplicate = errors.New("duplicate record")
)

// ValidationError содержит ПОЛНЫЙ список нарушений схемы,
// а не только первое — чтобы клиент мог исправить всё за один раунд.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// StoreError оборачивает ошибки связи/записи внешнего хранилища.
// Политику ретраев этот слой не определяет — она на стороне вызывающего.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
