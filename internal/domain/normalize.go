package domain

import "strings"

// NormalizeProductKey приводит ключ товара (имя в отзыве) к каноническому
// нижнему регистру. Применяется симметрично перед записью и перед построением
// фильтра чтения, ровно один раз на операцию: для case-folding повтор безвреден,
// но для будущих правил (например, trim) — уже нет.
func NormalizeProductKey(name string) string {
	return strings.ToLower(name)
}
