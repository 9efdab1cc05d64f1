package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate проверяет недоверенный ввод по схеме сущности.
// Возвращает либо очищенную запись с приведёнными типами (числа из строк
// становятся числами), либо ПОЛНЫЙ список нарушений — по одному сообщению
// на каждое отсутствующее/некорректное поле, без остановки на первом.
// Запись из результата можно безопасно отдавать в репозиторий.
func Validate(input map[string]any, s Schema) (map[string]any, []string) {
	var violations []string
	sanitized := make(map[string]any, len(s.Fields))

	for _, f := range s.Fields {
		raw, ok := input[f.Name]
		if !ok || raw == nil || raw == "" {
			if f.Required {
				violations = append(violations, fmt.Sprintf("%s is required", f.Name))
			}
			continue
		}

		switch f.Type {
		case TypeString:
			str, ok := raw.(string)
			if !ok {
				violations = append(violations, fmt.Sprintf("%s must be a string", f.Name))
				continue
			}
			sanitized[f.Name] = strings.TrimSpace(str)

		case TypeNumber:
			num, err := coerceNumber(raw)
			if err != nil {
				violations = append(violations, fmt.Sprintf("%s must be a valid number", f.Name))
				continue
			}
			if msg := checkBounds(f, num); msg != "" {
				violations = append(violations, msg)
				continue
			}
			sanitized[f.Name] = num

		case TypeInt:
			num, err := coerceNumber(raw)
			if err != nil {
				violations = append(violations, fmt.Sprintf("%s must be a valid number", f.Name))
				continue
			}
			if num != math.Trunc(num) {
				violations = append(violations, fmt.Sprintf("%s must be an integer", f.Name))
				continue
			}
			if msg := checkBounds(f, num); msg != "" {
				violations = append(violations, msg)
				continue
			}
			sanitized[f.Name] = int(num)
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return sanitized, nil
}

// coerceNumber приводит значение к числу.
// JSON-декодер отдаёт числа как float64, но клиенты присылают и строки ("19.99") —
// такие строки тоже принимаются; нечисловой текст — это нарушение, а не паника.
func coerceNumber(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		return num, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}

func checkBounds(f FieldRule, num float64) string {
	if f.Min != nil && f.Max != nil && (num < *f.Min || num > *f.Max) {
		return fmt.Sprintf("%s must be between %g and %g", f.Name, *f.Min, *f.Max)
	}
	if f.Min != nil && num < *f.Min {
		return fmt.Sprintf("%s must be greater than or equal to %g", f.Name, *f.Min)
	}
	if f.Max != nil && num > *f.Max {
		return fmt.Sprintf("%s must be less than or equal to %g", f.Name, *f.Max)
	}
	return ""
}
