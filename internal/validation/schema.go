package validation

// FieldType — примитивный тип поля схемы.
type FieldType int

const (
	TypeString FieldType = iota
	TypeNumber
	TypeInt
)

// FieldRule описывает ограничения одного поля: обязательность, тип,
// числовые границы и намерение уникальности (информационно, сам индекс — в бд).
// Это чистые данные без поведения, их интерпретирует Validate.
type FieldRule struct {
	Name     string
	Type     FieldType
	Required bool
	Min      *float64
	Max      *float64
	Unique   bool
}

// Schema — декларативный набор ограничений одной сущности.
type Schema struct {
	Entity string
	Fields []FieldRule
}

func bound(v float64) *float64 { return &v }

// ProductSchema: name/description — обязательный текст,
// price — обязательное неотрицательное число, stock — обязательное неотрицательное целое.
var ProductSchema = Schema{
	Entity: "product",
	Fields: []FieldRule{
		{Name: "name", Type: TypeString, Required: true},
		{Name: "description", Type: TypeString, Required: true},
		{Name: "price", Type: TypeNumber, Required: true, Min: bound(0)},
		{Name: "stock", Type: TypeInt, Required: true, Min: bound(0)},
	},
}

// ReviewSchema: name — имя товара (не автора), rating — целое от 1 до 5 включительно.
var ReviewSchema = Schema{
	Entity: "review",
	Fields: []FieldRule{
		{Name: "name", Type: TypeString, Required: true},
		{Name: "email", Type: TypeString, Required: true},
		{Name: "rating", Type: TypeInt, Required: true, Min: bound(1), Max: bound(5)},
		{Name: "comment", Type: TypeString, Required: true},
	},
}

// UserSchema: githubId и email уникальны (индексы в бд), avatarUrl необязателен.
var UserSchema = Schema{
	Entity: "user",
	Fields: []FieldRule{
		{Name: "githubId", Type: TypeString, Required: true, Unique: true},
		{Name: "username", Type: TypeString, Required: true},
		{Name: "email", Type: TypeString, Required: true, Unique: true},
		{Name: "avatarUrl", Type: TypeString, Required: false},
		{Name: "accessToken", Type: TypeString, Required: false},
	},
}
