package models

// Package описывает тариф тренировочного пакета. Каталог пакетов —
// константа времени компиляции, пакеты не хранятся в базе и не
// являются отдельным API-ресурсом.
type Package struct {
	ID       string   `json:"id"`       // Идентификатор тарифа
	Name     string   `json:"name"`     // Отображаемое название
	Duration int      `json:"duration"` // Длительность в месяцах
	Price    int      `json:"price"`    // Цена за весь период
	Features []string `json:"features"` // Список возможностей тарифа
}

// Packages — фиксированный каталог из четырёх тарифов.
var Packages = map[string]Package{
	"monthly": {
		ID:       "monthly",
		Name:     "1 Month Package",
		Duration: 1,
		Price:    500,
		Features: []string{
			"15-min zoom consultation",
			"Diet planning",
			"Exercise routines",
			"Progress tracking",
		},
	},
	"quarterly": {
		ID:       "quarterly",
		Name:     "3 Month Package",
		Duration: 3,
		Price:    1000,
		Features: []string{
			"15-min zoom consultation",
			"Diet planning",
			"Exercise routines",
			"Progress tracking",
			"10% discount",
		},
	},
	"halfYearly": {
		ID:       "halfYearly",
		Name:     "6 Month Package",
		Duration: 6,
		Price:    4500,
		Features: []string{
			"15-min zoom consultation",
			"Diet planning",
			"Exercise routines",
			"Progress tracking",
			"25% discount",
			"Priority scheduling",
		},
	},
	"yearly": {
		ID:       "yearly",
		Name:     "12 Month Package",
		Duration: 12,
		Price:    6000,
		Features: []string{
			"15-min zoom consultation",
			"Diet planning",
			"Exercise routines",
			"Progress tracking",
			"50% discount",
			"Priority scheduling",
			"24/7 WhatsApp support",
		},
	},
}

// FindPackage возвращает тариф по идентификатору.
func FindPackage(id string) (Package, bool) {
	p, ok := Packages[id]
	return p, ok
}
