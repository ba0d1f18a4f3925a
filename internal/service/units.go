package service

import (
	"math"
	"strconv"

	"github.com/alenapavlenkko/nutridiary/internal/models"
)

// Единицы измерения
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitServing    = "serving"
	UnitTablet     = "tablet"
	UnitMilliliter = "ml"
	UnitLiter      = "l"
	UnitCup        = "cup"
	UnitGlass      = "glass" // стакан = 250 мл
)

// GlassMilliliters - объем одного стакана
const GlassMilliliters = 250

// ValidUnitsFor - допустимые единицы для типа записи.
// servingUnit - единица порции выбранной добавки (пусто, если добавка не выбрана);
// для остальных типов выбранный элемент на набор не влияет.
func ValidUnitsFor(kind, servingUnit string) []string {
	switch kind {
	case models.EntryKindIngredient:
		return []string{UnitGram, UnitKilogram}
	case models.EntryKindRecipe:
		return []string{UnitServing}
	case models.EntryKindSupplement:
		if servingUnit == "" {
			return []string{UnitTablet}
		}
		return []string{servingUnit}
	case models.EntryKindWater:
		return []string{UnitMilliliter, UnitLiter, UnitCup, UnitGlass}
	}
	return []string{UnitGram}
}

// DefaultQuantity - количество по умолчанию при смене типа записи
func DefaultQuantity(kind string) float64 {
	if kind == models.EntryKindWater {
		return 250
	}
	return 1
}

// DefaultUnit - единица по умолчанию при смене типа записи
func DefaultUnit(kind string) string {
	switch kind {
	case models.EntryKindRecipe:
		return UnitServing
	case models.EntryKindSupplement:
		return UnitTablet
	case models.EntryKindWater:
		return UnitMilliliter
	}
	return UnitGram
}

// SupplementServingUnit - единица порции добавки.
// Таблетки всегда считаются таблетками, иначе берем единицу из справочника.
func SupplementServingUnit(s *models.Supplement) string {
	if s.Form == models.SupplementFormTablet {
		return UnitTablet
	}
	if s.ServingUnit != "" {
		return s.ServingUnit
	}
	return UnitServing
}

// EnsureUnit - автокоррекция единицы: если текущая недопустима,
// возвращаем первую из допустимых
func EnsureUnit(unit string, valid []string) string {
	for _, u := range valid {
		if u == unit {
			return unit
		}
	}
	return valid[0]
}

// Round2 - округление до двух знаков (половина от нуля)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseQuantity - разбор количества из строки, мусор превращается в 0
func ParseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
