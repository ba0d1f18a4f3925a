package service

import (
	"testing"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidUnitsForIngredient(t *testing.T) {
	units := ValidUnitsFor(models.EntryKindIngredient, "")
	assert.Equal(t, []string{UnitGram, UnitKilogram}, units)

	// Выбранный элемент на набор не влияет
	units = ValidUnitsFor(models.EntryKindIngredient, "scoop")
	assert.Equal(t, []string{UnitGram, UnitKilogram}, units)
}

func TestValidUnitsForRecipe(t *testing.T) {
	assert.Equal(t, []string{UnitServing}, ValidUnitsFor(models.EntryKindRecipe, ""))
}

func TestValidUnitsForSupplement(t *testing.T) {
	// Без выбранной добавки - таблетки
	assert.Equal(t, []string{UnitTablet}, ValidUnitsFor(models.EntryKindSupplement, ""))

	// С выбранной добавкой - ее единица порции
	assert.Equal(t, []string{"scoop"}, ValidUnitsFor(models.EntryKindSupplement, "scoop"))
}

func TestValidUnitsForWater(t *testing.T) {
	units := ValidUnitsFor(models.EntryKindWater, "")
	assert.Equal(t, []string{UnitMilliliter, UnitLiter, UnitCup, UnitGlass}, units)
}

func TestSupplementServingUnit(t *testing.T) {
	tablet := &models.Supplement{Name: "Магний", Form: models.SupplementFormTablet, ServingUnit: "scoop"}
	assert.Equal(t, UnitTablet, SupplementServingUnit(tablet))

	powder := &models.Supplement{Name: "Протеин", Form: models.SupplementFormPowder, ServingUnit: "scoop"}
	assert.Equal(t, "scoop", SupplementServingUnit(powder))

	liquid := &models.Supplement{Name: "Омега-3", Form: models.SupplementFormLiquid}
	assert.Equal(t, UnitServing, SupplementServingUnit(liquid))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 1.0, DefaultQuantity(models.EntryKindIngredient))
	assert.Equal(t, 1.0, DefaultQuantity(models.EntryKindRecipe))
	assert.Equal(t, 1.0, DefaultQuantity(models.EntryKindSupplement))
	assert.Equal(t, 250.0, DefaultQuantity(models.EntryKindWater))

	assert.Equal(t, UnitGram, DefaultUnit(models.EntryKindIngredient))
	assert.Equal(t, UnitServing, DefaultUnit(models.EntryKindRecipe))
	assert.Equal(t, UnitTablet, DefaultUnit(models.EntryKindSupplement))
	assert.Equal(t, UnitMilliliter, DefaultUnit(models.EntryKindWater))
}

func TestEnsureUnit(t *testing.T) {
	valid := []string{UnitGram, UnitKilogram}

	// Допустимая единица остается
	assert.Equal(t, UnitKilogram, EnsureUnit(UnitKilogram, valid))

	// Недопустимая заменяется первой из набора
	assert.Equal(t, UnitGram, EnsureUnit(UnitServing, valid))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 50.0, Round2(50.0))
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 2.5, ParseQuantity("2.5"))
	assert.Equal(t, 0.0, ParseQuantity("abc"))
	assert.Equal(t, 0.0, ParseQuantity(""))
}
