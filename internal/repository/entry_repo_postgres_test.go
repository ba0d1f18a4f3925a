package repository

import (
	"os"
	"testing"
	"time"

	"github.com/alenapavlenkko/nutridiary/internal/database"
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgres(dsn)
	assert.NoError(t, err)

	// Миграция только нужных таблиц
	err = db.AutoMigrate(&models.IntakeEntry{}, &models.Ingredient{})
	assert.NoError(t, err)

	// Очистка таблиц перед тестом
	db.Exec("DELETE FROM intake_entries")
	db.Exec("DELETE FROM ingredients")

	return db
}

func TestEntryRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := &models.IntakeEntry{
		UserID:    1,
		Kind:      models.EntryKindWater,
		ItemID:    models.WaterItemID,
		ItemName:  "Вода",
		Quantity:  250,
		Unit:      "ml",
		EntryDate: day,
	}

	created, err := repo.Create(entry)
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := repo.FindByDate(1, day)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Вода", list[0].ItemName)

	// Записи другого пользователя не видны
	other, err := repo.FindByDate(2, day)
	assert.NoError(t, err)
	assert.Len(t, other, 0)
}

func TestIngredientRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIngredientRepo(db)

	ingredient := &models.Ingredient{Name: "Овсянка", CaloriesPer100g: 370}
	_, err := repo.Create(ingredient)
	assert.NoError(t, err)

	list, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Овсянка", list[0].Name)

	got, err := repo.FindByID(ingredient.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Овсянка", got.Name)
}
