package models

import (
	"time"

	"gorm.io/gorm"
)

// Типы записей дневника
const (
	EntryKindIngredient = "ingredient"
	EntryKindRecipe     = "recipe"
	EntryKindSupplement = "supplement"
	EntryKindWater      = "water"
)

// WaterItemID - сентинел для записей воды (вода не из справочника)
const WaterItemID int64 = -1

// IntakeEntry - запись дневника питания
type IntakeEntry struct {
	gorm.Model
	UserID    uint   `gorm:"index"`
	Kind      string `gorm:"type:varchar(20);not null"` // ingredient, recipe, supplement, water
	ItemID    int64  `gorm:"not null"`
	ItemName  string `gorm:"type:varchar(255)"`
	Quantity  float64
	Unit      string    `gorm:"type:varchar(20)"`
	EntryDate time.Time `gorm:"type:date;not null;index"`
	TimeOfDay string    `gorm:"type:varchar(20)"` // Завтрак, Обед, Ужин, Перекус
	Notes     string    `gorm:"type:text"`
}
