package models

import "gorm.io/gorm"

// Ingredient - продукт из справочника
type Ingredient struct {
	gorm.Model
	Name            string  `gorm:"type:varchar(255);not null"`
	Brand           string  `gorm:"type:varchar(255)"`
	CaloriesPer100g float64 // калории на 100 г
	Protein         float64
	Carbs           float64
	Fats            float64
}
