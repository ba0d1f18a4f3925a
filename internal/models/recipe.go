package models

import "gorm.io/gorm"

// Recipe - рецепт из справочника
type Recipe struct {
	gorm.Model
	Name            string             `gorm:"type:varchar(255);not null"`
	Description     string             `gorm:"type:text"`
	DefaultServings float64            `gorm:"not null;default:1"` // базовое количество порций
	Ingredients     []RecipeIngredient `gorm:"foreignKey:RecipeID"`
}

// RecipeIngredient - строка ингредиента внутри рецепта
type RecipeIngredient struct {
	gorm.Model
	RecipeID     uint       `gorm:"not null;index"`
	IngredientID uint       `gorm:"not null"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID"` // Без models.
	Quantity     float64    `gorm:"not null"`
	Unit         string     `gorm:"type:varchar(20);not null"`
}
