// internal/repository/recipe_repo.go
package repository

import (
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository - интерфейс для рецептов
type RecipeRepository interface {
	Create(recipe *models.Recipe) (*models.Recipe, error)
	FindAll() ([]*models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error

	// Строки ингредиентов
	CreateLine(line *models.RecipeIngredient) (*models.RecipeIngredient, error)
	FindLinesByRecipeID(recipeID uint) ([]*models.RecipeIngredient, error)
	UpdateLine(line *models.RecipeIngredient) error
	DeleteLine(lineID uint) error
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(recipe *models.Recipe) (*models.Recipe, error) {
	result := r.db.Create(recipe)
	return recipe, result.Error
}

func (r *recipeRepo) FindAll() ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	result := r.db.Order("name").Find(&recipes)
	return recipes, result.Error
}

func (r *recipeRepo) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	result := r.db.Preload("Ingredients").First(&recipe, id)
	return &recipe, result.Error
}

func (r *recipeRepo) Update(recipe *models.Recipe) error {
	result := r.db.Save(recipe)
	return result.Error
}

func (r *recipeRepo) Delete(id uint) error {
	// Удаляем рецепт вместе со строками ингредиентов
	if err := r.db.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Recipe{}, id).Error
}

// Строки ингредиентов

func (r *recipeRepo) CreateLine(line *models.RecipeIngredient) (*models.RecipeIngredient, error) {
	result := r.db.Create(line)
	return line, result.Error
}

func (r *recipeRepo) FindLinesByRecipeID(recipeID uint) ([]*models.RecipeIngredient, error) {
	var lines []*models.RecipeIngredient
	result := r.db.Preload("Ingredient").Where("recipe_id = ?", recipeID).Order("id").Find(&lines)
	return lines, result.Error
}

func (r *recipeRepo) UpdateLine(line *models.RecipeIngredient) error {
	result := r.db.Save(line)
	return result.Error
}

func (r *recipeRepo) DeleteLine(lineID uint) error {
	result := r.db.Delete(&models.RecipeIngredient{}, lineID)
	return result.Error
}
