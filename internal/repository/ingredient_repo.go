package repository

import (
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) (*models.Ingredient, error)
	FindAll() ([]*models.Ingredient, error)
	FindByID(id uint) (*models.Ingredient, error)
	Update(ingredient *models.Ingredient) error
	Delete(id uint) error
}

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ingredient *models.Ingredient) (*models.Ingredient, error) {
	err := r.db.Create(ingredient).Error
	return ingredient, err
}

func (r *ingredientRepo) FindAll() ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, id).Error
	return &ingredient, err
}

func (r *ingredientRepo) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepo) Delete(id uint) error {
	return r.db.Delete(&models.Ingredient{}, id).Error
}
