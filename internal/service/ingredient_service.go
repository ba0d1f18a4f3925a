package service

import (
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
)

type IngredientService struct {
	repo repository.IngredientRepository
}

func NewIngredientService(repo repository.IngredientRepository) *IngredientService {
	return &IngredientService{repo: repo}
}

// CreateIngredient - создать ингредиент
func (s *IngredientService) CreateIngredient(dto CreateIngredientDTO) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{
		Name:            dto.Name,
		Brand:           dto.Brand,
		CaloriesPer100g: dto.CaloriesPer100g,
		Protein:         dto.Protein,
		Carbs:           dto.Carbs,
		Fats:            dto.Fats,
	}
	return s.repo.Create(ingredient)
}

// ListIngredients - список ингредиентов
func (s *IngredientService) ListIngredients() ([]*models.Ingredient, error) {
	return s.repo.FindAll()
}

// GetIngredientByID - получить ингредиент по ID
func (s *IngredientService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	return s.repo.FindByID(id)
}

// UpdateIngredient - обновить ингредиент
func (s *IngredientService) UpdateIngredient(id uint, dto UpdateIngredientDTO) error {
	ingredient, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if dto.Name != "" {
		ingredient.Name = dto.Name
	}
	if dto.Brand != "" {
		ingredient.Brand = dto.Brand
	}
	if dto.CaloriesPer100g > 0 {
		ingredient.CaloriesPer100g = dto.CaloriesPer100g
	}
	if dto.Protein >= 0 {
		ingredient.Protein = dto.Protein
	}
	if dto.Carbs >= 0 {
		ingredient.Carbs = dto.Carbs
	}
	if dto.Fats >= 0 {
		ingredient.Fats = dto.Fats
	}

	return s.repo.Update(ingredient)
}

// DeleteIngredient - удалить ингредиент
func (s *IngredientService) DeleteIngredient(id uint) error {
	return s.repo.Delete(id)
}
