package service

import (
	"fmt"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
)

type RecipeService struct {
	repo           repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

func NewRecipeService(repo repository.RecipeRepository, ingredientRepo repository.IngredientRepository) *RecipeService {
	return &RecipeService{
		repo:           repo,
		ingredientRepo: ingredientRepo,
	}
}

// CreateRecipe - создать рецепт
func (s *RecipeService) CreateRecipe(dto CreateRecipeDTO) (*models.Recipe, error) {
	if dto.Name == "" {
		return nil, fmt.Errorf("название рецепта не может быть пустым")
	}

	servings := dto.DefaultServings
	if servings <= 0 {
		servings = 1
	}

	recipe := &models.Recipe{
		Name:            dto.Name,
		Description:     dto.Description,
		DefaultServings: servings,
	}

	return s.repo.Create(recipe)
}

// ListRecipes - список рецептов
func (s *RecipeService) ListRecipes() ([]*models.Recipe, error) {
	return s.repo.FindAll()
}

// GetRecipeByID - получить рецепт по ID
func (s *RecipeService) GetRecipeByID(id uint) (*models.Recipe, error) {
	return s.repo.FindByID(id)
}

// DeleteRecipe - удалить рецепт вместе со строками
func (s *RecipeService) DeleteRecipe(id uint) error {
	return s.repo.Delete(id)
}

// AddLine - добавить строку ингредиента в рецепт
func (s *RecipeService) AddLine(dto AddRecipeLineDTO) (*models.RecipeIngredient, error) {
	// Проверяем существование ингредиента
	if _, err := s.ingredientRepo.FindByID(dto.IngredientID); err != nil {
		return nil, fmt.Errorf("ингредиент не найден: %w", err)
	}

	if dto.Quantity <= 0 {
		return nil, fmt.Errorf("количество должно быть больше нуля")
	}
	unit := dto.Unit
	if unit == "" {
		unit = UnitGram
	}

	line := &models.RecipeIngredient{
		RecipeID:     dto.RecipeID,
		IngredientID: dto.IngredientID,
		Quantity:     dto.Quantity,
		Unit:         unit,
	}

	return s.repo.CreateLine(line)
}

// ListLines - строки рецепта (lookup для диалога создания записи)
func (s *RecipeService) ListLines(recipeID uint) ([]*models.RecipeIngredient, error) {
	return s.repo.FindLinesByRecipeID(recipeID)
}

// DeleteLine - удалить строку из рецепта
func (s *RecipeService) DeleteLine(lineID uint) error {
	return s.repo.DeleteLine(lineID)
}
