package api

import (
	"net/http"
	"strconv"

	"github.com/alenapavlenkko/nutridiary/internal/service"
	"github.com/gin-gonic/gin"
)

// CatalogHandler - админ-CRUD справочников
type CatalogHandler struct {
	ingredientService *service.IngredientService
	recipeService     *service.RecipeService
	supplementService *service.SupplementService
}

func NewCatalogHandler(
	ingredientService *service.IngredientService,
	recipeService *service.RecipeService,
	supplementService *service.SupplementService,
) *CatalogHandler {
	return &CatalogHandler{
		ingredientService: ingredientService,
		recipeService:     recipeService,
		supplementService: supplementService,
	}
}

// Ингредиенты

func (h *CatalogHandler) CreateIngredient(c *gin.Context) {
	var input service.CreateIngredientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientService.CreateIngredient(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *CatalogHandler) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.UpdateIngredientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ingredientService.UpdateIngredient(id, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ingredientService.DeleteIngredient(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Рецепты

func (h *CatalogHandler) CreateRecipe(c *gin.Context) {
	var input service.CreateRecipeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *CatalogHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.recipeService.DeleteRecipe(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) AddRecipeLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.AddRecipeLineDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.RecipeID = id

	line, err := h.recipeService.AddLine(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (h *CatalogHandler) DeleteRecipeLine(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("lineID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверный ID строки"})
		return
	}
	if err := h.recipeService.DeleteLine(uint(lineID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe line"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Добавки

func (h *CatalogHandler) CreateSupplement(c *gin.Context) {
	var input service.CreateSupplementDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplement, err := h.supplementService.CreateSupplement(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, supplement)
}

func (h *CatalogHandler) UpdateSupplement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.UpdateSupplementDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.supplementService.UpdateSupplement(id, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplement"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteSupplement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.supplementService.DeleteSupplement(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplement"})
		return
	}
	c.Status(http.StatusNoContent)
}
