package api

import (
	"github.com/alenapavlenkko/nutridiary/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует все маршруты API
func SetupRoutes(r *gin.Engine,
	ingredientService *service.IngredientService,
	recipeService *service.RecipeService,
	supplementService *service.SupplementService,
	entryService *service.EntryService,
	draftService *service.DraftService,
) {
	apiGroup := r.Group("/api")

	// Справочники
	apiGroup.GET("/ingredients", func(c *gin.Context) {
		items, err := ingredientService.ListIngredients()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, items)
	})

	apiGroup.GET("/recipes", func(c *gin.Context) {
		items, err := recipeService.ListRecipes()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, items)
	})

	apiGroup.GET("/supplements", func(c *gin.Context) {
		items, err := supplementService.ListSupplements()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, items)
	})

	// Lookup строк рецепта для диалога создания записи
	apiGroup.GET("/recipes/:id/ingredients", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		lines, err := recipeService.ListLines(id)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, lines)
	})

	// Дневник и черновики
	entryHandler := NewEntryHandler(entryService)
	apiGroup.GET("/entries", entryHandler.ListByDate)
	apiGroup.DELETE("/entries/:id", entryHandler.Delete)

	draftHandler := NewDraftHandler(draftService)
	apiGroup.POST("/drafts", draftHandler.Open)
	apiGroup.GET("/drafts/:id", draftHandler.Get)
	apiGroup.DELETE("/drafts/:id", draftHandler.Close)
	apiGroup.PUT("/drafts/:id/kind", draftHandler.SetKind)
	apiGroup.PUT("/drafts/:id/item", draftHandler.SelectItem)
	apiGroup.PUT("/drafts/:id/quantity", draftHandler.SetQuantity)
	apiGroup.PUT("/drafts/:id/unit", draftHandler.SetUnit)
	apiGroup.PUT("/drafts/:id/details", draftHandler.UpdateDetails)
	apiGroup.PUT("/drafts/:id/lines/:lineID", draftHandler.UpdateLine)
	apiGroup.POST("/drafts/:id/rescale", draftHandler.Rescale)
	apiGroup.POST("/drafts/:id/submit", draftHandler.Submit)

	// Админка справочников
	adminGroup := r.Group("/admin", AuthMiddleware())

	catalogHandler := NewCatalogHandler(ingredientService, recipeService, supplementService)
	adminGroup.POST("/ingredients", catalogHandler.CreateIngredient)
	adminGroup.PUT("/ingredients/:id", catalogHandler.UpdateIngredient)
	adminGroup.DELETE("/ingredients/:id", catalogHandler.DeleteIngredient)
	adminGroup.POST("/recipes", catalogHandler.CreateRecipe)
	adminGroup.DELETE("/recipes/:id", catalogHandler.DeleteRecipe)
	adminGroup.POST("/recipes/:id/ingredients", catalogHandler.AddRecipeLine)
	adminGroup.DELETE("/recipes/:id/ingredients/:lineID", catalogHandler.DeleteRecipeLine)
	adminGroup.POST("/supplements", catalogHandler.CreateSupplement)
	adminGroup.PUT("/supplements/:id", catalogHandler.UpdateSupplement)
	adminGroup.DELETE("/supplements/:id", catalogHandler.DeleteSupplement)
}
