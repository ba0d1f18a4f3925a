package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/alenapavlenkko/nutridiary/internal/api"
	"github.com/alenapavlenkko/nutridiary/internal/database"
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
	"github.com/alenapavlenkko/nutridiary/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	// Подключение к базе
	db, err := database.NewPostgres(dsn)
	if err != nil {
		log.Fatal(err)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db,
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Supplement{},
		&models.IntakeEntry{},
		&models.User{},
	); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	// Репозитории
	ingredientRepo := repository.NewIngredientRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	supplementRepo := repository.NewSupplementRepo(db)
	entryRepo := repository.NewEntryRepo(db)

	// Сервисы
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, ingredientRepo)
	supplementService := service.NewSupplementService(supplementRepo)
	entryService := service.NewEntryService(entryRepo)
	draftService := service.NewDraftService(ingredientRepo, recipeRepo, supplementRepo, entryRepo)

	// Gin router
	router := gin.Default()

	api.SetupRoutes(router, ingredientService, recipeService, supplementService, entryService, draftService)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("API server starting on " + addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to run API server:", err)
	}
}
