package main

import (
	"os"

	"github.com/alenapavlenkko/nutridiary/internal/bot"
	"github.com/alenapavlenkko/nutridiary/internal/database"
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
	"github.com/alenapavlenkko/nutridiary/internal/service"
	"github.com/alenapavlenkko/nutridiary/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		utils.Log.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewPostgres(dsn)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	if err := database.AutoMigrateTables(db,
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Supplement{},
		&models.IntakeEntry{},
		&models.User{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	ingredientRepo := repository.NewIngredientRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	supplementRepo := repository.NewSupplementRepo(db)
	entryRepo := repository.NewEntryRepo(db)
	userRepo := repository.NewUserRepo(db)

	// -----------------------
	// SERVICES
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, ingredientRepo)
	supplementService := service.NewSupplementService(supplementRepo)
	entryService := service.NewEntryService(entryRepo)
	userService := service.NewUserService(userRepo)

	// -----------------------
	// BOT
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		utils.Log.Error("TELEGRAM_TOKEN not set")
		os.Exit(1)
	}

	adminIDs := bot.ParseAdminIDs(os.Getenv("ADMIN_IDS"))
	utils.Log.Info("Loaded admin IDs")

	botApp, err := bot.NewBotApp(
		token,
		ingredientService,
		recipeService,
		supplementService,
		entryService,
		userService,
		adminIDs,
	)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	utils.Log.Info("Telegram bot starting...")
	botApp.Run()
}
