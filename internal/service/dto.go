package service

// Ingredient DTOs
type CreateIngredientDTO struct {
	Name            string
	Brand           string
	CaloriesPer100g float64
	Protein         float64
	Carbs           float64
	Fats            float64
}

type UpdateIngredientDTO struct {
	Name            string
	Brand           string
	CaloriesPer100g float64
	Protein         float64
	Carbs           float64
	Fats            float64
}

// DTO для рецептов
type CreateRecipeDTO struct {
	Name            string
	Description     string
	DefaultServings float64
}

type AddRecipeLineDTO struct {
	RecipeID     uint
	IngredientID uint
	Quantity     float64
	Unit         string
}

// Supplement DTOs
type CreateSupplementDTO struct {
	Name          string
	Form          string
	ServingUnit   string
	Dosage        string
	ReminderTimes []string
}

type UpdateSupplementDTO struct {
	Name        string
	Form        string
	ServingUnit string
	Dosage      string
}

// DTO черновика записи
type UpdateDraftDetailsDTO struct {
	TimeOfDay string
	Notes     string
}

type SubmitDraftDTO struct {
	UserID uint
	Date   string // YYYY-MM-DD
}

// Entry DTOs
type CreateEntryDTO struct {
	UserID    uint
	Kind      string
	ItemID    int64
	ItemName  string
	Quantity  float64
	Unit      string
	Date      string // YYYY-MM-DD
	TimeOfDay string
	Notes     string
}

// User DTOs
type RegisterUserDTO struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}
