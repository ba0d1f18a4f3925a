package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotApp — основная структура бота
type BotApp struct {
	API *tgbotapi.BotAPI

	Admins []int64

	ingredientService *service.IngredientService
	recipeService     *service.RecipeService
	supplementService *service.SupplementService
	entryService      *service.EntryService
	userService       *service.UserService
}

// Конструктор бота
func NewBotApp(
	token string,
	ingredientService *service.IngredientService,
	recipeService *service.RecipeService,
	supplementService *service.SupplementService,
	entryService *service.EntryService,
	userService *service.UserService,
	adminIDs []int64,
) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &BotApp{
		API:               botAPI,
		Admins:            adminIDs,
		ingredientService: ingredientService,
		recipeService:     recipeService,
		supplementService: supplementService,
		entryService:      entryService,
		userService:       userService,
	}, nil
}

// Запуск бота
func (b *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	log.Println("🤖 Bot started")

	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update)
			continue
		}

		b.sendText(update.Message.Chat.ID, "Используйте команды, список по /help")
	}
}

// Проверка админа
func (b *BotApp) isAdmin(userID int64) bool {
	for _, id := range b.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// Команды
func (b *BotApp) handleCommand(update tgbotapi.Update) {
	cmd := update.Message.Command()
	chatID := update.Message.Chat.ID

	user, err := b.authenticateUser(update)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка авторизации")
		return
	}

	switch cmd {
	case "start":
		b.sendText(chatID, "👋 Рад вас видеть! Это дневник питания.\nКоманды: /help")
	case "help":
		helpMsg := `📚 *Помощь по использованию дневника питания*

*Основные команды:*
/start - Приветствие
/help - Эта справка
/water <мл> - Записать воду (без числа - стакан 250 мл)
/today - Записи за сегодня
/recipes - Список рецептов
/supplements - Список добавок

*Для администраторов:*
/checkdb - Проверка справочников`

		b.sendText(chatID, helpMsg)
	case "water":
		b.handleWater(chatID, user, update.Message.CommandArguments())
	case "today":
		b.showToday(chatID, user)
	case "recipes":
		b.showRecipes(chatID)
	case "supplements":
		b.showSupplements(chatID)
	case "checkdb":
		if b.isAdmin(update.Message.From.ID) {
			b.checkDatabase(chatID)
		}
	default:
		b.sendText(chatID, "Неизвестная команда. Используйте /help")
	}
}

// handleWater - быстрая запись воды: /water 500
func (b *BotApp) handleWater(chatID int64, user *models.User, args string) {
	milliliters := float64(service.GlassMilliliters)
	args = strings.TrimSpace(args)
	if args != "" {
		parsed := service.ParseQuantity(args)
		if parsed <= 0 {
			b.sendText(chatID, "⚠️ Не понял количество, нужно число в мл")
			return
		}
		milliliters = parsed
	}

	if _, err := b.entryService.LogWater(user.ID, milliliters); err != nil {
		b.sendText(chatID, "❌ Не удалось записать: "+err.Error())
		return
	}

	total, err := b.entryService.WaterTotalForDate(user.ID, "")
	if err != nil {
		b.sendText(chatID, fmt.Sprintf("💧 Записано %.0f мл", milliliters))
		return
	}

	msg := fmt.Sprintf("💧 Записано %.0f мл. Всего за сегодня: %.0f мл", milliliters, total)
	if user.DailyWaterGoal > 0 {
		msg += fmt.Sprintf(" из %d", user.DailyWaterGoal)
	}
	b.sendText(chatID, msg)
}

// showToday - записи дневника за сегодня
func (b *BotApp) showToday(chatID int64, user *models.User) {
	entries, err := b.entryService.ListEntriesByDate(user.ID, "")
	if err != nil {
		b.sendText(chatID, "❌ Ошибка БД: "+err.Error())
		return
	}

	if len(entries) == 0 {
		b.sendText(chatID, "📭 За сегодня записей нет")
		return
	}

	msg := fmt.Sprintf("📅 Записей за сегодня: %d\n\n", len(entries))
	for _, entry := range entries {
		line := fmt.Sprintf("• %s — %s %s", entry.ItemName, formatQuantity(entry.Quantity), entry.Unit)
		if entry.TimeOfDay != "" {
			line += " (" + entry.TimeOfDay + ")"
		}
		msg += line + "\n"
	}

	b.sendText(chatID, msg)
}

// showRecipes - список рецептов из справочника
func (b *BotApp) showRecipes(chatID int64) {
	recipes, err := b.recipeService.ListRecipes()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка БД: "+err.Error())
		return
	}

	if len(recipes) == 0 {
		b.sendText(chatID, "📭 Рецептов пока нет")
		return
	}

	msg := "🍲 *Рецепты:*\n\n"
	for _, recipe := range recipes {
		msg += fmt.Sprintf("• %s (%s порц.)\n", recipe.Name, formatQuantity(recipe.DefaultServings))
	}
	b.sendText(chatID, msg)
}

// showSupplements - список добавок из справочника
func (b *BotApp) showSupplements(chatID int64) {
	supplements, err := b.supplementService.ListSupplements()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка БД: "+err.Error())
		return
	}

	if len(supplements) == 0 {
		b.sendText(chatID, "📭 Добавок пока нет")
		return
	}

	msg := "💊 *Добавки:*\n\n"
	for _, supplement := range supplements {
		line := fmt.Sprintf("• %s (%s)", supplement.Name, supplement.Form)
		if supplement.Dosage != "" {
			line += " — " + supplement.Dosage
		}
		msg += line + "\n"
	}
	b.sendText(chatID, msg)
}

func (b *BotApp) checkDatabase(chatID int64) {
	ingredients, err := b.ingredientService.ListIngredients()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка БД: "+err.Error())
		return
	}

	recipes, _ := b.recipeService.ListRecipes()
	supplements, _ := b.supplementService.ListSupplements()

	msg := fmt.Sprintf("✅ Справочники:\nИнгредиенты: %d\nРецепты: %d\nДобавки: %d",
		len(ingredients), len(recipes), len(supplements))
	b.sendText(chatID, msg)
}

// Регистрация пользователя при первом обращении
func (b *BotApp) authenticateUser(update tgbotapi.Update) (*models.User, error) {
	from := update.Message.From
	return b.userService.RegisterOrGet(service.RegisterUserDTO{
		TelegramID: from.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	})
}

// Отправка сообщений
func (b *BotApp) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := b.API.Send(msg); err != nil {
		log.Printf("[sendText] ERROR: %v", err)

		// Если Markdown вызывает ошибку, пробуем отправить без него
		msg2 := tgbotapi.NewMessage(chatID, text)
		msg2.ParseMode = ""
		if _, err2 := b.API.Send(msg2); err2 != nil {
			log.Printf("[sendText] ERROR without Markdown: %v", err2)
		}
	}
}

// formatQuantity - без лишних нулей: 1, 1.5, 0.25
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseAdminIDs - разбор списка админов из ADMIN_IDS
func ParseAdminIDs(ids string) []int64 {
	var result []int64
	for _, part := range strings.Split(ids, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid admin ID %q", part)
			continue
		}
		result = append(result, id)
	}
	return result
}
