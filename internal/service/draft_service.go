package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
	"github.com/google/uuid"
)

// DraftLine - строка ингредиента рецепта внутри черновика
type DraftLine struct {
	LineID       uint
	IngredientID uint
	Name         string
	Quantity     float64
	Unit         string
}

// EntryDraft - черновик записи дневника.
// Живет только в памяти: создается при открытии диалога, удаляется при закрытии.
type EntryDraft struct {
	ID        string
	Kind      string
	ItemID    int64 // 0 = не выбран, models.WaterItemID = вода
	ItemName  string
	Quantity  float64
	Unit      string
	TimeOfDay string
	Notes     string

	// Единица порции выбранной добавки (пусто, если добавка не выбрана)
	ServingUnit string

	// Рабочие строки рецепта, их можно править вручную до отправки
	Lines []DraftLine

	// Канонический список строк из справочника и базовое число порций.
	// Пересчет всегда читает отсюда, ручные правки Lines он перезаписывает.
	baseLines    []DraftLine
	baseServings float64

	// Номер последнего запроса строк; устаревшие ответы отбрасываются
	fetchSeq uint64
}

// ValidUnits - допустимые единицы для текущего состояния черновика
func (d *EntryDraft) ValidUnits() []string {
	return ValidUnitsFor(d.Kind, d.ServingUnit)
}

// CanSubmit - можно ли отправлять: вода всегда, остальное только с выбранным элементом
func (d *EntryDraft) CanSubmit() bool {
	return d.Kind == models.EntryKindWater || d.ItemID != 0
}

// DraftService - логика диалога создания записи
type DraftService struct {
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
	supplementRepo repository.SupplementRepository
	entryRepo      repository.EntryRepository

	mu     sync.Mutex
	drafts map[string]*EntryDraft
}

func NewDraftService(
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	supplementRepo repository.SupplementRepository,
	entryRepo repository.EntryRepository,
) *DraftService {
	return &DraftService{
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
		supplementRepo: supplementRepo,
		entryRepo:      entryRepo,
		drafts:         make(map[string]*EntryDraft),
	}
}

// Open - открыть диалог: создается пустой черновик с типом "ингредиент"
func (s *DraftService) Open() *EntryDraft {
	d := &EntryDraft{
		ID:       uuid.NewString(),
		Kind:     models.EntryKindIngredient,
		Quantity: DefaultQuantity(models.EntryKindIngredient),
		Unit:     DefaultUnit(models.EntryKindIngredient),
	}

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()

	return s.snapshot(d)
}

// Get - текущее состояние черновика
func (s *DraftService) Get(id string) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}
	return s.snapshot(d), nil
}

// Close - закрыть диалог, черновик отбрасывается без сохранения
func (s *DraftService) Close(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}

// SetKind - смена типа записи.
// Сбрасывает количество, единицу и выбранный элемент, строки рецепта очищаются.
func (s *DraftService) SetKind(id, kind string) (*EntryDraft, error) {
	switch kind {
	case models.EntryKindIngredient, models.EntryKindRecipe,
		models.EntryKindSupplement, models.EntryKindWater:
	default:
		return nil, fmt.Errorf("неизвестный тип записи: %s", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	d.Kind = kind
	d.Quantity = DefaultQuantity(kind)
	d.Unit = DefaultUnit(kind)
	d.ItemName = ""
	d.ServingUnit = ""
	d.Lines = nil
	d.baseLines = nil
	d.baseServings = 0
	d.fetchSeq++ // ответ на незавершенный запрос строк больше не нужен

	if kind == models.EntryKindWater {
		d.ItemID = models.WaterItemID
		d.ItemName = "Вода"
	} else {
		d.ItemID = 0
	}

	d.Unit = EnsureUnit(d.Unit, d.ValidUnits())
	return s.snapshot(d), nil
}

// SelectItem - выбор элемента справочника.
// Для рецепта дополнительно запускается асинхронная загрузка строк ингредиентов.
func (s *DraftService) SelectItem(id string, itemID int64) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	switch d.Kind {
	case models.EntryKindWater:
		return nil, fmt.Errorf("для воды элемент не выбирается")

	case models.EntryKindIngredient:
		ingredient, err := s.ingredientRepo.FindByID(uint(itemID))
		if err != nil {
			return nil, fmt.Errorf("ингредиент не найден: %w", err)
		}
		d.ItemID = itemID
		d.ItemName = ingredient.Name

	case models.EntryKindSupplement:
		supplement, err := s.supplementRepo.FindByID(uint(itemID))
		if err != nil {
			return nil, fmt.Errorf("добавка не найдена: %w", err)
		}
		d.ItemID = itemID
		d.ItemName = supplement.Name
		d.ServingUnit = SupplementServingUnit(supplement)

	case models.EntryKindRecipe:
		recipe, err := s.recipeRepo.FindByID(uint(itemID))
		if err != nil {
			return nil, fmt.Errorf("рецепт не найден: %w", err)
		}
		d.ItemID = itemID
		d.ItemName = recipe.Name
		d.Quantity = 1
		// Старые строки отбрасываются сразу, новые придут асинхронно
		d.Lines = nil
		d.baseLines = nil
		d.baseServings = 0
		d.fetchSeq++
		go s.fetchRecipeLines(id, uint(itemID), d.fetchSeq)
	}

	d.Unit = EnsureUnit(d.Unit, d.ValidUnits())
	return s.snapshot(d), nil
}

// fetchRecipeLines - загрузка строк рецепта из справочника.
// Ошибки не ретраятся, их поверхность - лог (это зона ответственности репозитория).
func (s *DraftService) fetchRecipeLines(draftID string, recipeID uint, seq uint64) {
	recipe, err := s.recipeRepo.FindByID(recipeID)
	if err != nil {
		log.Printf("Warning: failed to load recipe %d: %v", recipeID, err)
		return
	}

	lines, err := s.recipeRepo.FindLinesByRecipeID(recipeID)
	if err != nil {
		log.Printf("Warning: failed to load recipe lines %d: %v", recipeID, err)
		return
	}

	draftLines := make([]DraftLine, 0, len(lines))
	for _, line := range lines {
		draftLines = append(draftLines, DraftLine{
			LineID:       line.ID,
			IngredientID: line.IngredientID,
			Name:         line.Ingredient.Name,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		})
	}

	s.ApplyFetchedLines(draftID, seq, recipe.DefaultServings, draftLines)
}

// ApplyFetchedLines - доставка результата загрузки строк.
// Ответ с номером, не совпадающим с последним запросом, отбрасывается:
// медленный первый запрос не должен затирать более поздний выбор.
func (s *DraftService) ApplyFetchedLines(draftID string, seq uint64, defaultServings float64, lines []DraftLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok || d.fetchSeq != seq || d.Kind != models.EntryKindRecipe {
		return
	}

	if defaultServings <= 0 {
		defaultServings = 1
	}

	d.baseLines = lines
	d.baseServings = defaultServings
	d.Lines = make([]DraftLine, len(lines))
	copy(d.Lines, lines)
}

// SetQuantity - изменение количества.
// Для рецепта количество - это целевое число порций, строки пересчитываются.
func (s *DraftService) SetQuantity(id string, quantity float64) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	d.Quantity = quantity
	if d.Kind == models.EntryKindRecipe && len(d.baseLines) > 0 {
		d.Lines = rescaleLines(d.baseLines, d.baseServings, d.Quantity)
	}
	return s.snapshot(d), nil
}

// SetUnit - смена единицы, допускаются только единицы из текущего набора
func (s *DraftService) SetUnit(id, unit string) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	valid := d.ValidUnits()
	for _, u := range valid {
		if u == unit {
			d.Unit = unit
			return s.snapshot(d), nil
		}
	}
	return nil, fmt.Errorf("единица %s недопустима для типа %s", unit, d.Kind)
}

// UpdateDetails - время приема и заметка
func (s *DraftService) UpdateDetails(id string, dto UpdateDraftDetailsDTO) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	d.TimeOfDay = dto.TimeOfDay
	d.Notes = dto.Notes
	return s.snapshot(d), nil
}

// UpdateLine - ручная правка строки рецепта.
// Правка живет до следующего пересчета: Rescale читает канонический список.
func (s *DraftService) UpdateLine(id string, lineID uint, quantity float64, unit string) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	for i := range d.Lines {
		if d.Lines[i].LineID == lineID {
			d.Lines[i].Quantity = quantity
			if unit != "" {
				d.Lines[i].Unit = unit
			}
			return s.snapshot(d), nil
		}
	}
	return nil, fmt.Errorf("строка %d не найдена", lineID)
}

// Rescale - явный пересчет строк под текущее число порций.
// Всегда берет канонические пропорции рецепта, ручные правки перезаписываются.
func (s *DraftService) Rescale(id string) (*EntryDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("черновик %s не найден", id)
	}

	if d.Kind != models.EntryKindRecipe || len(d.baseLines) == 0 {
		return nil, fmt.Errorf("пересчет доступен только для рецепта с загруженными строками")
	}

	d.Lines = rescaleLines(d.baseLines, d.baseServings, d.Quantity)
	return s.snapshot(d), nil
}

// rescaleLines - базовые количества, умноженные на target/base порций
func rescaleLines(base []DraftLine, baseServings, targetServings float64) []DraftLine {
	factor := targetServings / baseServings
	lines := make([]DraftLine, len(base))
	copy(lines, base)
	for i := range lines {
		lines[i].Quantity = Round2(lines[i].Quantity * factor)
	}
	return lines
}

// Submit - отправка черновика: запись уходит в дневник, черновик удаляется
func (s *DraftService) Submit(id string, dto SubmitDraftDTO) (*models.IntakeEntry, error) {
	s.mu.Lock()
	d, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("черновик %s не найден", id)
	}
	if !d.CanSubmit() {
		s.mu.Unlock()
		return nil, fmt.Errorf("не выбран элемент справочника")
	}
	entry := &models.IntakeEntry{
		UserID:    dto.UserID,
		Kind:      d.Kind,
		ItemID:    d.ItemID,
		ItemName:  d.ItemName,
		Quantity:  d.Quantity,
		Unit:      d.Unit,
		TimeOfDay: d.TimeOfDay,
		Notes:     d.Notes,
	}
	s.mu.Unlock()

	entryDate := time.Now()
	if dto.Date != "" {
		parsed, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return nil, fmt.Errorf("неверный формат даты: %w", err)
		}
		entryDate = parsed
	}
	entry.EntryDate = entryDate

	created, err := s.entryRepo.Create(entry)
	if err != nil {
		return nil, err
	}

	s.Close(id)
	return created, nil
}

// snapshot - копия черновика для выдачи наружу, рабочие строки копируются
func (s *DraftService) snapshot(d *EntryDraft) *EntryDraft {
	c := *d
	c.Lines = make([]DraftLine, len(d.Lines))
	copy(c.Lines, d.Lines)
	c.baseLines = nil
	return &c
}
