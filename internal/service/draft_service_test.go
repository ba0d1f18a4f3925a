package service

import (
	"testing"
	"time"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Фейковые репозитории для тестов без базы

type fakeIngredientRepo struct {
	items map[uint]*models.Ingredient
}

func (r *fakeIngredientRepo) Create(i *models.Ingredient) (*models.Ingredient, error) {
	r.items[i.ID] = i
	return i, nil
}

func (r *fakeIngredientRepo) FindAll() ([]*models.Ingredient, error) {
	var all []*models.Ingredient
	for _, i := range r.items {
		all = append(all, i)
	}
	return all, nil
}

func (r *fakeIngredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *fakeIngredientRepo) Update(i *models.Ingredient) error { return nil }
func (r *fakeIngredientRepo) Delete(id uint) error              { return nil }

type fakeRecipeRepo struct {
	recipes map[uint]*models.Recipe
	lines   map[uint][]*models.RecipeIngredient
}

func (r *fakeRecipeRepo) Create(rec *models.Recipe) (*models.Recipe, error) {
	r.recipes[rec.ID] = rec
	return rec, nil
}

func (r *fakeRecipeRepo) FindAll() ([]*models.Recipe, error) { return nil, nil }

func (r *fakeRecipeRepo) FindByID(id uint) (*models.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *fakeRecipeRepo) Update(rec *models.Recipe) error { return nil }
func (r *fakeRecipeRepo) Delete(id uint) error            { return nil }

func (r *fakeRecipeRepo) CreateLine(line *models.RecipeIngredient) (*models.RecipeIngredient, error) {
	r.lines[line.RecipeID] = append(r.lines[line.RecipeID], line)
	return line, nil
}

func (r *fakeRecipeRepo) FindLinesByRecipeID(recipeID uint) ([]*models.RecipeIngredient, error) {
	return r.lines[recipeID], nil
}

func (r *fakeRecipeRepo) UpdateLine(line *models.RecipeIngredient) error { return nil }
func (r *fakeRecipeRepo) DeleteLine(lineID uint) error                   { return nil }

type fakeSupplementRepo struct {
	items map[uint]*models.Supplement
}

func (r *fakeSupplementRepo) Create(s *models.Supplement) (*models.Supplement, error) {
	r.items[s.ID] = s
	return s, nil
}

func (r *fakeSupplementRepo) FindAll() ([]*models.Supplement, error) { return nil, nil }

func (r *fakeSupplementRepo) FindByID(id uint) (*models.Supplement, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSupplementRepo) Update(s *models.Supplement) error { return nil }
func (r *fakeSupplementRepo) Delete(id uint) error              { return nil }

type fakeEntryRepo struct {
	created []*models.IntakeEntry
}

func (r *fakeEntryRepo) Create(e *models.IntakeEntry) (*models.IntakeEntry, error) {
	e.ID = uint(len(r.created) + 1)
	r.created = append(r.created, e)
	return e, nil
}

func (r *fakeEntryRepo) FindByDate(userID uint, date time.Time) ([]*models.IntakeEntry, error) {
	return r.created, nil
}

func (r *fakeEntryRepo) FindByID(id uint) (*models.IntakeEntry, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEntryRepo) Delete(id uint) error { return nil }

func setupDraftService() (*DraftService, *fakeEntryRepo) {
	ingredients := &fakeIngredientRepo{items: map[uint]*models.Ingredient{
		10: {Model: gorm.Model{ID: 10}, Name: "Овсянка"},
	}}

	recipes := &fakeRecipeRepo{
		recipes: map[uint]*models.Recipe{
			1: {Model: gorm.Model{ID: 1}, Name: "Каша", DefaultServings: 4},
			2: {Model: gorm.Model{ID: 2}, Name: "Суп", DefaultServings: 2},
		},
		lines: map[uint][]*models.RecipeIngredient{
			1: {{
				Model:        gorm.Model{ID: 100},
				RecipeID:     1,
				IngredientID: 10,
				Ingredient:   models.Ingredient{Model: gorm.Model{ID: 10}, Name: "Овсянка"},
				Quantity:     200,
				Unit:         UnitGram,
			}},
			2: {{
				Model:        gorm.Model{ID: 200},
				RecipeID:     2,
				IngredientID: 10,
				Ingredient:   models.Ingredient{Model: gorm.Model{ID: 10}, Name: "Овсянка"},
				Quantity:     50,
				Unit:         UnitGram,
			}},
		},
	}

	supplements := &fakeSupplementRepo{items: map[uint]*models.Supplement{
		5: {Model: gorm.Model{ID: 5}, Name: "Протеин", Form: models.SupplementFormPowder, ServingUnit: "scoop"},
		6: {Model: gorm.Model{ID: 6}, Name: "Магний", Form: models.SupplementFormTablet},
	}}

	entries := &fakeEntryRepo{}

	return NewDraftService(ingredients, recipes, supplements, entries), entries
}

func waitForLines(t *testing.T, s *DraftService, id string) *EntryDraft {
	t.Helper()
	assert.Eventually(t, func() bool {
		d, err := s.Get(id)
		return err == nil && len(d.Lines) > 0
	}, time.Second, 5*time.Millisecond)

	d, err := s.Get(id)
	assert.NoError(t, err)
	return d
}

func TestOpenDraftDefaults(t *testing.T) {
	s, _ := setupDraftService()

	d := s.Open()
	assert.Equal(t, models.EntryKindIngredient, d.Kind)
	assert.Equal(t, int64(0), d.ItemID)
	assert.Equal(t, 1.0, d.Quantity)
	assert.Equal(t, UnitGram, d.Unit)
	assert.False(t, d.CanSubmit())
}

func TestKindChangeResetToWater(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	// Выбираем ингредиент, потом переключаем тип на воду
	_, err := s.SelectItem(d.ID, 10)
	assert.NoError(t, err)

	d, err = s.SetKind(d.ID, models.EntryKindWater)
	assert.NoError(t, err)
	assert.Equal(t, 250.0, d.Quantity)
	assert.Equal(t, UnitMilliliter, d.Unit)
	assert.Equal(t, models.WaterItemID, d.ItemID)
	assert.True(t, d.CanSubmit())
}

func TestKindChangeClearsSelection(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	_, err := s.SetKind(d.ID, models.EntryKindSupplement)
	assert.NoError(t, err)
	_, err = s.SelectItem(d.ID, 5)
	assert.NoError(t, err)

	d, err = s.SetKind(d.ID, models.EntryKindIngredient)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), d.ItemID)
	assert.Equal(t, "", d.ItemName)
	assert.Equal(t, 1.0, d.Quantity)
	assert.Equal(t, UnitGram, d.Unit)
	assert.False(t, d.CanSubmit())
}

func TestSelectSupplementCorrectsUnit(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	d, err := s.SetKind(d.ID, models.EntryKindSupplement)
	assert.NoError(t, err)
	assert.Equal(t, UnitTablet, d.Unit)

	// Порошок измеряется мерными ложками, единица корректируется сама
	d, err = s.SelectItem(d.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, "scoop", d.Unit)
	assert.Equal(t, []string{"scoop"}, d.ValidUnits())

	// Таблетки остаются таблетками
	d, err = s.SelectItem(d.ID, 6)
	assert.NoError(t, err)
	assert.Equal(t, UnitTablet, d.Unit)
}

func TestSelectRecipeLoadsLines(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	_, err := s.SetKind(d.ID, models.EntryKindRecipe)
	assert.NoError(t, err)

	d, err = s.SelectItem(d.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, UnitServing, d.Unit)
	assert.Equal(t, 1.0, d.Quantity)

	d = waitForLines(t, s, d.ID)
	assert.Len(t, d.Lines, 1)
	assert.Equal(t, 200.0, d.Lines[0].Quantity)
	assert.Equal(t, "Овсянка", d.Lines[0].Name)
}

func TestRescaleByServings(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	s.SetKind(d.ID, models.EntryKindRecipe)
	_, err := s.SelectItem(d.ID, 1)
	assert.NoError(t, err)
	waitForLines(t, s, d.ID)

	// База: 200 г на 4 порции
	d, err = s.SetQuantity(d.ID, 6)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, d.Lines[0].Quantity)

	d, err = s.SetQuantity(d.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, d.Lines[0].Quantity)

	// Повторный пересчет с тем же числом порций ничего не меняет
	d, err = s.Rescale(d.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, d.Lines[0].Quantity)
}

func TestRescaleOverwritesManualEdit(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	s.SetKind(d.ID, models.EntryKindRecipe)
	_, err := s.SelectItem(d.ID, 1)
	assert.NoError(t, err)
	waitForLines(t, s, d.ID)

	// Ручная правка строки
	d, err = s.UpdateLine(d.ID, 100, 999, "")
	assert.NoError(t, err)
	assert.Equal(t, 999.0, d.Lines[0].Quantity)

	// Пересчет всегда читает канонические пропорции, правка теряется
	d, err = s.Rescale(d.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, d.Lines[0].Quantity)
}

func TestStaleFetchDiscarded(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	s.SetKind(d.ID, models.EntryKindRecipe)
	first, err := s.SelectItem(d.ID, 1)
	assert.NoError(t, err)
	waitForLines(t, s, d.ID)

	second, err := s.SelectItem(d.ID, 2)
	assert.NoError(t, err)
	assert.Greater(t, second.fetchSeq, first.fetchSeq)
	d = waitForLines(t, s, d.ID)
	assert.Equal(t, 50.0, d.Lines[0].Quantity)

	// Запоздавший ответ первого запроса отбрасывается
	s.ApplyFetchedLines(d.ID, first.fetchSeq, 4, []DraftLine{{LineID: 100, Quantity: 200, Unit: UnitGram}})

	d, err = s.Get(d.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, d.Lines[0].Quantity)
	assert.Equal(t, uint(200), d.Lines[0].LineID)
}

func TestSetUnitRejectsInvalid(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	_, err := s.SetUnit(d.ID, UnitKilogram)
	assert.NoError(t, err)

	_, err = s.SetUnit(d.ID, UnitServing)
	assert.Error(t, err)
}

func TestSubmitGuard(t *testing.T) {
	s, entries := setupDraftService()
	d := s.Open()

	// Ингредиент без выбранного элемента не отправляется
	_, err := s.Submit(d.ID, SubmitDraftDTO{UserID: 1})
	assert.Error(t, err)

	// Вода отправляется без выбора элемента
	_, err = s.SetKind(d.ID, models.EntryKindWater)
	assert.NoError(t, err)

	entry, err := s.Submit(d.ID, SubmitDraftDTO{UserID: 1, Date: "2024-03-10"})
	assert.NoError(t, err)
	assert.Equal(t, models.EntryKindWater, entry.Kind)
	assert.Equal(t, 250.0, entry.Quantity)
	assert.Equal(t, UnitMilliliter, entry.Unit)
	assert.Len(t, entries.created, 1)

	// Черновик удален после отправки
	_, err = s.Get(d.ID)
	assert.Error(t, err)
}

func TestMalformedQuantityCoercedToZero(t *testing.T) {
	s, _ := setupDraftService()
	d := s.Open()

	d, err := s.SetQuantity(d.ID, ParseQuantity("не число"))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, d.Quantity)
}
