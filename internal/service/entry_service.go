package service

import (
	"fmt"
	"time"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
)

type EntryService struct {
	repo repository.EntryRepository
}

func NewEntryService(repo repository.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

// CreateEntry - создать запись дневника напрямую (мимо диалога, для бота)
func (s *EntryService) CreateEntry(dto CreateEntryDTO) (*models.IntakeEntry, error) {
	entryDate := time.Now()
	if dto.Date != "" {
		parsed, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return nil, fmt.Errorf("неверный формат даты: %w", err)
		}
		entryDate = parsed
	}

	entry := &models.IntakeEntry{
		UserID:    dto.UserID,
		Kind:      dto.Kind,
		ItemID:    dto.ItemID,
		ItemName:  dto.ItemName,
		Quantity:  dto.Quantity,
		Unit:      dto.Unit,
		EntryDate: entryDate,
		TimeOfDay: dto.TimeOfDay,
		Notes:     dto.Notes,
	}

	return s.repo.Create(entry)
}

// LogWater - быстрая запись воды
func (s *EntryService) LogWater(userID uint, milliliters float64) (*models.IntakeEntry, error) {
	if milliliters <= 0 {
		milliliters = DefaultQuantity(models.EntryKindWater)
	}

	entry := &models.IntakeEntry{
		UserID:    userID,
		Kind:      models.EntryKindWater,
		ItemID:    models.WaterItemID,
		ItemName:  "Вода",
		Quantity:  milliliters,
		Unit:      UnitMilliliter,
		EntryDate: time.Now(),
	}

	return s.repo.Create(entry)
}

// ListEntriesByDate - записи за день (навигация по датам)
func (s *EntryService) ListEntriesByDate(userID uint, date string) ([]*models.IntakeEntry, error) {
	day := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("неверный формат даты: %w", err)
		}
		day = parsed
	}
	return s.repo.FindByDate(userID, day)
}

// WaterTotalForDate - суммарная вода за день в мл
func (s *EntryService) WaterTotalForDate(userID uint, date string) (float64, error) {
	entries, err := s.ListEntriesByDate(userID, date)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, entry := range entries {
		if entry.Kind != models.EntryKindWater {
			continue
		}
		switch entry.Unit {
		case UnitLiter:
			total += entry.Quantity * 1000
		case UnitGlass, UnitCup:
			total += entry.Quantity * GlassMilliliters
		default:
			total += entry.Quantity
		}
	}
	return total, nil
}

// DeleteEntry - удалить запись
func (s *EntryService) DeleteEntry(id uint) error {
	return s.repo.Delete(id)
}
