package service

import (
	"encoding/json"
	"fmt"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
	"gorm.io/datatypes"
)

type SupplementService struct {
	repo repository.SupplementRepository
}

func NewSupplementService(repo repository.SupplementRepository) *SupplementService {
	return &SupplementService{repo: repo}
}

// CreateSupplement - создать добавку
func (s *SupplementService) CreateSupplement(dto CreateSupplementDTO) (*models.Supplement, error) {
	if dto.Name == "" {
		return nil, fmt.Errorf("название добавки не может быть пустым")
	}

	form := dto.Form
	if form == "" {
		form = models.SupplementFormTablet
	}

	supplement := &models.Supplement{
		Name:        dto.Name,
		Form:        form,
		ServingUnit: dto.ServingUnit,
		Dosage:      dto.Dosage,
	}

	if len(dto.ReminderTimes) > 0 {
		raw, err := json.Marshal(dto.ReminderTimes)
		if err != nil {
			return nil, fmt.Errorf("неверный формат напоминаний: %w", err)
		}
		supplement.ReminderTimes = datatypes.JSON(raw)
	}

	return s.repo.Create(supplement)
}

// ListSupplements - список добавок
func (s *SupplementService) ListSupplements() ([]*models.Supplement, error) {
	return s.repo.FindAll()
}

// GetSupplementByID - получить добавку по ID
func (s *SupplementService) GetSupplementByID(id uint) (*models.Supplement, error) {
	return s.repo.FindByID(id)
}

// UpdateSupplement - обновить добавку
func (s *SupplementService) UpdateSupplement(id uint, dto UpdateSupplementDTO) error {
	supplement, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if dto.Name != "" {
		supplement.Name = dto.Name
	}
	if dto.Form != "" {
		supplement.Form = dto.Form
	}
	if dto.ServingUnit != "" {
		supplement.ServingUnit = dto.ServingUnit
	}
	if dto.Dosage != "" {
		supplement.Dosage = dto.Dosage
	}

	return s.repo.Update(supplement)
}

// DeleteSupplement - удалить добавку
func (s *SupplementService) DeleteSupplement(id uint) error {
	return s.repo.Delete(id)
}
