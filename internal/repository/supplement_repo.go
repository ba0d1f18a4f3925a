package repository

import (
	"github.com/alenapavlenkko/nutridiary/internal/models"
	"gorm.io/gorm"
)

type SupplementRepository interface {
	Create(supplement *models.Supplement) (*models.Supplement, error)
	FindAll() ([]*models.Supplement, error)
	FindByID(id uint) (*models.Supplement, error)
	Update(supplement *models.Supplement) error
	Delete(id uint) error
}

type supplementRepo struct {
	db *gorm.DB
}

func NewSupplementRepo(db *gorm.DB) SupplementRepository {
	return &supplementRepo{db: db}
}

func (r *supplementRepo) Create(supplement *models.Supplement) (*models.Supplement, error) {
	err := r.db.Create(supplement).Error
	return supplement, err
}

func (r *supplementRepo) FindAll() ([]*models.Supplement, error) {
	var supplements []*models.Supplement
	err := r.db.Order("name").Find(&supplements).Error
	return supplements, err
}

func (r *supplementRepo) FindByID(id uint) (*models.Supplement, error) {
	var supplement models.Supplement
	err := r.db.First(&supplement, id).Error
	return &supplement, err
}

func (r *supplementRepo) Update(supplement *models.Supplement) error {
	return r.db.Save(supplement).Error
}

func (r *supplementRepo) Delete(id uint) error {
	return r.db.Delete(&models.Supplement{}, id).Error
}
