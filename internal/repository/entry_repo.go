package repository

import (
	"time"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"gorm.io/gorm"
)

type EntryRepository interface {
	Create(entry *models.IntakeEntry) (*models.IntakeEntry, error)
	FindByDate(userID uint, date time.Time) ([]*models.IntakeEntry, error)
	FindByID(id uint) (*models.IntakeEntry, error)
	Delete(id uint) error
}

type entryRepo struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) Create(entry *models.IntakeEntry) (*models.IntakeEntry, error) {
	err := r.db.Create(entry).Error
	return entry, err
}

func (r *entryRepo) FindByDate(userID uint, date time.Time) ([]*models.IntakeEntry, error) {
	var entries []*models.IntakeEntry
	day := date.Format("2006-01-02")
	err := r.db.Where("user_id = ? AND entry_date = ?", userID, day).Order("id").Find(&entries).Error
	return entries, err
}

func (r *entryRepo) FindByID(id uint) (*models.IntakeEntry, error) {
	var entry models.IntakeEntry
	err := r.db.First(&entry, id).Error
	return &entry, err
}

func (r *entryRepo) Delete(id uint) error {
	return r.db.Delete(&models.IntakeEntry{}, id).Error
}
