package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Формы выпуска добавок
const (
	SupplementFormTablet  = "tablet"
	SupplementFormCapsule = "capsule"
	SupplementFormPowder  = "powder"
	SupplementFormLiquid  = "liquid"
)

// Supplement - пищевая добавка из справочника
type Supplement struct {
	gorm.Model
	Name            string         `gorm:"type:varchar(255);not null"` // Витамин D3
	Form            string         `gorm:"type:varchar(50);not null"`  // tablet, powder, liquid...
	ServingUnit     string         `gorm:"type:varchar(50)"`           // scoop, drop; пусто = serving
	Dosage          string         `gorm:"type:varchar(100)"`          // "10000 МЕ/день"
	ReminderTimes   datatypes.JSON // JSON массив строк: ["08:00","12:00"]
	ReminderEnabled bool           `gorm:"default:true"`
}
