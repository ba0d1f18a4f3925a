package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	TelegramID     int64 `gorm:"uniqueIndex"`
	Username       string
	FirstName      string
	LastName       string
	Role           string `gorm:"default:'user'"`
	DailyWaterGoal int    `gorm:"default:2000"` // цель по воде в мл
	DailyCalories  int    // цель по калориям, 0 = не задана
}
