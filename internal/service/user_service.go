package service

import (
	"errors"

	"github.com/alenapavlenkko/nutridiary/internal/models"
	"github.com/alenapavlenkko/nutridiary/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RegisterOrGet - найти пользователя по Telegram ID или зарегистрировать нового
func (s *UserService) RegisterOrGet(dto RegisterUserDTO) (*models.User, error) {
	user, err := s.repo.FindByTelegramID(dto.TelegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		TelegramID: dto.TelegramID,
		Username:   dto.Username,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
	}
	return s.repo.Create(user)
}

// GetUserByTelegramID - получить пользователя по Telegram ID
func (s *UserService) GetUserByTelegramID(telegramID int64) (*models.User, error) {
	return s.repo.FindByTelegramID(telegramID)
}

// GetUsersCount - количество пользователей
func (s *UserService) GetUsersCount() (int64, error) {
	return s.repo.Count()
}

// GetAllUsers - все пользователи
func (s *UserService) GetAllUsers() ([]*models.User, error) {
	return s.repo.FindAll()
}
