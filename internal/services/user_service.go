package services

import (
	"errors"
	"fmt"

	"github.com/yutasaki/todo-list-api/internal/models"
	"github.com/yutasaki/todo-list-api/internal/repository"
	"gorm.io/gorm"
)

// UserService handles profile and account management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdatePhoto sets the user's profile photo. An empty photo clears it.
func (s *UserService) UpdatePhoto(userID uint64, photo string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.ProfilePhoto = photo
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	return user, nil
}

// DeleteAccount removes the user and every task they own.
func (s *UserService) DeleteAccount(userID uint64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.DeleteWithTasks(userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
