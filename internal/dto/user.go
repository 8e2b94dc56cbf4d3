package dto

import (
	"github.com/yutasaki/todo-list-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never
// leaves the persistence layer.
type UserDTO struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		ProfilePhoto: user.ProfilePhoto,
	}
}
