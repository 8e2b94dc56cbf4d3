package repository

import (
	"github.com/yutasaki/todo-list-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error

	// DeleteWithTasks deletes the user and all of their tasks within a
	// single transaction.
	DeleteWithTasks(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByUserID retrieves all tasks owned by a user, newest first
	ListByUserID(userID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}

// OTPRepository defines the interface for one-time passcode data access
type OTPRepository interface {
	// Upsert stores the live code for an email, replacing any previous one
	Upsert(otp *models.PasswordOTP) error

	// FindByEmail finds the live code for an email
	FindByEmail(email string) (*models.PasswordOTP, error)

	// DeleteByEmail removes the live code for an email
	DeleteByEmail(email string) error
}
