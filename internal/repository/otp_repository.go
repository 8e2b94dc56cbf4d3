package repository

import (
	"github.com/yutasaki/todo-list-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOTPRepository is a GORM implementation of OTPRepository
type GormOTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &GormOTPRepository{db: db}
}

// Upsert stores the live code for an email, replacing any previous one
func (r *GormOTPRepository) Upsert(otp *models.PasswordOTP) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
		}).
		Create(otp).Error
}

// FindByEmail finds the live code for an email
func (r *GormOTPRepository) FindByEmail(email string) (*models.PasswordOTP, error) {
	var otp models.PasswordOTP
	if err := r.db.Where("email = ?", email).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

// DeleteByEmail removes the live code for an email
func (r *GormOTPRepository) DeleteByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.PasswordOTP{}).Error
}
