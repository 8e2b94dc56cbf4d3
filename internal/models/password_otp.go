package models

import "time"

// PasswordOTP is the server-side record of a one-time passcode issued to an
// email address. At most one live code exists per email; a new issue replaces
// the previous one, and a successful password reset consumes it.
type PasswordOTP struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
