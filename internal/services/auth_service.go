package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yutasaki/todo-list-api/internal/mail"
	"github.com/yutasaki/todo-list-api/internal/models"
	"github.com/yutasaki/todo-list-api/internal/repository"
	"github.com/yutasaki/todo-list-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrOTPInvalid           = errors.New("invalid or expired verification code")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrFailedToSendMail     = errors.New("failed to send verification email")
)

// AuthService handles registration, login and the OTP-backed reset flow.
type AuthService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	mailer   mail.Mailer
	otpTTL   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, otpRepo repository.OTPRepository, mailer mail.Mailer, otpTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
		otpTTL:   otpTTL,
	}
}

// SendOTP generates a passcode for the email, stores it with an expiry and
// mails it. The code is returned so the handler can echo it to the caller.
func (s *AuthService) SendOTP(ctx context.Context, email string) (int, error) {
	return s.issueOTP(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		VerifiedAt:   time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent registrations can race past the lookup above; the
		// unique index rejects the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ForgotPassword issues a reset passcode for an existing account.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (int, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to find user: %w", err)
	}

	return s.issueOTP(ctx, email)
}

// ResetPasswordInput holds the parameters for a password reset.
type ResetPasswordInput struct {
	Email       string
	OTP         string
	NewPassword string
}

// ResetPassword verifies the stored passcode and overwrites the password.
// The code is single use: it is consumed on success.
func (s *AuthService) ResetPassword(input ResetPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	otp, err := s.otpRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPInvalid
		}
		return fmt.Errorf("failed to find verification code: %w", err)
	}

	if otp.Code != input.OTP || time.Now().After(otp.ExpiresAt) {
		return ErrOTPInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.otpRepo.DeleteByEmail(email); err != nil {
		return fmt.Errorf("failed to consume verification code: %w", err)
	}

	return nil
}

func (s *AuthService) issueOTP(ctx context.Context, email string) (int, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return 0, fmt.Errorf("failed to generate otp: %w", err)
	}

	record := &models.PasswordOTP{
		Email:     email,
		Code:      fmt.Sprintf("%06d", code),
		ExpiresAt: time.Now().Add(s.otpTTL),
		CreatedAt: time.Now(),
	}
	if err := s.otpRepo.Upsert(record); err != nil {
		return 0, fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return 0, ErrFailedToSendMail
	}

	return code, nil
}
