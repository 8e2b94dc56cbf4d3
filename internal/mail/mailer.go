package mail

import "context"

// Mailer delivers transactional emails.
type Mailer interface {
	// SendOTP sends a one-time passcode to the given address.
	SendOTP(ctx context.Context, toEmail string, otp int) error
}
