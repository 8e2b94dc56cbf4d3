package mail

import (
	"context"
	"sync"
)

// SentMail records a single delivery made through the FakeMailer.
type SentMail struct {
	To  string
	OTP int
}

// FakeMailer records sends instead of talking to an SMTP server. Used in tests
// and when no SMTP host is configured.
type FakeMailer struct {
	mu   sync.Mutex
	Sent []SentMail

	// Err, when set, is returned from every send.
	Err error
}

// NewFakeMailer creates an empty FakeMailer.
func NewFakeMailer() *FakeMailer {
	return &FakeMailer{}
}

// SendOTP records the delivery.
func (f *FakeMailer) SendOTP(_ context.Context, toEmail string, otp int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}

	f.Sent = append(f.Sent, SentMail{To: toEmail, OTP: otp})
	return nil
}

// LastSent returns the most recent delivery, if any.
func (f *FakeMailer) LastSent() (SentMail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Sent) == 0 {
		return SentMail{}, false
	}
	return f.Sent[len(f.Sent)-1], true
}
