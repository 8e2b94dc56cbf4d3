package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"
	"github.com/yutasaki/todo-list-api/internal/config"
)

// SMTPMailer sends mail through a plain SMTP endpoint.
type SMTPMailer struct {
	lg zerolog.Logger

	host     string
	port     int
	user     string
	pass     string
	from     string
	insecure bool

	timeout time.Duration
}

// NewSMTPMailer creates an SMTPMailer from the SMTP section of the config.
func NewSMTPMailer(cfg *config.Config, lg zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		lg:       lg.With().Str("component", "smtp_mailer").Logger(),
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUsername,
		pass:     cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		insecure: cfg.SMTPInsecure,
		timeout:  cfg.SMTPTimeout,
	}
}

// SendOTP sends the passcode in an HTML mail with a plain-text fallback.
func (s *SMTPMailer) SendOTP(ctx context.Context, toEmail string, otp int) error {
	subject := "Your verification code"
	text := fmt.Sprintf("Your verification code is %06d. It expires in 10 minutes.\n", otp)
	htmlBody, err := RenderOTPTemplate(otp)
	if err != nil {
		return fmt.Errorf("failed to render otp template: %w", err)
	}

	return s.send(ctx, toEmail, subject, text, htmlBody)
}

func (s *SMTPMailer) send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(subject)

	// Text fallback + HTML alternative
	m.SetBodyString(gomail.TypeTextPlain, textBody)
	m.AddAlternativeString(gomail.TypeTextHTML, htmlBody)

	tlsPolicy := gomail.TLSMandatory
	if s.insecure {
		tlsPolicy = gomail.TLSOpportunistic
	}

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPolicy(tlsPolicy),
	}
	if s.user != "" {
		opts = append(opts, gomail.WithSMTPAuth(gomail.SMTPAuthPlain), gomail.WithUsername(s.user), gomail.WithPassword(s.pass))
	}

	c, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		s.lg.Error().Err(err).Str("to", to).Msg("smtp send failed")
		return fmt.Errorf("failed to send mail: %w", err)
	}

	s.lg.Info().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}
