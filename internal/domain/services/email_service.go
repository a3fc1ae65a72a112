package services

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"hearttune-http-service/internal/infrastructure/config"
)

// InterfaceEmailService defines the mail delivery interface
type InterfaceEmailService interface {
	SendPasswordReset(to string, accountID uint) error
}

// EmailService sends transactional mail over SMTP
type EmailService struct {
	Config *config.Config
	dialer *gomail.Dialer
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) InterfaceEmailService {
	return &EmailService{
		Config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// SendPasswordReset mails a reset link keyed by the account's internal
// identifier. The link carries no expiring token; the reset form does
// its own verification.
func (s *EmailService) SendPasswordReset(to string, accountID uint) error {
	resetLink := fmt.Sprintf("%s/reset-password/%d", s.Config.AppBaseURL, accountID)

	m := gomail.NewMessage()
	m.SetHeader("From", s.Config.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Click to reset password: <a href="%s">%s</a></p>`, resetLink, resetLink))

	return s.dialer.DialAndSend(m)
}
