package mail

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/PrincyBhingradiya/auth-posts-api/internal/mail Mailer

import (
	"fmt"
	"net/smtp"

	"github.com/PrincyBhingradiya/auth-posts-api/config"
)

// Mailer delivers a single HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if !m.cfg.IsEmailConfigured() {
		return fmt.Errorf("email credentials not configured")
	}

	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)

	fromEmail := m.cfg.FromEmail
	if fromEmail == "" {
		fromEmail = m.cfg.SMTPUsername
	}

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s\r\n",
		m.cfg.FromName, fromEmail, to, subject, htmlBody))

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, fromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
