package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/go-auth-api/internal/config"
)

// Mailer sends the verification and password-reset emails.
type Mailer interface {
	SendVerificationEmail(to, code string) error
	SendPasswordResetEmail(to, code string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendVerificationEmail(to, code string) error {
	return m.send(to, "Account Verification Code",
		fmt.Sprintf("Welcome! Your verification code is: %s", code))
}

func (m *mailer) SendPasswordResetEmail(to, code string) error {
	return m.send(to, "Password Reset Code",
		fmt.Sprintf("Hello! Your password reset code is: %s\r\nIf you didn't request this, please ignore this email.", code))
}

func (m *mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
