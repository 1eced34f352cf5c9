package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer delivers account emails. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendNewPassword(ctx context.Context, to, newPassword string) error
	SendWelcome(ctx context.Context, to, name string) error
}

// SMTP sends mail through a plain SMTP relay.
type SMTP struct {
	Addr     string
	From     string
	Username string
	Password string
}

// NewSMTP builds an SMTP mailer. Auth is skipped when username is empty.
func NewSMTP(addr, from, username, password string) *SMTP {
	return &SMTP{Addr: addr, From: from, Username: username, Password: password}
}

// SendNewPassword mails a freshly generated password to the user.
func (m *SMTP) SendNewPassword(ctx context.Context, to, newPassword string) error {
	body := fmt.Sprintf("Your password has been reset.\r\n\r\nNew password: %s\r\n\r\nPlease log in and change it.\r\n", newPassword)
	return m.send(ctx, to, "Your new password", body)
}

// SendWelcome mails a greeting after signup.
func (m *SMTP) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("Hi %s,\r\n\r\nYour account has been created. Welcome aboard!\r\n", name)
	return m.send(ctx, to, "Welcome", body)
}

func (m *SMTP) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	var a smtp.Auth
	if m.Username != "" {
		host := m.Addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		a = smtp.PlainAuth("", m.Username, m.Password, host)
	}
	if err := smtp.SendMail(m.Addr, a, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogOnly logs instead of sending; used in dev when no relay is configured.
type LogOnly struct {
	Log *zap.SugaredLogger
}

func (m *LogOnly) SendNewPassword(ctx context.Context, to, newPassword string) error {
	m.Log.Infow("mail (log only): new password", "to", to)
	return nil
}

func (m *LogOnly) SendWelcome(ctx context.Context, to, name string) error {
	m.Log.Infow("mail (log only): welcome", "to", to, "name", name)
	return nil
}
