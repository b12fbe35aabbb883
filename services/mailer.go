package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/config"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
)

// Mailer sends notification emails. The contact pipeline persists the
// inquiry before calling Send, so a delivery failure never loses data.
type Mailer interface {
	Send(subject, body string, recipients []string) error
}

// SMTPMailer talks to an SMTP relay with STARTTLS (port 587).
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	sender   string
}

func NewSMTPMailer(settings config.Settings) *SMTPMailer {
	return &SMTPMailer{
		host:     settings.MailServer,
		port:     settings.MailPort,
		username: settings.MailUsername,
		password: settings.MailPassword,
		sender:   settings.MailDefaultSender,
	}
}

// Send delivers a plain-text email to recipients through the configured
// relay. smtp.SendMail negotiates STARTTLS when the server offers it,
// which every 587 relay does.
func (m *SMTPMailer) Send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if m.username == "" || m.password == "" {
		return errs.NewMailDeliveryError(fmt.Errorf("mail credentials are not configured"))
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.sender)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.sender, recipients, []byte(msg.String())); err != nil {
		log.Error().Err(err).Str("relay", addr).Msg("Failed to deliver notification email")
		return errs.NewMailDeliveryError(err)
	}

	log.Info().Strs("recipients", recipients).Msg("Notification email delivered")
	return nil
}
