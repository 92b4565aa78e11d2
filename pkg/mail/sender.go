package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/kasmi00/yatrimap-frontend/pkg/config"
	"github.com/kasmi00/yatrimap-frontend/pkg/log"
)

// Sender delivers a single mail message
type Sender interface {
	Send(recipient, subject, body string) error
}

// SMTPSender sends mail through a configured SMTP relay
type SMTPSender struct {
	cfg *config.MailConfig
}

// NewSMTPSender creates an SMTP-backed sender
func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers the message via SMTP with PLAIN auth
func (s *SMTPSender) Send(recipient, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(s.cfg.GetSMTPAddr(), auth, s.cfg.From, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// LogSender records mail to the log instead of delivering it. Used when no
// SMTP host is configured, so development setups work without a relay.
type LogSender struct {
	logger *log.Logger
}

// NewLogSender creates a log-only sender
func NewLogSender(logger *log.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(recipient, subject, body string) error {
	s.logger.WithFields(map[string]interface{}{
		"recipient": recipient,
		"subject":   subject,
		"type":      "mail",
	}).Info("Mail delivery skipped (SMTP not configured)")
	return nil
}
