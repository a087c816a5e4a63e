package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	gomail "github.com/go-mail/mail/v2"

	"continuous-improvement-backend/internal/logger"
)

// Config holds the SMTP settings used by SMTPSender
type Config struct {
	Host               string
	Port               int
	UseSSL             bool
	Username           string
	Password           string
	SenderEmail        string
	SenderName         string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Sender delivers a single HTML email
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Dialer is the part of *gomail.Dialer used by SMTPSender
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends notification emails through an authenticated SMTP server
type SMTPSender struct {
	cfg    Config
	dialer Dialer
}

// NewSMTPSender creates a sender that dials the configured SMTP server
func NewSMTPSender(cfg Config) *SMTPSender {
	return NewSMTPSenderWithDialer(cfg, newDialer(cfg))
}

// NewSMTPSenderWithDialer creates a sender using the given dialer
func NewSMTPSenderWithDialer(cfg Config, dialer Dialer) *SMTPSender {
	return &SMTPSender{cfg: cfg, dialer: dialer}
}

func newDialer(cfg Config) *gomail.Dialer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}

	switch {
	case cfg.UseSSL && cfg.Port == 465:
		d.SSL = true
	case cfg.UseSSL:
		d.StartTLSPolicy = gomail.MandatoryStartTLS
	default:
		d.StartTLSPolicy = gomail.OpportunisticStartTLS
	}

	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	return d
}

// BuildMessage assembles a high priority HTML message for a single recipient
func (s *SMTPSender) BuildMessage(to, subject, htmlBody string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.SenderEmail, s.cfg.SenderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("X-Priority", "1")
	m.SetHeader("Importance", "High")
	m.SetBody("text/html", htmlBody)
	return m
}

// Send delivers the message synchronously and returns any transport or auth error
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(s.BuildMessage(to, subject, htmlBody)); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("to", to).Error("Failed to send email")
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	logger.WithContext(ctx).WithField("to", to).Info("Email sent")
	return nil
}

// LogSender logs messages instead of sending them. Used when SMTP is not configured.
type LogSender struct{}

// NewLogSender creates a new LogSender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the recipient and subject
func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":         to,
		"subject":    subject,
		"body_bytes": len(htmlBody),
	}).Info("SMTP not configured, email not sent")
	return nil
}
