package email

import (
	"time"

	"github.com/fiskerit/intake_backend/config"
)

// Config holds email service configuration
type Config struct {
	Enabled bool
	From    string

	// Recipient is the fixed address that receives manager notifications
	// and diagnostic test messages.
	Recipient string

	// SMTP settings
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for email configuration.
// SMTPUseTLS is false because the usual transport is a plaintext connection
// upgraded via STARTTLS on the submission port.
func DefaultConfig() Config {
	return Config{
		Enabled:            true,
		SMTPPort:           587,
		SMTPUseTLS:         false,
		SMTPTimeoutSeconds: 30,
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	from := c.From
	if from == "" {
		from = c.SMTP.Username
	}
	return Config{
		Enabled:            c.Enabled,
		From:               from,
		Recipient:          c.Recipient,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           c.SMTP.Port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
	}
}
