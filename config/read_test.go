package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestReadConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Email.Recipient != "naveen@fiskerit.org" {
		t.Errorf("unexpected default recipient: %q", cfg.Email.Recipient)
	}
	if cfg.Email.SMTP.Port != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.Email.SMTP.Port)
	}
	if cfg.Email.Configured() {
		t.Error("email must not be considered configured without credentials")
	}
}

func TestReadConfig_LegacySMTPEnv(t *testing.T) {
	viper.Reset()

	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USERNAME", "mailer@fiskerit.org")
	t.Setenv("SMTP_PASSWORD", "app-password")

	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if cfg.Email.SMTP.Host != "smtp.example.com" {
		t.Errorf("SMTP_SERVER not honored, got %q", cfg.Email.SMTP.Host)
	}
	if cfg.Email.SMTP.Port != 2525 {
		t.Errorf("SMTP_PORT not honored, got %d", cfg.Email.SMTP.Port)
	}
	if !cfg.Email.Configured() {
		t.Error("email should be configured once credentials are present")
	}
}

func TestEmailConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  EmailConfig
		want bool
	}{
		{
			name: "disabled",
			cfg:  EmailConfig{Enabled: false, SMTP: SMTPConfig{Username: "u", Password: "p"}},
			want: false,
		},
		{
			name: "missing password",
			cfg:  EmailConfig{Enabled: true, SMTP: SMTPConfig{Username: "u"}},
			want: false,
		},
		{
			name: "missing username",
			cfg:  EmailConfig{Enabled: true, SMTP: SMTPConfig{Password: "p"}},
			want: false,
		},
		{
			name: "complete",
			cfg:  EmailConfig{Enabled: true, SMTP: SMTPConfig{Username: "u", Password: "p"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}
