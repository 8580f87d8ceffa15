package email

import (
	"context"
	"errors"
	"net/textproto"
	"testing"
)

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"disabled", Config{Enabled: false, SMTPUsername: "u", SMTPPassword: "p"}, false},
		{"no credentials", Config{Enabled: true}, false},
		{"username only", Config{Enabled: true, SMTPUsername: "u"}, false},
		{"complete", Config{Enabled: true, SMTPUsername: "u", SMTPPassword: "p"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if client.Configured() != tt.want {
				t.Errorf("Configured() = %v, want %v", client.Configured(), tt.want)
			}
		})
	}
}

func TestSend_Unconfigured(t *testing.T) {
	client, err := New(Config{Enabled: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = client.Send(context.Background(), Message{To: []string{"x@example.com"}, Subject: "s", TextBody: "b"})

	var disabled ErrDisabled
	if !errors.As(err, &disabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{"missing from", "", Message{Subject: "s", TextBody: "b"}},
		{"missing subject", "from@example.com", Message{TextBody: "b"}},
		{"missing body", "from@example.com", Message{Subject: "s"}},
		{
			"attachment without filename",
			"from@example.com",
			Message{Subject: "s", TextBody: "b", Attachments: []Attachment{{Content: []byte("x")}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			var invalid ErrInvalidMessage
			if !errors.As(err, &invalid) {
				t.Errorf("expected ErrInvalidMessage, got %v", err)
			}
		})
	}
}

func TestBuildMessage_WithAttachment(t *testing.T) {
	msg, err := buildMessage("from@example.com", Message{
		To:       []string{"to@example.com"},
		Subject:  "s",
		TextBody: "b",
		Headers:  map[string]string{"Reply-To": "applicant@example.com"},
		Attachments: []Attachment{{
			Filename:    "cv.pdf",
			Content:     []byte("%PDF-1.4"),
			ContentType: "application/pdf",
		}},
	})
	if err != nil {
		t.Fatalf("buildMessage failed: %v", err)
	}
	if got := msg.GetHeader("Reply-To"); len(got) != 1 || got[0] != "applicant@example.com" {
		t.Errorf("Reply-To header not set, got %v", got)
	}
}

func TestClassifySendError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantAuth bool
	}{
		{"credentials rejected", &textproto.Error{Code: 535, Msg: "authentication failed"}, true},
		{"auth mechanism weak", &textproto.Error{Code: 534, Msg: "please use app password"}, true},
		{"auth required", &textproto.Error{Code: 530, Msg: "authentication required"}, true},
		{"mailbox unavailable", &textproto.Error{Code: 550, Msg: "no such user"}, false},
		{"plain network error", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySendError(tt.err)

			var authErr ErrAuth
			isAuth := errors.As(got, &authErr)
			if isAuth != tt.wantAuth {
				t.Errorf("classifySendError(%v): auth = %v, want %v", tt.err, isAuth, tt.wantAuth)
			}
			if !tt.wantAuth {
				var sendErr ErrSend
				if !errors.As(got, &sendErr) {
					t.Errorf("non-auth failure should classify as ErrSend, got %v", got)
				}
			}
		})
	}
}

func TestCleanAddrs(t *testing.T) {
	got := cleanAddrs([]string{" a@example.com ", "", "b@example.com"})
	if len(got) != 2 || got[0] != "a@example.com" || got[1] != "b@example.com" {
		t.Errorf("cleanAddrs returned %v", got)
	}
}
