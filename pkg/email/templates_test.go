package email

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildManagerNotificationEmail(t *testing.T) {
	data := IntakeEmailData{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Phone:          "",
		ResumeFilename: "cv.pdf",
		ResumeContent:  []byte("%PDF-1.4 fake"),
		Recipient:      "naveen@fiskerit.org",
	}

	m := BuildManagerNotificationEmail(data)

	if got := m.Subject; got != "New Application from Ada Lovelace" {
		t.Errorf("unexpected subject: %q", got)
	}
	if len(m.To) != 1 || m.To[0] != "naveen@fiskerit.org" {
		t.Errorf("expected fixed recipient, got %v", m.To)
	}
	if m.Headers["Reply-To"] != "ada@example.com" {
		t.Errorf("Reply-To should be the applicant email, got %q", m.Headers["Reply-To"])
	}
	if !strings.Contains(m.TextBody, "Phone:       (not provided)") {
		t.Errorf("absent phone should render as (not provided), body:\n%s", m.TextBody)
	}
	if !strings.Contains(m.TextBody, "Last Name:   Lovelace") {
		t.Errorf("last name missing from body:\n%s", m.TextBody)
	}
	if !strings.Contains(m.TextBody, "cv.pdf") {
		t.Error("resume filename missing from body")
	}

	if len(m.Attachments) != 1 {
		t.Fatalf("expected one attachment, got %d", len(m.Attachments))
	}
	a := m.Attachments[0]
	if a.Filename != "cv.pdf" {
		t.Errorf("unexpected attachment filename %q", a.Filename)
	}
	if !bytes.Equal(a.Content, data.ResumeContent) {
		t.Error("attachment content does not match uploaded bytes")
	}
	if a.ContentType != "application/pdf" {
		t.Errorf("expected application/pdf content type, got %q", a.ContentType)
	}
}

func TestBuildManagerNotificationEmail_NoLastName(t *testing.T) {
	m := BuildManagerNotificationEmail(IntakeEmailData{
		FirstName:      "Ada",
		Email:          "ada@example.com",
		ResumeFilename: "cv.pdf",
		Recipient:      "naveen@fiskerit.org",
	})

	if m.Subject != "New Application from Ada" {
		t.Errorf("subject should trim trailing space, got %q", m.Subject)
	}
	if !strings.Contains(m.TextBody, "Last Name:   (not provided)") {
		t.Errorf("absent last name should render as (not provided), body:\n%s", m.TextBody)
	}
}

func TestBuildApplicantConfirmationEmail(t *testing.T) {
	m := BuildApplicantConfirmationEmail(IntakeEmailData{
		FirstName:      "Ada",
		Email:          "ada@example.com",
		ResumeFilename: "cv.pdf",
	})

	if len(m.To) != 1 || m.To[0] != "ada@example.com" {
		t.Errorf("confirmation must go to the applicant, got %v", m.To)
	}
	if !strings.Contains(m.TextBody, `"cv.pdf"`) {
		t.Errorf("confirmation should name the uploaded file, body:\n%s", m.TextBody)
	}
	if len(m.Attachments) != 0 {
		t.Error("confirmation must not carry an attachment")
	}
}

func TestAttachmentContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"cv.pdf", "application/pdf"},
		{"resume.bin", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := attachmentContentType(tt.filename)
			// mime.TypeByExtension may append parameters (e.g. charset)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("attachmentContentType(%q) = %q, want prefix %q", tt.filename, got, tt.want)
			}
		})
	}
}
