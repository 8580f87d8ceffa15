package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fiskerit/intake_backend/internal/repo"
	"github.com/fiskerit/intake_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	ResumeName string
	Resume     []byte
}

// SubmitResult describes the outcome of a persisted submission. Warning is
// set when the record was saved but email delivery failed; Message
// otherwise carries the human-readable success note.
type SubmitResult struct {
	Contact *repo.Contact
	Message string
	Warning string
}

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	List(ctx context.Context) ([]*repo.Contact, error)
	SendTestEmail(ctx context.Context) error
}

// Store is the slice of the contact store the service needs.
type Store interface {
	Create(ctx context.Context, p repo.CreateContactParams) (*repo.Contact, error)
	ListAll(ctx context.Context) ([]*repo.Contact, error)
}

// Sender is the slice of the email client the service needs.
type Sender interface {
	Configured() bool
	Recipient() string
	Send(ctx context.Context, m email.Message) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store  Store
	sender Sender
}

func New(store Store, sender Sender) Service {
	return &contactService{store: store, sender: sender}
}

// Submit runs the intake flow: validate, persist, notify. The persist step
// must commit before any notification attempt, and a notification failure
// never reverses it — post-persistence faults are downgraded to a warning
// on an otherwise successful result.
func (s *contactService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	emailAddr := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	// Resume presence is checked first: when both the file and the required
	// fields are missing, the missing-resume error wins.
	if len(req.Resume) == 0 || strings.TrimSpace(req.ResumeName) == "" {
		return nil, ErrMissingResume
	}
	if firstName == "" || emailAddr == "" {
		return nil, ErrMissingFields
	}

	saved, err := s.store.Create(ctx, repo.CreateContactParams{
		FirstName: firstName,
		LastName:  optional(lastName),
		Email:     emailAddr,
		Phone:     optional(phone),
		Message:   fmt.Sprintf("Resume uploaded: %s", req.ResumeName),
	})
	if err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}
	slog.Info("contact saved", "id", saved.ID)

	if !s.sender.Configured() {
		slog.Warn("email credentials not configured, skipping email sending")
		return &SubmitResult{
			Contact: saved,
			Message: "Contact saved (email not configured, so no emails sent).",
		}, nil
	}

	if err := s.notify(ctx, firstName, lastName, emailAddr, phone, req); err != nil {
		var authErr email.ErrAuth
		if errors.As(err, &authErr) {
			slog.Error("email authentication failed", "err", err)
			return &SubmitResult{
				Contact: saved,
				Warning: "Contact saved, but email authentication failed.",
			}, nil
		}
		slog.Error("email sending failed", "err", err)
		return &SubmitResult{
			Contact: saved,
			Warning: fmt.Sprintf("Contact saved, but email failed: %v", err),
		}, nil
	}

	return &SubmitResult{
		Contact: saved,
		Message: "Contact saved, emailed manager and confirmation sent to applicant.",
	}, nil
}

// notify sends the manager notification and then the applicant
// confirmation. The confirmation is attempted only when the manager send
// succeeded; both run inside the caller's failure boundary.
func (s *contactService) notify(ctx context.Context, firstName, lastName, emailAddr, phone string, req SubmitRequest) error {
	data := email.IntakeEmailData{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          emailAddr,
		Phone:          phone,
		ResumeFilename: req.ResumeName,
		ResumeContent:  req.Resume,
		Recipient:      s.sender.Recipient(),
	}

	if err := s.sender.Send(ctx, email.BuildManagerNotificationEmail(data)); err != nil {
		return err
	}
	slog.Info("manager notification sent", "recipient", data.Recipient)

	if err := s.sender.Send(ctx, email.BuildApplicantConfirmationEmail(data)); err != nil {
		return err
	}
	slog.Info("applicant confirmation sent", "recipient", emailAddr)

	return nil
}

// List returns the full submission history, newest first.
func (s *contactService) List(ctx context.Context) ([]*repo.Contact, error) {
	return s.store.ListAll(ctx)
}

// SendTestEmail sends the fixed diagnostic message to the configured
// recipient.
func (s *contactService) SendTestEmail(ctx context.Context) error {
	if !s.sender.Configured() {
		return ErrEmailNotConfigured
	}
	return s.sender.Send(ctx, email.BuildTestEmail(s.sender.Recipient()))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
