package email

import "fmt"

type ErrDisabled struct{}

func (e ErrDisabled) Error() string { return "email is disabled" }

type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

// ErrAuth means the mail server rejected our credentials.
type ErrAuth struct {
	Err error
}

func (e ErrAuth) Error() string { return fmt.Sprintf("email authentication failed: %v", e.Err) }
func (e ErrAuth) Unwrap() error { return e.Err }

type ErrSend struct {
	Provider string
	Err      error
}

func (e ErrSend) Error() string { return fmt.Sprintf("email send failed (%s): %v", e.Provider, e.Err) }
func (e ErrSend) Unwrap() error { return e.Err }
