package contact

import "errors"

var (
	// ErrMissingResume means no resume file (or an empty filename) was
	// submitted. Checked before the required-field validation, so this is
	// the error reported when both are absent.
	ErrMissingResume = errors.New("resume file is required")

	// ErrMissingFields means first name or email was empty after trimming.
	ErrMissingFields = errors.New("first name and email are required")

	// ErrEmailNotConfigured is returned by the diagnostic send when no SMTP
	// credentials are present. No network call is attempted.
	ErrEmailNotConfigured = errors.New("email not configured")
)
