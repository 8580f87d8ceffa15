package email

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// IntakeEmailData contains the submission fields used by the intake email
// templates. Optional fields are empty strings when the applicant left them
// out.
type IntakeEmailData struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	ResumeFilename string
	ResumeContent  []byte

	// Recipient is the fixed manager address.
	Recipient string
}

// BuildManagerNotificationEmail creates the notification sent to the fixed
// manager recipient: all submitted fields in a plain-text body, reply
// address pointing at the applicant, and the resume attached.
func BuildManagerNotificationEmail(data IntakeEmailData) Message {
	subject := strings.TrimSpace(fmt.Sprintf("New Application from %s %s", data.FirstName, data.LastName))

	textBody := fmt.Sprintf(`A new application has arrived:

APPLICANT DETAILS
-----------------

First Name:  %s
Last Name:   %s
Email:       %s
Phone:       %s

Resume Filename: %s
`,
		data.FirstName,
		orNotProvided(data.LastName),
		data.Email,
		orNotProvided(data.Phone),
		data.ResumeFilename,
	)

	return Message{
		To:       []string{data.Recipient},
		Subject:  subject,
		TextBody: textBody,
		Headers:  map[string]string{"Reply-To": data.Email},
		Attachments: []Attachment{{
			Filename:    data.ResumeFilename,
			Content:     data.ResumeContent,
			ContentType: attachmentContentType(data.ResumeFilename),
		}},
	}
}

// BuildApplicantConfirmationEmail creates the receipt confirmation sent to
// the applicant. No attachment.
func BuildApplicantConfirmationEmail(data IntakeEmailData) Message {
	textBody := fmt.Sprintf(`Hi %s,

Thank you for submitting your application to Fisker IT. We have received your resume (%q) and our team will review it shortly.

Best regards,
The Fisker IT Team
`,
		data.FirstName, data.ResumeFilename)

	return Message{
		To:       []string{data.Email},
		Subject:  "Thank you for applying to Fisker IT!",
		TextBody: textBody,
	}
}

// BuildTestEmail creates the fixed-content diagnostic message.
func BuildTestEmail(recipient string) Message {
	return Message{
		To:       []string{recipient},
		Subject:  "Test Email from Intake Backend",
		TextBody: "This is a test email to verify the configuration.",
	}
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not provided)"
	}
	return s
}

// attachmentContentType guesses a content type from the filename extension,
// falling back to a generic binary type.
func attachmentContentType(filename string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
