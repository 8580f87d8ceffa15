package email

type Message struct {
	To          []string
	CC          []string
	BCC         []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Headers     map[string]string
	Attachments []Attachment
}

// Attachment carries raw in-memory content; nothing is read from disk.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}
