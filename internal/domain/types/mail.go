package types

// MailMessage is one formatted notification ready for the mail relay.
type MailMessage struct {
	FromName string
	From     string
	To       []string
	Subject  string
	HTML     string
	Text     string
}
