package mailer

import "fmt"

// Tags are provider tags attached to a message. Presence-only tags use
// struct{}{} as the value.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Names returns tag names in no particular order.
func (t Tags) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	return names
}

// Recipient formats a name and address as "Name <email>".
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a message ready for a provider.
type Email struct {
	Headers map[string]string
	Tags    Tags
	From    string
	ReplyTo string
	Subject string
	Text    string // plain text body, always sent when set
	HTML    string // optional HTML alternative
	To      []string
}

// Validate checks the fields every provider needs.
func (e *Email) Validate() error {
	if e == nil || len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.Text == "" && e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
