package contact

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.md
var templates embed.FS

// TemplateName is the mailer template used for notifications.
const TemplateName = "contact.md"

// Templates returns the email templates rooted at their directory, ready for
// mailer.NewRenderer.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
