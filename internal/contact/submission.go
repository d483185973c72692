package contact

import (
	"errors"
	"regexp"
	"slices"
)

var (
	// ErrMissingFields: at least one field is empty.
	// Its text is shown to users verbatim.
	ErrMissingFields = errors.New("All fields are required")
	// ErrInvalidEmail: the email does not look like local@domain.tld.
	ErrInvalidEmail  = errors.New("Invalid email format")
)

// whitespace follows the browser's definition: ASCII space characters,
// vertical tab, Unicode separators and the BOM.
const notSpaceOrAt = `[^\s\x0B\p{Z}\x{FEFF}@]+`

var emailRegexp = regexp.MustCompile(`^` + notSpaceOrAt + `@` + notSpaceOrAt + `\.` + notSpaceOrAt + `$`)

// ReferralSources lists the options offered by the contact form.
var ReferralSources = []string{
	"YouTube",
	"Instagram",
	"Facebook",
	"X (Twitter)",
	"LinkedIn",
	"Google Search",
	"Word of Mouth",
	"Advertisement",
	"Newsletter",
	"Other",
}

// IsReferralSource reports whether s is one of ReferralSources.
func IsReferralSource(s string) bool {
	return slices.Contains(ReferralSources, s)
}

// Submission is a single contact request. It is not persisted.
type Submission struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ReferralSource string `json:"referralSource"`
}

// Complete reports whether every field is non-empty. Whitespace counts as a
// value.
func (s Submission) Complete() bool {
	return s.FirstName != "" && s.LastName != "" && s.Email != "" && s.ReferralSource != ""
}

// Validate returns ErrMissingFields or ErrInvalidEmail. The referral source
// is free text here; only the form restricts it to ReferralSources.
func (s Submission) Validate() error {
	if !s.Complete() {
		return ErrMissingFields
	}
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidEmail applies the loose local@domain.tld shape check.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
