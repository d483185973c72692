package form

import "errors"

var (
	// ErrNotEditing is returned by SetField and Submit outside the Editing state.
	ErrNotEditing = errors.New("form: only allowed while editing")

	// ErrUnknownField is returned by SetField for a name that is not a Field constant.
	ErrUnknownField = errors.New("form: unknown field")

	// ErrInvalidReferralSource is returned when the value is not in contact.ReferralSources.
	ErrInvalidReferralSource = errors.New("form: referral source is not one of the listed options")

	// ErrIncomplete is returned by Submit while a field is still empty.
	// A malformed address yields contact.ErrInvalidEmail instead.
	ErrIncomplete = errors.New("form: all fields are required")

	// ErrNoSubmitter is returned by New without a Submitter.
	ErrNoSubmitter = errors.New("form: submitter is required")
)
