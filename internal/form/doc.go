// Package form models the contact modal as a state machine.
//
// The modal moves through four states:
//
//	Idle --open--> Editing --submit--> Submitting --succeed--> Submitted --reset--> Idle
//	                  ^                     |
//	                  +-------fail----------+
//
// Editing and Submitted can be closed back to Idle. Closing while a
// submission is in flight does nothing, and so does closing a form that is
// already closed.
//
// # Usage
//
//	svc, err := client.NewFromConfig(cfg.Client)
//	if err != nil {
//	    return err
//	}
//
//	f, err := form.New(svc,
//	    form.WithNotifier(notifier),
//	    form.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	_ = f.Open(ctx)
//	_ = f.SetField(form.FieldFirstName, "Ada")
//	_ = f.SetField(form.FieldLastName, "Lovelace")
//	_ = f.SetField(form.FieldEmail, "ada@example.com")
//	_ = f.SetField(form.FieldReferralSource, "Newsletter")
//
//	res, err := f.Submit(ctx)
//
// # Validation
//
// Submit refuses to leave Editing until every field is filled in and the
// email address matches contact.ValidEmail, the same shape check a browser
// applies to an email input. Nothing is sent in that case:
//
//   - a missing field returns ErrIncomplete
//   - a malformed address returns contact.ErrInvalidEmail
//
// SetField only accepts referral sources from contact.ReferralSources. The
// empty value clears the selection.
//
// # Feedback
//
// A Notifier shows the outcome. On failure the form goes back to Editing
// with every field kept, calls Notifier.Alert with ErrorAlert and records
// the error for LastError. On success it calls Notifier.Confirm with
// ThankYouTitle and ThankYouMessage. When no notifier is given,
// LogNotifier writes both to the form's logger.
//
// # Reset
//
// Entering Submitted schedules a reset after DefaultResetDelay (see
// WithResetDelay). The reset clears the fields and returns to Idle.
// Closing the thank-you view early does the same and cancels the timer. A
// timer that fires after the form was closed and reopened is ignored.
// WithAfterFunc replaces time.AfterFunc in tests.
//
// # Concurrency
//
// A Form is safe for concurrent use. Only one submission can be in flight:
// a second Submit while Submitting returns ErrNotEditing. The notifier is
// called without the form lock held.
package form
