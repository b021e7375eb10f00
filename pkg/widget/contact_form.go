package widget

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/locale"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

// ContactStatus is the state of the contact sub-view
type ContactStatus string

const (
	ContactEditing    ContactStatus = "editing"
	ContactSubmitting ContactStatus = "submitting"
	ContactConfirmed  ContactStatus = "confirmed"
	ContactFailed     ContactStatus = "failed"
)

var (
	ErrSubmitInFlight = errors.New("an inquiry is already being submitted")
	ErrFormLocked     = errors.New("contact form can't be edited right now")
	ErrUnknownField   = errors.New("unknown contact field")
)

// ContactFields lists the editable fields in display order
func ContactFields() []string {
	return []string{"name", "email", "subject", "message", "type"}
}

// ContactState is a snapshot of the contact sub-view
type ContactState struct {
	Draft         contact.Inquiry
	Status        ContactStatus
	Notice        string
	InvalidFields []string
}

// ContactForm drives contact submissions independently of the chat session
type ContactForm struct {
	mu        sync.Mutex
	client    svc.ContactClient
	ctx       context.Context
	localizer *i18n.Localizer
	log       logger.Logger

	draft   contact.Inquiry
	status  ContactStatus
	notice  string
	invalid []string
}

func newContactForm(ctx context.Context, client svc.ContactClient, localizer *i18n.Localizer, log logger.Logger) *ContactForm {
	return &ContactForm{
		client:    client,
		ctx:       ctx,
		localizer: localizer,
		log:       log,
		status:    ContactEditing,
	}
}

// State returns a snapshot of the form
func (f *ContactForm) State() ContactState {
	f.mu.Lock()
	defer f.mu.Unlock()
	invalid := make([]string, len(f.invalid))
	copy(invalid, f.invalid)
	return ContactState{
		Draft:         f.draft,
		Status:        f.status,
		Notice:        f.notice,
		InvalidFields: invalid,
	}
}

// SetField updates one draft field. The draft is locked while submitting and
// while the confirmation is shown.
func (f *ContactForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == ContactSubmitting || f.status == ContactConfirmed {
		return ErrFormLocked
	}
	switch strings.ToLower(name) {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "subject":
		f.draft.Subject = value
	case "message":
		f.draft.Message = value
	case "type":
		f.draft.Type = value
	default:
		return ErrUnknownField
	}
	return nil
}

// PendingSubmission is an inquiry that passed validation and is being posted
type PendingSubmission struct {
	f       *ContactForm
	inquiry contact.Inquiry
	once    sync.Once
	err     error
}

// BeginSubmit validates the draft and locks the form. Validation failures
// return a *contact.ValidationError and never reach the network.
func (f *ContactForm) BeginSubmit() (*PendingSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ctx.Err() != nil {
		return nil, ErrUnmounted
	}
	switch f.status {
	case ContactSubmitting:
		return nil, ErrSubmitInFlight
	case ContactConfirmed:
		return nil, ErrFormLocked
	}
	if err := f.draft.Validate(); err != nil {
		var invalid *contact.ValidationError
		if errors.As(err, &invalid) {
			f.invalid = invalid.Fields
			f.notice = locale.Text(f.localizer, "contact-invalid", map[string]string{
				"Fields": strings.Join(invalid.Fields, ", "),
			})
		}
		return nil, err
	}
	f.invalid = nil
	f.notice = ""
	f.status = ContactSubmitting
	return &PendingSubmission{f: f, inquiry: f.draft.Normalize()}, nil
}

// Resolve posts the inquiry once. Success clears the draft and shows the
// confirmation; failure keeps the draft exactly as typed. The inquiry is posted
// at most once; later calls return the first result.
func (p *PendingSubmission) Resolve(ctx context.Context) error {
	p.once.Do(func() { p.err = p.resolve(ctx) })
	return p.err
}

func (p *PendingSubmission) resolve(ctx context.Context) error {
	f := p.f
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(f.ctx, cancel)
	receipt, err := f.client.Submit(reqCtx, p.inquiry)
	stop()
	cancel()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ctx.Err() != nil {
		f.log.Debug("widget", "discarding contact result after unmount", nil)
		return ErrUnmounted
	}
	if err != nil {
		f.status = ContactFailed
		f.notice = locale.Text(f.localizer, "contact-failed", nil)
		return err
	}
	f.draft = contact.Inquiry{}
	f.status = ContactConfirmed
	f.notice = receipt.Message
	if f.notice == "" {
		f.notice = locale.Text(f.localizer, "contact-sent", nil)
	}
	return nil
}

// Submit validates, posts and waits for the result
func (f *ContactForm) Submit(ctx context.Context) error {
	pending, err := f.BeginSubmit()
	if err != nil {
		return err
	}
	return pending.Resolve(ctx)
}

// Dismiss leaves the confirmation or failure notice and shows the form again.
// A confirmed form comes back empty; a failed one keeps its draft.
func (f *ContactForm) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == ContactSubmitting {
		return
	}
	f.status = ContactEditing
	f.notice = ""
	f.invalid = nil
}
