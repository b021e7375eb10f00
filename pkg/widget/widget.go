package widget

import (
	"context"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/cyboglabs/cybot/pkg/chat"
	"github.com/cyboglabs/cybot/pkg/faq"
	"github.com/cyboglabs/cybot/pkg/locale"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

// Config holds the collaborators a Widget is built from
type Config struct {
	Chat      svc.ChatClient
	Contact   svc.ContactClient
	FAQ       faq.Dataset
	Logger    logger.Logger
	Localizer *i18n.Localizer
	// FAQLimit caps the number of visible FAQ entries, 0 shows all
	FAQLimit int
}

// Widget is the assistant widget state machine. Every exported method is
// safe for concurrent use; network calls never run while the lock is held.
type Widget struct {
	mu        sync.Mutex
	chat      svc.ChatClient
	faq       faq.Dataset
	faqLimit  int
	log       logger.Logger
	localizer *i18n.Localizer
	session   *chat.Session
	state     UIState
	contact   *ContactForm

	// ctx lives as long as the widget is mounted
	ctx    context.Context
	cancel context.CancelFunc
}

// New mounts a widget with a fresh session
func New(cfg Config) *Widget {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	localizer := cfg.Localizer
	if localizer == nil {
		localizer = locale.LoadLocalizer("en")
	}
	dataset := cfg.FAQ
	if dataset == nil {
		dataset = faq.NewStaticDataset(nil)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Widget{
		chat:      cfg.Chat,
		faq:       dataset,
		faqLimit:  cfg.FAQLimit,
		log:       log,
		localizer: localizer,
		session:   chat.NewSession(),
		state:     initialState(),
		ctx:       ctx,
		cancel:    cancel,
	}
	w.contact = newContactForm(ctx, cfg.Contact, localizer, log)
	return w
}

// State returns a snapshot of the UI state
func (w *Widget) State() UIState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Transcript returns the conversation so far
func (w *Widget) Transcript() []chat.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.Transcript()
}

// SessionID returns the server-assigned session ID, if one has been adopted
func (w *Widget) SessionID() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.SessionID()
}

// Contact returns the contact form sub-view
func (w *Widget) Contact() *ContactForm {
	return w.contact
}

// Greeting is shown above the transcript. It isn't part of the transcript.
func (w *Widget) Greeting() string {
	return locale.Text(w.localizer, "chat-greeting", nil)
}

func (w *Widget) Toggle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Open = !w.state.Open
}

func (w *Widget) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Open = true
}

// Close hides the widget. In-flight requests keep running and still land.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Open = false
}

// SelectTab switches the visible sub-view without clearing any state
func (w *Widget) SelectTab(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.ActiveTab = tab
	return nil
}

// SetDraft replaces the chat input text
func (w *Widget) SetDraft(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Draft = text
}

// Unmount cancels in-flight requests. Anything that resolves afterwards is dropped.
func (w *Widget) Unmount() {
	w.cancel()
}

func (w *Widget) unmounted() bool {
	return w.ctx.Err() != nil
}
