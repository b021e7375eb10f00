package widget

import (
	"context"
	"strings"
	"sync"

	"github.com/cyboglabs/cybot/pkg/chat"
)

var quickPrompts = []string{
	"What does CYBOGLABS do?",
	"What career opportunities are available?",
	"Tell me about your products",
	"Do you offer internships?",
}

// QuickPrompts returns the pre-written questions offered before the first exchange
func (w *Widget) QuickPrompts() []string {
	prompts := make([]string, len(quickPrompts))
	copy(prompts, quickPrompts)
	return prompts
}

// ShowQuickPrompts reports whether the first exchange has yet to complete
func (w *Widget) ShowQuickPrompts() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.Len() < 2
}

// UseQuickPrompt copies a quick prompt into the draft. It doesn't send it.
func (w *Widget) UseQuickPrompt(idx int) error {
	if idx < 0 || idx >= len(quickPrompts) {
		return ErrUnknownPrompt
	}
	w.SetDraft(quickPrompts[idx])
	return nil
}

// PendingSend is a user message that has been recorded and is waiting on its reply
type PendingSend struct {
	w         *Widget
	text      string
	sessionID *string
	once      sync.Once
}

// Text is the trimmed user message being sent
func (p *PendingSend) Text() string {
	return p.text
}

// BeginSend appends the draft as a user message and marks the widget as loading.
// Blank drafts and sends while another is outstanding are rejected before any
// network call.
func (w *Widget) BeginSend() (*PendingSend, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unmounted() {
		return nil, ErrUnmounted
	}
	if w.state.Loading {
		return nil, ErrSendInFlight
	}
	if strings.TrimSpace(w.state.Draft) == "" {
		return nil, chat.ErrEmptyMessage
	}
	message, err := w.session.AppendUserMessage(w.state.Draft)
	if err != nil {
		return nil, err
	}
	w.state.Draft = ""
	w.state.Loading = true
	return &PendingSend{
		w:         w,
		text:      message.Content,
		sessionID: w.session.SessionIDPtr(),
	}, nil
}

// Resolve performs the exchange and appends exactly one assistant message.
// The session ID is only adopted from a successful reply. If the widget was
// unmounted in the meantime the reply is discarded. Only the first call does anything.
func (p *PendingSend) Resolve(ctx context.Context) {
	p.once.Do(func() { p.resolve(ctx) })
}

func (p *PendingSend) resolve(ctx context.Context) {
	w := p.w
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(w.ctx, cancel)
	reply := w.chat.Exchange(reqCtx, p.text, p.sessionID)
	stop()
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted() {
		w.log.Debug("widget", "discarding reply after unmount", map[string]interface{}{
			"fallback": reply.Fallback,
		})
		return
	}
	if !reply.Fallback {
		w.session.SetSessionID(reply.SessionID)
	}
	w.session.AppendAssistantMessage(reply.Text)
	w.state.Loading = false
	w.log.Debug("widget", "chat exchange complete", map[string]interface{}{
		"fallback":   reply.Fallback,
		"transcript": w.session.Len(),
	})
}

// Send records the draft and waits for its reply
func (w *Widget) Send(ctx context.Context) error {
	pending, err := w.BeginSend()
	if err != nil {
		return err
	}
	pending.Resolve(ctx)
	return nil
}
