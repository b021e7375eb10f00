package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cyboglabs/cybot/pkg/chat"
	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/faq"
	"github.com/cyboglabs/cybot/pkg/mocks"
	"github.com/cyboglabs/cybot/pkg/svc"
	"github.com/cyboglabs/cybot/pkg/widget"
)

func press(t *testing.T, m tea.Model, key tea.KeyMsg) (model, tea.Cmd) {
	next, cmd := m.Update(key)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuickPromptFillsInputWithoutSending(t *testing.T) {
	chatMock := &mocks.ChatClientMock{}
	w := widget.New(widget.Config{Chat: chatMock})
	w.Open()
	m := newModel(context.Background(), w)

	m, cmd := press(t, m, runes("1"))
	assert.Nil(t, cmd)
	assert.Empty(t, w.Transcript())
	assert.False(t, w.State().Loading)
	assert.Equal(t, "What does CYBOGLABS do?", w.State().Draft)
	assert.Equal(t, "What does CYBOGLABS do?", m.input.Value())
	chatMock.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnterSendsAndRendersReply(t *testing.T) {
	chatMock := &mocks.ChatClientMock{}
	chatMock.On("Exchange", mock.Anything, "What does CYBOGLABS do?", (*string)(nil)).
		Return(svc.Reply{SessionID: "s1", Text: "We build AI products."})
	w := widget.New(widget.Config{Chat: chatMock})
	m := newModel(context.Background(), w)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, w.State().Open)
	assert.Contains(t, m.View(), "What does CYBOGLABS do?")

	m, _ = press(t, m, runes("1"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, w.State().Loading)

	next, _ := m.Update(cmd())
	assert.False(t, w.State().Loading)
	transcript := w.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, chat.RoleAssistant, transcript[1].Role)
	assert.Contains(t, next.View(), "We build AI products.")
	assert.NotContains(t, next.View(), "[1]")
}

func TestTabCyclesViews(t *testing.T) {
	w := widget.New(widget.Config{
		Chat: &mocks.ChatClientMock{},
		FAQ: faq.NewStaticDataset([]faq.Entry{
			{ID: "1", Category: "Careers", Question: "Are you hiring?", Answer: "Yes, across ML and DevOps."},
		}),
	})
	m := newModel(context.Background(), w)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, widget.TabFAQ, w.State().ActiveTab)
	assert.NotContains(t, m.View(), "Yes, across ML and DevOps.")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Yes, across ML and DevOps.")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, widget.TabContact, w.State().ActiveTab)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, widget.TabChat, w.State().ActiveTab)
}

func TestContactSubmitFromLastField(t *testing.T) {
	contactMock := &mocks.ContactClientMock{}
	contactMock.On("Submit", mock.Anything, contact.Inquiry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "Hello",
		Type:    "general",
	}).Return(svc.Receipt{Message: "Thanks, Ada!"}, nil)
	w := widget.New(widget.Config{Chat: &mocks.ChatClientMock{}, Contact: contactMock})
	require.NoError(t, w.SelectTab(widget.TabContact))
	w.Open()
	m := newModel(context.Background(), w)
	m.syncInput()

	for _, value := range []string{"Ada", "ada@example.com", "Hi", "Hello", "general"} {
		m, _ = press(t, m, runes(value))
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	// The last enter submits instead of moving on
	assert.Equal(t, widget.ContactSubmitting, w.Contact().State().Status)
}

func TestEscClosesThenQuits(t *testing.T) {
	w := widget.New(widget.Config{Chat: &mocks.ChatClientMock{}})
	w.Open()
	m := newModel(context.Background(), w)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, w.State().Open)

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
