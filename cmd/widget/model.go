package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cyboglabs/cybot/pkg/chat"
	"github.com/cyboglabs/cybot/pkg/widget"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F46E5")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#AFAFAF"))
	activeTabStyle = tabStyle.Foreground(lipgloss.Color("#FFFFFF")).Underline(true).Bold(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#A5B4FC")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	panelStyle     = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// replyMsg reports that an in-flight send has settled
type replyMsg struct{}

// submittedMsg reports that an in-flight contact submission has settled
type submittedMsg struct{ err error }

type model struct {
	w        *widget.Widget
	ctx      context.Context
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	faqCursor    int
	contactField int
	err          error

	width  int
	height int
}

func newModel(ctx context.Context, w *widget.Widget) model {
	input := textinput.New()
	input.Placeholder = "Ask me anything about CYBOGLABS..."
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		w:        w,
		ctx:      ctx,
		input:    input,
		viewport: viewport.New(80, 16),
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 10
		m.input.Width = msg.Width - 8
		m.refresh()
		return m, nil

	case replyMsg:
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case submittedMsg:
		if msg.err == nil {
			m.contactField = 0
		}
		m.syncInput()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.w.Unmount()
			return m, tea.Quit
		case "ctrl+o":
			m.w.Toggle()
			m.refresh()
			return m, nil
		case "esc":
			if m.w.State().Open {
				m.w.Close()
				return m, nil
			}
			m.w.Unmount()
			return m, tea.Quit
		}
		if !m.w.State().Open {
			if msg.Type == tea.KeyEnter {
				m.w.Open()
				m.refresh()
			}
			return m, nil
		}
		if msg.Type == tea.KeyTab {
			m.nextTab()
			return m, nil
		}
		switch m.w.State().ActiveTab {
		case widget.TabChat:
			return m.updateChat(msg)
		case widget.TabFAQ:
			return m.updateFAQ(msg)
		case widget.TabContact:
			return m.updateContact(msg)
		}
	}
	return m, nil
}

func (m *model) nextTab() {
	tabs := widget.Tabs()
	current := m.w.State().ActiveTab
	for i, tab := range tabs {
		if tab == current {
			_ = m.w.SelectTab(tabs[(i+1)%len(tabs)])
			break
		}
	}
	m.err = nil
	m.syncInput()
}

// syncInput loads whatever the active tab is editing into the text input
func (m *model) syncInput() {
	state := m.w.State()
	switch state.ActiveTab {
	case widget.TabChat:
		m.input.Placeholder = "Ask me anything about CYBOGLABS..."
		m.input.SetValue(state.Draft)
	case widget.TabFAQ:
		m.input.Placeholder = "Search FAQs..."
		m.input.SetValue(state.Query)
	case widget.TabContact:
		field := widget.ContactFields()[m.contactField]
		m.input.Placeholder = field
		m.input.SetValue(contactValue(m.w.Contact().State(), field))
	}
	m.input.CursorEnd()
}

func (m model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.input.Value() == "" && m.w.ShowQuickPrompts() && len(key) == 1 && key >= "1" && key <= "9" {
		if err := m.w.UseQuickPrompt(int(key[0] - '1')); err == nil {
			m.syncInput()
			return m, nil
		}
	}
	switch msg.Type {
	case tea.KeyEnter:
		m.w.SetDraft(m.input.Value())
		return m.send()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.w.SetDraft(m.input.Value())
	return m, cmd
}

// send records the draft and resolves the reply off the UI goroutine
func (m model) send() (tea.Model, tea.Cmd) {
	pending, err := m.w.BeginSend()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.input.Reset()
	m.refresh()
	m.viewport.GotoBottom()
	ctx := m.ctx
	return m, func() tea.Msg {
		pending.Resolve(ctx)
		return replyMsg{}
	}
}

func (m model) updateFAQ(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.w.VisibleFAQs()
	switch msg.Type {
	case tea.KeyUp:
		if m.faqCursor > 0 {
			m.faqCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.faqCursor < len(visible)-1 {
			m.faqCursor++
		}
		return m, nil
	case tea.KeyLeft, tea.KeyRight:
		m.cycleCategory(msg.Type == tea.KeyRight)
		return m, nil
	case tea.KeyEnter:
		if m.faqCursor < len(visible) {
			m.w.ToggleFAQ(visible[m.faqCursor].ID)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.w.SetQuery(m.input.Value())
	m.faqCursor = 0
	return m, cmd
}

func (m *model) cycleCategory(forward bool) {
	categories := m.w.FAQCategories()
	current := m.w.State().SelectedCategory
	idx := 0
	for i, c := range categories {
		if c == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(categories)
	} else {
		idx = (idx - 1 + len(categories)) % len(categories)
	}
	_ = m.w.SelectCategory(categories[idx])
	m.faqCursor = 0
}

func (m model) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.w.Contact()
	state := form.State()
	if state.Status == widget.ContactConfirmed || state.Status == widget.ContactFailed {
		if msg.Type == tea.KeyEnter {
			form.Dismiss()
			m.syncInput()
		}
		return m, nil
	}
	if state.Status == widget.ContactSubmitting {
		return m, nil
	}

	fields := widget.ContactFields()
	switch msg.String() {
	case "up", "shift+tab":
		if m.contactField > 0 {
			m.contactField--
		}
		m.syncInput()
		return m, nil
	case "down":
		if m.contactField < len(fields)-1 {
			m.contactField++
		}
		m.syncInput()
		return m, nil
	case "enter":
		if m.contactField < len(fields)-1 {
			m.contactField++
			m.syncInput()
			return m, nil
		}
		fallthrough
	case "ctrl+s":
		pending, err := form.BeginSubmit()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		ctx := m.ctx
		return m, func() tea.Msg {
			return submittedMsg{err: pending.Resolve(ctx)}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := form.SetField(fields[m.contactField], m.input.Value()); err != nil {
		m.err = err
	}
	return m, cmd
}

func contactValue(state widget.ContactState, field string) string {
	switch field {
	case "name":
		return state.Draft.Name
	case "email":
		return state.Draft.Email
	case "subject":
		return state.Draft.Subject
	case "message":
		return state.Draft.Message
	case "type":
		return state.Draft.Type
	}
	return ""
}

// refresh re-renders the transcript into the viewport
func (m *model) refresh() {
	var sb strings.Builder
	sb.WriteString(renderLine(assistantStyle.Render("CYBOT"), m.w.Greeting()))
	for _, message := range m.w.Transcript() {
		if message.Role == chat.RoleUser {
			sb.WriteString(renderLine(userStyle.Render("You"), message.Content))
		} else {
			sb.WriteString(renderLine(assistantStyle.Render("CYBOT"), message.Content))
		}
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(sb.String()))
}

func renderLine(speaker, content string) string {
	return fmt.Sprintf("%s: %s\n\n", speaker, content)
}

func (m model) View() string {
	state := m.w.State()
	if !state.Open {
		return headerStyle.Render("CYBOT") + " " + mutedStyle.Render("press enter to chat, esc to quit") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("CYBOT  AI Assistant"))
	sb.WriteString("\n")
	for _, tab := range widget.Tabs() {
		style := tabStyle
		if tab == state.ActiveTab {
			style = activeTabStyle
		}
		sb.WriteString(style.Render(strings.ToUpper(string(tab))))
	}
	sb.WriteString("\n\n")

	switch state.ActiveTab {
	case widget.TabChat:
		sb.WriteString(m.chatView(state))
	case widget.TabFAQ:
		sb.WriteString(m.faqView(state))
	case widget.TabContact:
		sb.WriteString(m.contactView())
	}

	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("tab: switch view  ctrl+o: minimize  ctrl+c: quit"))
	return sb.String()
}

func (m model) chatView(state widget.UIState) string {
	var sb strings.Builder
	sb.WriteString(panelStyle.Render(m.viewport.View()))
	sb.WriteString("\n")
	if m.w.ShowQuickPrompts() {
		for i, prompt := range m.w.QuickPrompts() {
			sb.WriteString(mutedStyle.Render(fmt.Sprintf("[%d] %s  ", i+1, prompt)))
		}
		sb.WriteString("\n")
	}
	if state.Loading {
		sb.WriteString(m.spinner.View() + mutedStyle.Render(" CYBOT is typing..."))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	return sb.String()
}

func (m model) faqView(state widget.UIState) string {
	var sb strings.Builder
	sb.WriteString(mutedStyle.Render("category (left/right): "))
	sb.WriteString(state.SelectedCategory)
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	visible := m.w.VisibleFAQs()
	if len(visible) == 0 {
		sb.WriteString(mutedStyle.Render("No FAQs found matching your search."))
		sb.WriteString("\n")
	}
	for i, entry := range visible {
		cursor := "  "
		if i == m.faqCursor {
			cursor = "> "
		}
		marker := "+"
		if state.Accordion.IsExpanded(entry.ID) {
			marker = "-"
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", cursor, marker, entry.Question))
		if state.Accordion.IsExpanded(entry.ID) {
			sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Width(m.width - 4).Render(entry.Answer))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m model) contactView() string {
	state := m.w.Contact().State()
	var sb strings.Builder
	switch state.Status {
	case widget.ContactConfirmed:
		sb.WriteString(assistantStyle.Render(state.Notice))
		sb.WriteString("\n" + mutedStyle.Render("enter: send another message"))
		return sb.String()
	case widget.ContactSubmitting:
		sb.WriteString(m.spinner.View() + mutedStyle.Render(" Sending..."))
		return sb.String()
	case widget.ContactFailed:
		sb.WriteString(errorStyle.Render(state.Notice))
		sb.WriteString("\n" + mutedStyle.Render("enter: back to the form"))
		return sb.String()
	}

	invalid := map[string]bool{}
	for _, field := range state.InvalidFields {
		invalid[field] = true
	}
	for i, field := range widget.ContactFields() {
		label := fmt.Sprintf("%-8s", field)
		if invalid[field] {
			label = errorStyle.Render(label)
		}
		if i == m.contactField {
			sb.WriteString("> " + label + " " + m.input.View())
		} else {
			sb.WriteString("  " + label + " " + contactValue(state, field))
		}
		sb.WriteString("\n")
	}
	if state.Notice != "" {
		sb.WriteString(errorStyle.Render(state.Notice))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("type: general, careers or support  enter on the last field or ctrl+s: send"))
	return sb.String()
}
