package widget

import (
	"errors"

	"github.com/cyboglabs/cybot/pkg/faq"
)

// Tab selects which sub-view of the open widget is shown
type Tab string

const (
	TabChat    Tab = "chat"
	TabFAQ     Tab = "faq"
	TabContact Tab = "contact"
)

var (
	ErrUnknownTab      = errors.New("unknown tab")
	ErrUnknownCategory = errors.New("unknown faq category")
	ErrUnknownPrompt   = errors.New("unknown quick prompt")
	ErrSendInFlight    = errors.New("a message is already being sent")
	ErrUnmounted       = errors.New("widget is unmounted")
)

// Tabs lists the tabs in display order
func Tabs() []Tab {
	return []Tab{TabChat, TabFAQ, TabContact}
}

// ParseTab converts a tab name into a Tab
func ParseTab(name string) (Tab, error) {
	for _, tab := range Tabs() {
		if string(tab) == name {
			return tab, nil
		}
	}
	return "", ErrUnknownTab
}

// UIState is a snapshot of everything the widget renders from, apart from
// the transcript and the contact form
type UIState struct {
	Open             bool          `json:"open"`
	ActiveTab        Tab           `json:"active_tab"`
	Loading          bool          `json:"loading"`
	Accordion        faq.Accordion `json:"-"`
	SelectedCategory string        `json:"selected_category"`
	Query            string        `json:"query"`
	Draft            string        `json:"draft"`
}

func initialState() UIState {
	return UIState{
		ActiveTab:        TabChat,
		Accordion:        faq.Collapsed(),
		SelectedCategory: faq.AllCategories,
	}
}
