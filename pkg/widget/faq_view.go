package widget

import (
	"github.com/cyboglabs/cybot/pkg/faq"
)

// FAQCategories returns the category filter options
func (w *Widget) FAQCategories() []string {
	return faq.Categories(w.faq.Entries())
}

// SelectCategory narrows the FAQ view to a category, or "All"
func (w *Widget) SelectCategory(category string) error {
	known := false
	for _, c := range w.FAQCategories() {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownCategory
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.SelectedCategory = category
	return nil
}

// SetQuery filters FAQ entries by text in the question or answer
func (w *Widget) SetQuery(query string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Query = query
}

// ToggleFAQ expands id, collapsing whichever entry was expanded before
func (w *Widget) ToggleFAQ(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Accordion = w.state.Accordion.Toggle(id)
}

// VisibleFAQs derives the filtered entries from the current selection
func (w *Widget) VisibleFAQs() []faq.Entry {
	w.mu.Lock()
	params := faq.FilterParams{
		Category: w.state.SelectedCategory,
		Query:    w.state.Query,
		Limit:    w.faqLimit,
	}
	w.mu.Unlock()
	return faq.Filter(w.faq, params)
}
