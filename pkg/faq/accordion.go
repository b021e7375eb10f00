package faq

// Accordion tracks which single FAQ entry is expanded. The zero value is collapsed.
type Accordion struct {
	expanded *string
}

// Collapsed returns an Accordion with nothing expanded
func Collapsed() Accordion {
	return Accordion{}
}

// Expanded returns an Accordion with only id expanded
func Expanded(id string) Accordion {
	return Accordion{expanded: &id}
}

// Toggle expands id, collapses it if it is already expanded, or replaces
// whichever other entry was expanded
func (a Accordion) Toggle(id string) Accordion {
	if a.IsExpanded(id) {
		return Collapsed()
	}
	return Expanded(id)
}

func (a Accordion) IsExpanded(id string) bool {
	return a.expanded != nil && *a.expanded == id
}

// ExpandedID returns the expanded entry ID, if any
func (a Accordion) ExpandedID() (string, bool) {
	if a.expanded == nil {
		return "", false
	}
	return *a.expanded, true
}
