package faq

import "strings"

// AllCategories is the category that disables category filtering
const AllCategories = "All"

// FilterParams represent everything the FAQ view can be narrowed by
type FilterParams struct {
	Category string `json:"category"`
	Query    string `json:"query"`
	Limit    int    `json:"limit"`
}

func (f *FilterParams) isEmpty() bool {
	return (f.Category == "" || f.Category == AllCategories) && strings.TrimSpace(f.Query) == ""
}

// MatchesFilters determines whether an entry belongs in the filtered view
func (f *FilterParams) MatchesFilters(entry Entry) bool {
	if f.isEmpty() {
		return true
	}
	if f.Category != "" && f.Category != AllCategories && entry.Category != f.Category {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Question), query) ||
		strings.Contains(strings.ToLower(entry.Answer), query)
}

// Filter returns the entries matching params without touching the dataset
func Filter(dataset Dataset, params FilterParams) []Entry {
	results := []Entry{}
	for _, entry := range dataset.Entries() {
		if !params.MatchesFilters(entry) {
			continue
		}
		results = append(results, entry)
		if params.Limit > 0 && len(results) == params.Limit {
			break
		}
	}
	return results
}

// Categories returns "All" followed by each distinct category in first-seen order.
// Blank categories and entries already labelled "All" add nothing.
func Categories(entries []Entry) []string {
	categories := []string{AllCategories}
	seen := map[string]bool{}
	for _, entry := range entries {
		if entry.Category == "" || entry.Category == AllCategories || seen[entry.Category] {
			continue
		}
		seen[entry.Category] = true
		categories = append(categories, entry.Category)
	}
	return categories
}
