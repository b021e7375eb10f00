package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testEntries() []Entry {
	return []Entry{
		{ID: "1", Category: "Company", Question: "What does CYBOGLABS do?", Answer: "R&D across AI and hardware."},
		{ID: "2", Category: "Careers", Question: "Are you hiring?", Answer: "Yes, DevOps and ML roles."},
		{ID: "3", Category: "Company", Question: "Where are you located?", Answer: "Contact support@cyboglabs.com."},
		{ID: "4", Category: "Internships", Question: "Do you offer internships?", Answer: "Paid, 3-6 months."},
		{ID: "5", Category: "Careers", Question: "How do I apply?", Answer: "Use the careers page."},
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"All", "Company", "Careers", "Internships"}, Categories(testEntries()))
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestCategoriesSkipsAllAndBlank(t *testing.T) {
	entries := []Entry{
		{ID: "1", Category: "All", Question: "q1", Answer: "a1"},
		{ID: "2", Category: "", Question: "q2", Answer: "a2"},
		{ID: "3", Category: "Careers", Question: "q3", Answer: "a3"},
	}
	assert.Equal(t, []string{"All", "Careers"}, Categories(entries))
}

func TestFilterByCategory(t *testing.T) {
	dataset := NewStaticDataset(testEntries())
	for _, category := range Categories(testEntries()) {
		results := Filter(dataset, FilterParams{Category: category})
		if category == AllCategories {
			assert.Len(t, results, 5)
			continue
		}
		expected := 0
		for _, entry := range testEntries() {
			if entry.Category == category {
				expected++
			}
		}
		assert.Len(t, results, expected, category)
		for _, entry := range results {
			assert.Equal(t, category, entry.Category)
		}
	}
}

func TestFilterQueryAndLimit(t *testing.T) {
	dataset := NewStaticDataset(testEntries())

	results := Filter(dataset, FilterParams{Category: AllCategories, Query: "SUPPORT@"})
	if assert.Len(t, results, 1) {
		assert.Equal(t, "3", results[0].ID)
	}

	results = Filter(dataset, FilterParams{Category: "Careers", Query: "apply"})
	if assert.Len(t, results, 1) {
		assert.Equal(t, "5", results[0].ID)
	}

	results = Filter(dataset, FilterParams{Limit: 2})
	assert.Equal(t, []string{"1", "2"}, []string{results[0].ID, results[1].ID})
	assert.Len(t, results, 2)

	assert.Empty(t, Filter(dataset, FilterParams{Category: "Legal"}))
}

func TestFilterDoesNotMutateDataset(t *testing.T) {
	entries := testEntries()
	dataset := NewStaticDataset(entries)
	entries[0].Question = "changed"
	results := Filter(dataset, FilterParams{Category: "Company"})
	results[0].Answer = "changed"
	assert.Equal(t, testEntries(), dataset.Entries())
}
