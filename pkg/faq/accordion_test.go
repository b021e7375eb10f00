package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccordionSingleOpen(t *testing.T) {
	accordion := Collapsed()
	_, ok := accordion.ExpandedID()
	assert.False(t, ok)

	accordion = accordion.Toggle("a")
	assert.True(t, accordion.IsExpanded("a"))

	accordion = accordion.Toggle("b")
	assert.True(t, accordion.IsExpanded("b"))
	assert.False(t, accordion.IsExpanded("a"), "expanding b should collapse a")

	accordion = accordion.Toggle("b")
	_, ok = accordion.ExpandedID()
	assert.False(t, ok, "toggling the expanded entry should collapse it")
}

func TestAccordionValueSemantics(t *testing.T) {
	first := Expanded("a")
	second := first.Toggle("b")
	assert.True(t, first.IsExpanded("a"))
	id, _ := second.ExpandedID()
	assert.Equal(t, "b", id)
}
