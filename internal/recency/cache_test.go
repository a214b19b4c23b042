package recency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_NewestFirst(t *testing.T) {
	c := New(4)
	c.Add("a.md")
	c.Add("b.md")
	c.Add("c.md")

	assert.Equal(t, []string{"c.md", "b.md", "a.md"}, c.List())
}

func TestAdd_MovesExistingToFront(t *testing.T) {
	c := New(4)
	c.Add("a.md")
	c.Add("b.md")
	c.Add("a.md")

	assert.Equal(t, []string{"a.md", "b.md"}, c.List())
	assert.Equal(t, 2, c.Len(), "no duplicates")
}

func TestAdd_Idempotent(t *testing.T) {
	c := New(1)
	for i := 0; i < 5; i++ {
		c.Add("a.md")
	}

	assert.Equal(t, []string{"a.md"}, c.List())
}

func TestAdd_EvictsOldest(t *testing.T) {
	c := New(2)
	c.Add("a.md")
	c.Add("b.md")
	c.Add("c.md")

	assert.Equal(t, []string{"c.md", "b.md"}, c.List())
	assert.False(t, c.Contains("a.md"))
}

func TestZeroCapacity(t *testing.T) {
	c := New(0)
	c.Add("a.md")

	assert.Zero(t, c.Len())
	assert.Empty(t, c.List())
	assert.False(t, c.Contains("a.md"))
}

func TestResize_ShrinkKeepsNewest(t *testing.T) {
	c := New(4)
	c.Add("a.md")
	c.Add("b.md")
	c.Add("c.md")

	c.Resize(2)
	assert.Equal(t, []string{"c.md", "b.md"}, c.List())

	// Add after resize never exceeds the new capacity.
	c.Add("d.md")
	assert.Equal(t, []string{"d.md", "c.md"}, c.List())
	assert.Equal(t, 2, c.Len())
}

func TestResize_GrowKeepsContents(t *testing.T) {
	c := New(2)
	c.Add("a.md")
	c.Add("b.md")

	c.Resize(5)
	assert.Equal(t, []string{"b.md", "a.md"}, c.List())
	assert.Equal(t, 5, c.Capacity())
}

func TestResize_ToZeroThenBack(t *testing.T) {
	c := New(3)
	c.Add("a.md")

	c.Resize(0)
	assert.Zero(t, c.Len())
	c.Add("b.md")
	assert.Zero(t, c.Len())

	c.Resize(2)
	c.Add("c.md")
	assert.Equal(t, []string{"c.md"}, c.List())
}

func TestClear(t *testing.T) {
	c := New(3)
	c.Add("a.md")
	c.Add("b.md")

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, 3, c.Capacity())
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New(3)
	c.Add("a.md")

	got := c.List()
	got[0] = "mutated"

	assert.Equal(t, []string{"a.md"}, c.List())
}

func TestEmptyIDIgnored(t *testing.T) {
	c := New(3)
	c.Add("")

	assert.Zero(t, c.Len())
}
