package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacklinks_Basic(t *testing.T) {
	g := NewLinkGraph(map[string][]string{
		"A": {"T", "B"},
		"C": {"T"},
	})

	assert.Equal(t, []string{"A", "C"}, Backlinks(g, "T"))
	assert.Equal(t, []string{"A"}, Backlinks(g, "B"), "A links to B")
	assert.Empty(t, Backlinks(g, "A"), "nothing links to A")
}

func TestBacklinks_NoDuplicatesNoSelf(t *testing.T) {
	g := NewLinkGraph(map[string][]string{
		"A": {"T", "T", "T"}, // duplicate edges count once
		"T": {"T"},           // self-link ignored
	})

	bl := Backlinks(g, "T")
	assert.Equal(t, []string{"A"}, bl)
	assert.NotContains(t, bl, "T")
}

func TestTwoHop_SpecScenario(t *testing.T) {
	// graph {A:[T,B], C:[T]}, target T: backlinks {A,C}, A's outgoing
	// reaches B, so twoHop(T) = {B}.
	g := NewLinkGraph(map[string][]string{
		"A": {"T", "B"},
		"C": {"T"},
	})

	assert.Equal(t, []string{"A", "C"}, Backlinks(g, "T"))
	assert.Equal(t, []string{"B"}, TwoHop(g, "T"))
}

func TestTwoHop_ExcludesBacklinksAndTarget(t *testing.T) {
	// C is both reachable via A's outgoing and a direct backlink of T;
	// backlink wins and C must not appear in the two-hop set.
	g := NewLinkGraph(map[string][]string{
		"A": {"T", "C", "B"},
		"C": {"T"},
	})

	twoHop := TwoHop(g, "T")
	assert.Equal(t, []string{"B"}, twoHop)
	assert.NotContains(t, twoHop, "T")
	assert.NotContains(t, twoHop, "C")
}

func TestTwoHop_EmptyTarget(t *testing.T) {
	g := NewLinkGraph(map[string][]string{"A": {"B"}})
	assert.Empty(t, TwoHop(g, ""))
	assert.Empty(t, Backlinks(g, ""))
}

func TestCategorized_Disjoint(t *testing.T) {
	g := NewLinkGraph(map[string][]string{
		"T": {"O1", "O2"},
		"B1": {"T", "H1", "O1"},
		"O1": {"H2", "T"},
		"H3": {"O2"},
	})

	c := Categorized(g, "T")

	// O1 links back to T but is already outgoing; outgoing wins.
	assert.Contains(t, c.Outgoing, "O1")
	assert.Contains(t, c.Outgoing, "O2")
	assert.NotContains(t, c.Backlinks, "O1")
	assert.Contains(t, c.Backlinks, "B1")

	// H1 via backlink->outgoing, H2 via outgoing->outgoing,
	// H3 via outgoing->backlink.
	assert.Contains(t, c.TwoHop, "H1")
	assert.Contains(t, c.TwoHop, "H2")
	assert.Contains(t, c.TwoHop, "H3")

	// Pairwise disjoint, and T appears nowhere.
	for id := range c.Outgoing {
		assert.NotContains(t, c.Backlinks, id)
		assert.NotContains(t, c.TwoHop, id)
		assert.NotEqual(t, "T", id)
	}
	for id := range c.Backlinks {
		assert.NotContains(t, c.TwoHop, id)
		assert.NotEqual(t, "T", id)
	}
	for id := range c.TwoHop {
		assert.NotEqual(t, "T", id)
	}
}

func TestCategorized_NoCurrentDocument(t *testing.T) {
	g := NewLinkGraph(map[string][]string{"A": {"B"}})

	c := Categorized(g, "")
	require.True(t, c.Empty())
}

func TestNewLinkGraph_UnknownIDsAreTotal(t *testing.T) {
	g := NewLinkGraph(nil)
	assert.Empty(t, g.Outgoing("missing"))
	assert.Empty(t, g.Incoming("missing"))
	assert.True(t, Categorized(g, "missing").Empty())
}
