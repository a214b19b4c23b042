package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noteleap/noteleap/internal/graph"
	"github.com/noteleap/noteleap/models"
)

func set(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestCategorize_Precedence(t *testing.T) {
	policy := models.DefaultRankingPolicy()
	sig := signals{
		recent: set("x.md"),
		links: graph.CategorizedLinks{
			Outgoing:  set("x.md", "o.md"),
			Backlinks: set("b.md"),
			TwoHop:    set("h.md"),
		},
	}

	// x.md is both recent and outgoing; recent wins.
	cat, prio := categorize("x.md", policy, sig)
	assert.Equal(t, models.CategoryRecent, cat)
	assert.Equal(t, policy.Recent.Priority, prio)

	cat, _ = categorize("o.md", policy, sig)
	assert.Equal(t, models.CategoryOutgoing, cat)

	cat, _ = categorize("b.md", policy, sig)
	assert.Equal(t, models.CategoryBacklink, cat)

	cat, _ = categorize("h.md", policy, sig)
	assert.Equal(t, models.CategoryTwoHop, cat)

	cat, prio = categorize("stranger.md", policy, sig)
	assert.Equal(t, models.CategoryOther, cat)
	assert.Equal(t, priorityOther, prio)
}

func TestCategorize_DisabledFallsThrough(t *testing.T) {
	policy := models.DefaultRankingPolicy()
	policy.Recent.Enabled = false
	sig := signals{
		recent: set("x.md"),
		links:  graph.CategorizedLinks{Outgoing: set("x.md")},
	}

	cat, _ := categorize("x.md", policy, sig)
	assert.Equal(t, models.CategoryOutgoing, cat)
}

func TestSortResults(t *testing.T) {
	results := []models.RankedResult{
		{Document: models.Document{ID: "c", Name: "c"}, Priority: 2, Score: 90},
		{Document: models.Document{ID: "a", Name: "a"}, Priority: 1, Score: 10},
		{Document: models.Document{ID: "b", Name: "b"}, Priority: 2, Score: 99},
	}

	sortResults(results, true)
	assert.Equal(t, "a", results[0].Document.ID, "lower priority number first")
	assert.Equal(t, "b", results[1].Document.ID, "score breaks the priority tie")
	assert.Equal(t, "c", results[2].Document.ID)

	// Without a query, names order the ties.
	results = []models.RankedResult{
		{Document: models.Document{ID: "2", Name: "beta"}, Priority: 1},
		{Document: models.Document{ID: "1", Name: "alpha"}, Priority: 1},
	}
	sortResults(results, false)
	assert.Equal(t, "alpha", results[0].Document.Name)
}
