package ranking

import (
	"github.com/noteleap/noteleap/internal/graph"
	"github.com/noteleap/noteleap/models"
)

// Fixed priorities for the categories a policy cannot configure. They
// sort after any sane configured priority so uncategorized documents
// and catch-all matches always trail the prioritized ones.
const (
	priorityOther     = 1 << 16
	priorityUnrelated = 1 << 17
)

// signals bundles the precomputed per-query inputs categorization reads:
// the recency set and the current document's categorized link sets.
type signals struct {
	recent map[string]struct{}
	links  graph.CategorizedLinks
}

// categorize assigns the category and priority for one document ID by
// first match in fixed precedence: Recent, Outgoing, Backlink, TwoHop,
// then Other. Disabled categories are treated as absent and fall
// through to the next.
func categorize(id string, policy models.RankingPolicy, sig signals) (models.Category, int) {
	if policy.Recent.Enabled {
		if _, ok := sig.recent[id]; ok {
			return models.CategoryRecent, policy.Recent.Priority
		}
	}
	if policy.Outgoing.Enabled {
		if _, ok := sig.links.Outgoing[id]; ok {
			return models.CategoryOutgoing, policy.Outgoing.Priority
		}
	}
	if policy.Backlink.Enabled {
		if _, ok := sig.links.Backlinks[id]; ok {
			return models.CategoryBacklink, policy.Backlink.Priority
		}
	}
	if policy.TwoHop.Enabled {
		if _, ok := sig.links.TwoHop[id]; ok {
			return models.CategoryTwoHop, policy.TwoHop.Priority
		}
	}
	return models.CategoryOther, priorityOther
}
