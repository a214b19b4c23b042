package models

// Category labels a ranked result with the relationship that put it in
// the list.
type Category string

const (
	// CategoryRecent marks documents present in the recency cache.
	CategoryRecent Category = "recent"
	// CategoryOutgoing marks documents the current document links to.
	CategoryOutgoing Category = "outgoing"
	// CategoryBacklink marks documents that link to the current document.
	CategoryBacklink Category = "backlink"
	// CategoryTwoHop marks documents reached through exactly one
	// intermediate relation, excluding direct backlinks.
	CategoryTwoHop Category = "two-hop"
	// CategoryOther marks documents with no link relationship to the
	// current document.
	CategoryOther Category = "other"
	// CategoryUnrelated is the catch-all, lowest-priority label used for
	// matches outside the active filter (extended results) and for
	// matches produced while the current document itself fails the
	// filter or during the unfiltered fallback.
	CategoryUnrelated Category = "unrelated"
)

// CategoryPolicy configures one relationship category.
type CategoryPolicy struct {
	Enabled  bool `json:"enabled" mapstructure:"enabled"`
	Priority int  `json:"priority" mapstructure:"priority" validate:"min=0"`
	// BypassFilters lets the category's documents into empty-query
	// results even when they fail the active property filters. Only
	// honored for the Recent category.
	BypassFilters bool `json:"bypassFilters,omitempty" mapstructure:"bypassFilters"`
}

// RankingPolicy is the complete, per-invocation ranking configuration.
// It is supplied whole to each Rank call and never mutated by the engine.
type RankingPolicy struct {
	Recent   CategoryPolicy `json:"recent" mapstructure:"recent"`
	Outgoing CategoryPolicy `json:"outgoing" mapstructure:"outgoing"`
	Backlink CategoryPolicy `json:"backlink" mapstructure:"backlink"`
	TwoHop   CategoryPolicy `json:"twoHop" mapstructure:"twoHop"`

	// ExtendResults appends matches that fall outside the active
	// property filters, labeled CategoryUnrelated, after the primary
	// result set.
	ExtendResults bool `json:"extendResults" mapstructure:"extendResults"`
	// FilterRelatedDocuments requires related documents shown for an
	// empty query (when the current document is outside the filter) to
	// pass the property filters themselves.
	FilterRelatedDocuments bool `json:"filterRelatedDocuments" mapstructure:"filterRelatedDocuments"`
	// UnfilteredFallback re-runs a zero-result search over the
	// unrestricted document set, once, tagging matches CategoryUnrelated.
	UnfilteredFallback bool `json:"unfilteredFallback" mapstructure:"unfilteredFallback"`
}

// DefaultRankingPolicy returns the policy used when no configuration
// overrides it: all categories enabled, recency first, link distance
// increasing in priority.
func DefaultRankingPolicy() RankingPolicy {
	return RankingPolicy{
		Recent:                 CategoryPolicy{Enabled: true, Priority: 1},
		Outgoing:               CategoryPolicy{Enabled: true, Priority: 2},
		Backlink:               CategoryPolicy{Enabled: true, Priority: 3},
		TwoHop:                 CategoryPolicy{Enabled: true, Priority: 4},
		ExtendResults:          true,
		FilterRelatedDocuments: false,
		UnfilteredFallback:     false,
	}
}

// CategoryPolicyFor returns the policy entry for a link/recency
// category. ok is false for CategoryOther and CategoryUnrelated, which
// carry fixed priorities and cannot be disabled.
func (p RankingPolicy) CategoryPolicyFor(c Category) (CategoryPolicy, bool) {
	switch c {
	case CategoryRecent:
		return p.Recent, true
	case CategoryOutgoing:
		return p.Outgoing, true
	case CategoryBacklink:
		return p.Backlink, true
	case CategoryTwoHop:
		return p.TwoHop, true
	default:
		return CategoryPolicy{}, false
	}
}
