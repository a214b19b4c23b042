// Package ranking assembles ordered, labeled result lists for the
// document switcher. It merges four independent signals (link-graph
// topology, the recency cache, property filters, and an injected
// text-match score) under a configurable priority policy.
package ranking

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/noteleap/noteleap/internal/graph"
	"github.com/noteleap/noteleap/internal/match"
	"github.com/noteleap/noteleap/internal/propfilter"
	"github.com/noteleap/noteleap/internal/recency"
	"github.com/noteleap/noteleap/models"
)

// DocumentSource enumerates document snapshots. It is invoked fresh on
// every Rank call; the engine caches nothing between calls.
type DocumentSource interface {
	Documents() ([]models.Document, error)
}

// Options carries the engine's construction-time configuration. The
// ranking policy itself is supplied per Rank call, not here.
type Options struct {
	// Scorer builds the text-match scorer for a query. Defaults to the
	// shipped fuzzy scorer.
	Scorer match.Factory
	// Filters is the active property-filter conjunction.
	Filters []models.PropertyFilter
	// ExcludedPaths are folder prefixes removed from the candidate pool.
	ExcludedPaths []string
}

// Engine runs the result-assembly pipeline. It is designed for
// single-threaded, synchronous invocation: one Rank call runs to
// completion before returning. The recency cache is the only shared
// mutable state and serializes itself.
type Engine struct {
	source  DocumentSource
	recent  *recency.Cache
	scorer  match.Factory
	filters []models.PropertyFilter
	exclude []string
}

// NewEngine builds an engine over the given source and recency cache.
func NewEngine(source DocumentSource, recent *recency.Cache, opts Options) *Engine {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = match.DefaultFactory
	}
	if recent == nil {
		recent = recency.New(recency.DefaultCapacity)
	}
	return &Engine{
		source:  source,
		recent:  recent,
		scorer:  scorer,
		filters: append([]models.PropertyFilter(nil), opts.Filters...),
		exclude: append([]string(nil), opts.ExcludedPaths...),
	}
}

// Recency exposes the engine's cache so the host can wire its
// document-open notifier to Add.
func (e *Engine) Recency() *recency.Cache {
	return e.recent
}

// Rank runs the full pipeline for one query and returns the ordered,
// labeled result list. currentID may be empty or unresolvable, both of
// which mean "no current document". An empty result is a valid outcome,
// not an error.
func (e *Engine) Rank(query string, policy models.RankingPolicy, currentID string) ([]models.RankedResult, error) {
	docs, err := e.source.Documents()
	if err != nil {
		return nil, fmt.Errorf("enumerate documents: %w", err)
	}

	traceID := uuid.NewString()

	byID := make(map[string]models.Document, len(docs))
	adjacency := make(map[string][]string, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
		adjacency[d.ID] = d.Links
	}

	// An unresolvable current ID is treated identically to none.
	if _, ok := byID[currentID]; !ok {
		currentID = ""
	}

	// Step 1: exclusion fixes the candidate pool for the whole call.
	// The current document never appears in its own result set.
	pool := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if d.ID == currentID || propfilter.IsExcluded(d.ID, e.exclude) {
			continue
		}
		pool = append(pool, d)
	}

	// Step 2: classify the current document against exclusion and the
	// active filters; this flips the pipeline between the inside and
	// outside branches.
	outside := false
	if currentID != "" {
		cur := byID[currentID]
		outside = propfilter.IsExcluded(currentID, e.exclude) ||
			!propfilter.PassesAll(cur.Meta, e.filters)
	}

	queryEmpty := strings.TrimSpace(query) == ""
	b := selectBranch(queryEmpty, outside)

	g := graph.NewLinkGraph(adjacency)
	sig := signals{
		recent: e.recent.Set(),
		links:  graph.Categorized(g, currentID),
	}

	var results []models.RankedResult
	switch b {
	case branchFilteredList:
		results = e.filteredList(pool, policy, sig)
	case branchRelated:
		results = e.relatedList(pool, policy, sig)
	case branchFilteredSearch:
		results = e.filteredSearch(query, pool, policy, sig)
	case branchCatchAllSearch:
		results = e.catchAllSearch(query, pool, policy)
	}

	// Step 6: single-shot unfiltered fallback. Never loops.
	if len(results) == 0 && !queryEmpty && policy.UnfilteredFallback {
		slog.Warn("no matches under active filters, retrying unfiltered",
			"trace_id", traceID, "query", query)
		results = e.fallbackSearch(query, docs, currentID)
	}

	slog.Debug("rank complete",
		"trace_id", traceID,
		"branch", b.String(),
		"query_empty", queryEmpty,
		"current_outside_filter", outside,
		"pool", len(pool),
		"results", len(results))
	return results, nil
}

// filteredList handles the empty-query case with the current document
// inside the filter (or absent): filter the pool, optionally union in
// bypassing recents, categorize, sort.
func (e *Engine) filteredList(pool []models.Document, policy models.RankingPolicy, sig signals) []models.RankedResult {
	included := make(map[string]bool, len(pool))
	results := make([]models.RankedResult, 0, len(pool))

	add := func(d models.Document) {
		cat, prio := categorize(d.ID, policy, sig)
		results = append(results, models.RankedResult{Document: d, Category: cat, Priority: prio})
		included[d.ID] = true
	}

	for _, d := range pool {
		if propfilter.PassesAll(d.Meta, e.filters) {
			add(d)
		}
	}

	// Recents may bypass the property filters, but never the exclusion:
	// only pool members are eligible.
	if policy.Recent.Enabled && policy.Recent.BypassFilters {
		for _, d := range pool {
			if included[d.ID] {
				continue
			}
			if _, ok := sig.recent[d.ID]; ok {
				add(d)
			}
		}
	}

	sortResults(results, false)
	return results
}

// relatedList handles the empty-query case with the current document
// outside the filter: only documents related to the current one
// (recency, outgoing, backlink, two-hop) are shown, so navigation away
// from a non-matching document is never blocked.
func (e *Engine) relatedList(pool []models.Document, policy models.RankingPolicy, sig signals) []models.RankedResult {
	related := make(map[string]struct{})
	for id := range sig.recent {
		related[id] = struct{}{}
	}
	for id := range sig.links.Outgoing {
		related[id] = struct{}{}
	}
	for id := range sig.links.Backlinks {
		related[id] = struct{}{}
	}
	for id := range sig.links.TwoHop {
		related[id] = struct{}{}
	}

	results := make([]models.RankedResult, 0, len(related))
	for _, d := range pool {
		if _, ok := related[d.ID]; !ok {
			continue
		}
		if policy.FilterRelatedDocuments && !propfilter.PassesAll(d.Meta, e.filters) {
			continue
		}
		cat, prio := categorize(d.ID, policy, sig)
		results = append(results, models.RankedResult{Document: d, Category: cat, Priority: prio})
	}

	sortResults(results, false)
	return results
}

// filteredSearch handles a non-empty query with the current document
// inside the filter: score the filtered subset, categorize matches,
// then append out-of-filter matches as a separate, score-ordered block
// when extension is enabled. The two blocks are never interleaved.
func (e *Engine) filteredSearch(query string, pool []models.Document, policy models.RankingPolicy, sig signals) []models.RankedResult {
	scorer := e.scorer(query)

	primary := make([]models.RankedResult, 0, len(pool))
	var outOfFilter []models.Document
	for _, d := range pool {
		if !propfilter.PassesAll(d.Meta, e.filters) {
			outOfFilter = append(outOfFilter, d)
			continue
		}
		score, ok := scoreDocument(scorer, d)
		if !ok {
			continue
		}
		cat, prio := categorize(d.ID, policy, sig)
		primary = append(primary, models.RankedResult{Document: d, Category: cat, Priority: prio, Score: score})
	}
	sortResults(primary, true)

	if !policy.ExtendResults {
		return primary
	}

	extended := make([]models.RankedResult, 0, len(outOfFilter))
	for _, d := range outOfFilter {
		score, ok := scoreDocument(scorer, d)
		if !ok {
			continue
		}
		extended = append(extended, models.RankedResult{
			Document: d,
			Category: models.CategoryUnrelated,
			Priority: priorityUnrelated,
			Score:    score,
		})
	}
	sortResults(extended, true)
	return append(primary, extended...)
}

// catchAllSearch handles a non-empty query with the current document
// outside the filter. There is no valid "inside" boundary, so link
// categorization is skipped entirely and every match carries the
// catch-all category. Without result extension only filter-passing
// documents are scored, and an empty result set is valid.
func (e *Engine) catchAllSearch(query string, pool []models.Document, policy models.RankingPolicy) []models.RankedResult {
	scorer := e.scorer(query)

	results := make([]models.RankedResult, 0, len(pool))
	for _, d := range pool {
		if !policy.ExtendResults && !propfilter.PassesAll(d.Meta, e.filters) {
			continue
		}
		score, ok := scoreDocument(scorer, d)
		if !ok {
			continue
		}
		results = append(results, models.RankedResult{
			Document: d,
			Category: models.CategoryUnrelated,
			Priority: priorityUnrelated,
			Score:    score,
		})
	}
	sortResults(results, true)
	return results
}

// fallbackSearch re-runs the search over the unrestricted document set,
// ignoring filters and exclusions. The current document stays out of
// its own results.
func (e *Engine) fallbackSearch(query string, docs []models.Document, currentID string) []models.RankedResult {
	scorer := e.scorer(query)

	results := make([]models.RankedResult, 0, len(docs))
	for _, d := range docs {
		if d.ID == currentID {
			continue
		}
		score, ok := scoreDocument(scorer, d)
		if !ok {
			continue
		}
		results = append(results, models.RankedResult{
			Document: d,
			Category: models.CategoryUnrelated,
			Priority: priorityUnrelated,
			Score:    score,
		})
	}
	sortResults(results, true)
	return results
}

// scoreDocument scores a document by the better of its display name and
// its path.
func scoreDocument(scorer match.Scorer, d models.Document) (float64, bool) {
	best, matched := scorer.Score(d.Name)
	if s, ok := scorer.Score(d.ID); ok && (!matched || s > best) {
		best, matched = s, true
	}
	return best, matched
}
