// Package match defines the text-match scorer contract the ranking
// pipeline consumes, plus the fuzzy-matching implementation the CLI
// ships. The pipeline treats the scorer as a black box: a score or "no
// match", nothing else.
package match

import "github.com/sahilm/fuzzy"

// Scorer scores candidate text against one fixed query. Implementations
// must be case-insensitive.
type Scorer interface {
	// Score returns the match score for the candidate text. ok is false
	// when the candidate does not match the query at all.
	Score(candidate string) (score float64, ok bool)
}

// Factory builds a Scorer for one query string. The orchestrator calls
// it once per Rank invocation.
type Factory func(query string) Scorer

// FuzzyScorer scores candidates with sahilm/fuzzy, the same matcher the
// interactive list uses, so one-shot and interactive results agree.
type FuzzyScorer struct {
	query string
}

// NewFuzzyScorer builds a fuzzy scorer for the given query.
func NewFuzzyScorer(query string) *FuzzyScorer {
	return &FuzzyScorer{query: query}
}

// Score implements Scorer.
func (s *FuzzyScorer) Score(candidate string) (float64, bool) {
	if s.query == "" || candidate == "" {
		return 0, false
	}
	matches := fuzzy.Find(s.query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return float64(matches[0].Score), true
}

// DefaultFactory is the Factory for the shipped fuzzy scorer.
func DefaultFactory(query string) Scorer {
	return NewFuzzyScorer(query)
}
