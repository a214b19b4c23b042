package models

// RankedResult is one entry of the ordered list returned by a Rank
// call. Results are produced fresh per query and never stored.
type RankedResult struct {
	Document Document `json:"document"`
	Category Category `json:"category"`
	// Priority is the category's configured priority number; lower
	// sorts first.
	Priority int `json:"priority"`
	// Score is the text-match score for the query, zero when the query
	// was empty.
	Score float64 `json:"score"`
}
