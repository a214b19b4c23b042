package ranking

// branch identifies one of the pipeline's top-level assembly strategies.
type branch int

const (
	// branchFilteredList: empty query, current document inside the
	// filter (or no current document). Filtered candidate pool,
	// link/recency categorization.
	branchFilteredList branch = iota
	// branchRelated: empty query, current document outside the filter.
	// Only documents related to the current one are shown so navigation
	// is never blocked by a non-matching current document.
	branchRelated
	// branchFilteredSearch: non-empty query, current document inside
	// the filter. Scored matches over the filtered pool, optionally
	// extended with out-of-filter matches.
	branchFilteredSearch
	// branchCatchAllSearch: non-empty query, current document outside
	// the filter. No valid "inside" boundary exists, so link
	// categorization is skipped and every match carries the catch-all
	// category.
	branchCatchAllSearch
)

func (b branch) String() string {
	switch b {
	case branchFilteredList:
		return "filtered-list"
	case branchRelated:
		return "related"
	case branchFilteredSearch:
		return "filtered-search"
	case branchCatchAllSearch:
		return "catch-all-search"
	default:
		return "unknown"
	}
}

// condition keys the decision table. The third input of the pipeline,
// hasMatches, is not part of the key: it only decides whether the
// single-shot unfiltered fallback runs after a search branch produced
// nothing.
type condition struct {
	queryEmpty     bool
	currentOutside bool
}

// pipelineTable is the explicit decision table for the four primary
// branches. Keeping it as data rather than nested conditionals makes
// the precedence rules auditable in isolation (see decision_test.go).
var pipelineTable = map[condition]branch{
	{queryEmpty: true, currentOutside: false}:  branchFilteredList,
	{queryEmpty: true, currentOutside: true}:   branchRelated,
	{queryEmpty: false, currentOutside: false}: branchFilteredSearch,
	{queryEmpty: false, currentOutside: true}:  branchCatchAllSearch,
}

func selectBranch(queryEmpty, currentOutside bool) branch {
	return pipelineTable[condition{queryEmpty: queryEmpty, currentOutside: currentOutside}]
}
