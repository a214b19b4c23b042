package ranking

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noteleap/noteleap/models"
)

// sortResults orders results in place: ascending priority first, ties
// broken by descending score when a query is present, otherwise by
// collated display name. Document ID is the final tie-break so the
// ordering is total and stable across runs.
func sortResults(results []models.RankedResult, byScore bool) {
	coll := collate.New(language.Und)
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if byScore && a.Score != b.Score {
			return a.Score > b.Score
		}
		if c := coll.CompareString(a.Document.Name, b.Document.Name); c != 0 {
			return c < 0
		}
		return strings.Compare(a.Document.ID, b.Document.ID) < 0
	})
}
