// Package propfilter evaluates metadata predicates and folder
// exclusions against document snapshots.
package propfilter

import (
	"strings"

	"github.com/noteleap/noteleap/models"
)

// Passes reports whether the given metadata satisfies one filter.
// Comparison is case-insensitive throughout. List-valued properties
// match when any element satisfies the predicate.
//
// Absent properties pass only not-exists. Note the asymmetry: an absent
// property fails not-equals as well as equals. That is deliberate and
// matches the configured meaning of not-equals, "has this property with
// a different value"; use not-exists to match documents without the
// property at all.
func Passes(meta models.Metadata, f models.PropertyFilter) bool {
	val, present := lookup(meta, f.Key)

	switch f.Operator {
	case models.OpExists:
		return present
	case models.OpNotExists:
		return !present
	}
	if !present {
		return false
	}

	want := strings.ToLower(f.Value)
	switch f.Operator {
	case models.OpEquals:
		return val.Any(func(s string) bool { return strings.ToLower(s) == want })
	case models.OpNotEquals:
		return val.Any(func(s string) bool { return strings.ToLower(s) != want })
	case models.OpContains:
		return val.Any(func(s string) bool {
			// An empty needle is contained in any non-empty haystack,
			// but not in an empty one.
			if want == "" {
				return s != ""
			}
			return strings.Contains(strings.ToLower(s), want)
		})
	}
	return false
}

// PassesAll reports whether the metadata satisfies every filter in the
// list. An empty list always passes. Evaluation short-circuits on the
// first failing filter; the outcome does not depend on filter order.
func PassesAll(meta models.Metadata, filters []models.PropertyFilter) bool {
	for _, f := range filters {
		if !Passes(meta, f) {
			return false
		}
	}
	return true
}

func lookup(meta models.Metadata, key string) (models.Value, bool) {
	if meta == nil {
		return models.Value{}, false
	}
	if v, ok := meta[key]; ok {
		return v, true
	}
	// Frontmatter keys are matched case-insensitively too.
	lower := strings.ToLower(key)
	for k, v := range meta {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	return models.Value{}, false
}
