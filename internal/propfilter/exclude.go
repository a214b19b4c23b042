package propfilter

import "strings"

// IsExcluded reports whether the document ID falls under any of the
// excluded folder prefixes. Prefixes are normalized to end with a path
// separator so they only match whole segments: excluding "temp" hides
// "temp/a.md" and "temp/sub/b.md" but never "templates/a.md". An empty
// prefix list excludes nothing.
func IsExcluded(id string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" || p == "/" {
			continue
		}
		if !strings.HasSuffix(p, "/") {
			p += "/"
		}
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// Exclude returns the IDs from the pool that are not under any excluded
// prefix, preserving order.
func Exclude(ids []string, prefixes []string) []string {
	if len(prefixes) == 0 {
		return append([]string(nil), ids...)
	}
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if !IsExcluded(id, prefixes) {
			kept = append(kept, id)
		}
	}
	return kept
}
