// Package graph provides the link-graph view over a document set and
// the backlink / two-hop analysis the ranking pipeline categorizes with.
package graph

import "sort"

// LinkGraph is an adjacency-list view over documents' outgoing
// references. It is built fresh from a provider snapshot per query and
// never mutated afterwards. A reverse index is precomputed so backlink
// lookups do not scan every edge.
type LinkGraph struct {
	out map[string][]string
	in  map[string][]string
}

// NewLinkGraph builds a graph from a map of document ID to outgoing
// link targets. Self-links are dropped and duplicate edges count once.
func NewLinkGraph(adjacency map[string][]string) *LinkGraph {
	g := &LinkGraph{
		out: make(map[string][]string, len(adjacency)),
		in:  make(map[string][]string),
	}
	for src, targets := range adjacency {
		seen := make(map[string]bool, len(targets))
		for _, dst := range targets {
			if dst == src || dst == "" || seen[dst] {
				continue
			}
			seen[dst] = true
			g.out[src] = append(g.out[src], dst)
			g.in[dst] = append(g.in[dst], src)
		}
	}
	for _, targets := range g.out {
		sort.Strings(targets)
	}
	for _, sources := range g.in {
		sort.Strings(sources)
	}
	return g
}

// Outgoing returns a copy of the IDs the given document links to.
// Unknown IDs yield an empty slice.
func (g *LinkGraph) Outgoing(id string) []string {
	return append([]string(nil), g.out[id]...)
}

// Incoming returns a copy of the IDs that link to the given document.
func (g *LinkGraph) Incoming(id string) []string {
	return append([]string(nil), g.in[id]...)
}

// Len returns the number of documents with at least one outgoing link.
func (g *LinkGraph) Len() int {
	return len(g.out)
}
