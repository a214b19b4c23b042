package graph

import "sort"

// CategorizedLinks holds the three pairwise-disjoint relation sets of
// one target document. A document appears in at most one set; outgoing
// wins over backlink, backlink wins over two-hop.
type CategorizedLinks struct {
	Outgoing  map[string]struct{}
	Backlinks map[string]struct{}
	TwoHop    map[string]struct{}
}

func emptyCategorized() CategorizedLinks {
	return CategorizedLinks{
		Outgoing:  map[string]struct{}{},
		Backlinks: map[string]struct{}{},
		TwoHop:    map[string]struct{}{},
	}
}

// Empty reports whether all three sets are empty.
func (c CategorizedLinks) Empty() bool {
	return len(c.Outgoing) == 0 && len(c.Backlinks) == 0 && len(c.TwoHop) == 0
}

// Backlinks returns the sorted IDs of documents whose outgoing links
// contain target. The result contains no duplicates and never contains
// target itself. An empty target yields an empty slice.
func Backlinks(g *LinkGraph, target string) []string {
	if target == "" {
		return nil
	}
	return g.Incoming(target)
}

// TwoHop returns the sorted IDs reachable by following one backlink's
// outgoing edges, excluding the target, the backlink itself, and any
// direct backlink of the target. The exclusion keeps backlink and
// two-hop results disjoint: a document is categorized as exactly one of
// the two, with backlink taking precedence.
func TwoHop(g *LinkGraph, target string) []string {
	if target == "" {
		return nil
	}
	backlinks := make(map[string]struct{})
	for _, b := range g.in[target] {
		backlinks[b] = struct{}{}
	}
	hops := make(map[string]struct{})
	for _, b := range g.in[target] {
		for _, dst := range g.out[b] {
			if dst == target || dst == b {
				continue
			}
			if _, isBacklink := backlinks[dst]; isBacklink {
				continue
			}
			hops[dst] = struct{}{}
		}
	}
	return sortedKeys(hops)
}

// Categorized computes the disjoint outgoing, backlink, and two-hop
// sets for target in one pass. Two-hop covers three discovery patterns
// deduplicated into one set: outgoing->outgoing, backlink->outgoing,
// and outgoing->backlink, each excluding anything already present in
// the outgoing or backlink sets. An empty target yields empty sets;
// callers treat every document as unrelated in that case.
func Categorized(g *LinkGraph, target string) CategorizedLinks {
	if target == "" {
		return emptyCategorized()
	}

	c := emptyCategorized()
	for _, dst := range g.out[target] {
		c.Outgoing[dst] = struct{}{}
	}
	for _, src := range g.in[target] {
		if _, ok := c.Outgoing[src]; ok {
			continue
		}
		c.Backlinks[src] = struct{}{}
	}

	addHop := func(id, via string) {
		if id == target || id == via {
			return
		}
		if _, ok := c.Outgoing[id]; ok {
			return
		}
		if _, ok := c.Backlinks[id]; ok {
			return
		}
		c.TwoHop[id] = struct{}{}
	}

	for dst := range c.Outgoing {
		for _, next := range g.out[dst] {
			addHop(next, dst) // outgoing -> outgoing
		}
		for _, src := range g.in[dst] {
			addHop(src, dst) // outgoing -> backlink
		}
	}
	for src := range c.Backlinks {
		for _, next := range g.out[src] {
			addHop(next, src) // backlink -> outgoing
		}
	}
	return c
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
