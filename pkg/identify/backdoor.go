// Package identify answers the identifiability question: can the effect of
// do(X) on Y be computed from observational data on this graph, and with
// which formula. It layers three named strategies (backdoor, frontdoor,
// instrumental variable) over the dsep machinery, with the general
// do-calculus rules as a fallback.
package identify

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/dsep"
	"github.com/dd0wney/cluso-causal/pkg/graph"
)

// FindAllBackdoorSets returns every adjustment set up to maxSize that
// satisfies the backdoor criterion for x and y, in canonical order:
// increasing size, lexicographic within a size. maxSize <= 0 means no cap.
// The empty set is tried first, so an unconfounded pair yields [][]string{{}}
// as its first (and smallest) entry.
func FindAllBackdoorSets(g *graph.CausalGraph, x, y string, maxSize int) [][]string {
	pool := backdoorCandidates(g, x, y)
	if maxSize <= 0 || maxSize > len(pool) {
		maxSize = len(pool)
	}

	var valid [][]string
	forEachSubset(pool, maxSize, func(z []string) bool {
		if dsep.IsValidBackdoorAdjustment(g, x, y, z) {
			valid = append(valid, slices.Clone(z))
		}
		return false
	})
	return valid
}

// MinimalBackdoorSet returns the canonical smallest valid adjustment set.
// The boolean is false when no set up to the full candidate pool works.
func MinimalBackdoorSet(g *graph.CausalGraph, x, y string) ([]string, bool) {
	pool := backdoorCandidates(g, x, y)
	var minimal []string
	found := forEachSubset(pool, len(pool), func(z []string) bool {
		if dsep.IsValidBackdoorAdjustment(g, x, y, z) {
			minimal = slices.Clone(z)
			return true
		}
		return false
	})
	return minimal, found
}

// backdoorCandidates is every node except x, y, and the descendants of x,
// which the criterion excludes outright
func backdoorCandidates(g *graph.CausalGraph, x, y string) []string {
	excluded := map[string]struct{}{x: {}, y: {}}
	for _, d := range graph.Descendants(g, x) {
		excluded[d] = struct{}{}
	}

	pool := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, skip := excluded[n.ID]; !skip {
			pool = append(pool, n.ID)
		}
	}
	slices.Sort(pool)
	return pool
}

// forEachSubset enumerates subsets of the sorted pool by increasing size,
// lexicographic within a size, empty set first, until fn returns true
func forEachSubset(pool []string, maxSize int, fn func([]string) bool) bool {
	if maxSize > len(pool) {
		maxSize = len(pool)
	}
	subset := make([]string, 0, maxSize)

	var recurse func(start, size int) bool
	recurse = func(start, size int) bool {
		if len(subset) == size {
			return fn(subset)
		}
		for i := start; i < len(pool); i++ {
			subset = append(subset, pool[i])
			if recurse(i+1, size) {
				return true
			}
			subset = subset[:len(subset)-1]
		}
		return false
	}

	for size := 0; size <= maxSize; size++ {
		if recurse(0, size) {
			return true
		}
	}
	return false
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := maps.Keys(set)
	slices.Sort(out)
	return out
}
