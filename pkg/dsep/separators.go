package dsep

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/graph"
	"github.com/dd0wney/cluso-causal/pkg/paths"
)

// ComputeMarkovBlanket returns parents(v), children(v), and the other parents
// of each child of v, minus v itself, sorted by ID
func ComputeMarkovBlanket(g *graph.CausalGraph, v string) []string {
	idx := graph.NewIndex(g)
	blanket := make(map[string]struct{})

	for _, p := range idx.Parents(v) {
		blanket[p] = struct{}{}
	}
	for _, c := range idx.Children(v) {
		blanket[c] = struct{}{}
		for _, spouse := range idx.Parents(c) {
			blanket[spouse] = struct{}{}
		}
	}
	delete(blanket, v)

	out := maps.Keys(blanket)
	slices.Sort(out)
	return out
}

// Independence records one conditional independence implied by the graph
type Independence struct {
	X     string
	Y     string
	Given []string
}

// ImpliedIndependencies scans every non-adjacent node pair and records each
// conditioning subset up to maxSetSize that d-separates the pair
func ImpliedIndependencies(g *graph.CausalGraph, maxSetSize int) []Independence {
	idx := graph.NewIndex(g)
	ids := g.NodeIDs()
	slices.Sort(ids)

	var found []Independence
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			x, y := ids[i], ids[j]
			if idx.Adjacent(x, y) {
				continue
			}

			candidates := withoutPair(ids, x, y)
			forEachSubset(candidates, maxSetSize, func(z []string) bool {
				if DSeparated(g, []string{x}, []string{y}, z) {
					found = append(found, Independence{X: x, Y: y, Given: slices.Clone(z)})
				}
				return false // record all, keep scanning
			})
		}
	}
	return found
}

// FindMinimalSeparator searches for the smallest Z with X d-separated from Y
// given Z. Candidates are seeded from the ancestors of X and Y, which always
// contain a separator when one exists. The boolean is false when no set can
// separate, e.g. when X and Y share a direct edge.
func FindMinimalSeparator(g *graph.CausalGraph, x, y []string) ([]string, bool) {
	excluded := toSet(x)
	for _, v := range y {
		excluded[v] = struct{}{}
	}

	candidates := make(map[string]struct{})
	for _, a := range graph.AncestorsOfSet(g, x) {
		candidates[a] = struct{}{}
	}
	for _, a := range graph.AncestorsOfSet(g, y) {
		candidates[a] = struct{}{}
	}
	for v := range excluded {
		delete(candidates, v)
	}

	pool := maps.Keys(candidates)
	slices.Sort(pool)

	var separator []string
	found := forEachSubset(pool, len(pool), func(z []string) bool {
		if DSeparated(g, x, y, z) {
			separator = slices.Clone(z)
			return true
		}
		return false
	})
	return separator, found
}

// BackdoorPaths returns every path from x to y whose first edge carries an
// arrowhead into x
func BackdoorPaths(g *graph.CausalGraph, x, y string) []paths.Path {
	idx := graph.NewIndex(g)
	var backdoor []paths.Path
	for _, p := range paths.FindAllPaths(g, []string{x}, []string{y}, paths.DefaultOptions()) {
		if len(p.Nodes) < 2 {
			continue
		}
		if idx.ArrowheadAt(p.Nodes[1], p.Nodes[0]) {
			backdoor = append(backdoor, p)
		}
	}
	return backdoor
}

// IsValidBackdoorAdjustment checks Pearl's backdoor criterion: no member of z
// may descend from x, and z must block every backdoor path from x to y
func IsValidBackdoorAdjustment(g *graph.CausalGraph, x, y string, z []string) bool {
	idx := graph.NewIndex(g)

	descendants := toSet(idx.DescendantsOf(x))
	for _, v := range z {
		if _, ok := descendants[v]; ok {
			return false
		}
	}

	zSet := toSet(z)
	for _, p := range BackdoorPaths(g, x, y) {
		if !isPathBlocked(idx, p, zSet).Blocked {
			return false
		}
	}
	return true
}

// forEachSubset enumerates subsets of the sorted pool by increasing size,
// lexicographic within a size, calling fn until it returns true. The empty
// subset is tried first. Reports whether fn accepted a subset.
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

func withoutPair(ids []string, x, y string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != x && id != y {
			out = append(out, id)
		}
	}
	return out
}
