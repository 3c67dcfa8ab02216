package identify

import (
	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/dsep"
	"github.com/dd0wney/cluso-causal/pkg/graph"
	"github.com/dd0wney/cluso-causal/pkg/paths"
)

// FindInstrumentalVariable searches for a variable z that (1) causes x
// through a directed path, (2) is not a descendant of x, and (3) reaches y
// only through x: every path from z to y that bypasses x must be blocked
// unconditionally (the exclusion restriction). Candidates are scanned in ID
// order and the first instrument wins; the boolean is false when none exists.
func FindInstrumentalVariable(g *graph.CausalGraph, x, y string) (string, bool) {
	idx := graph.NewIndex(g)
	descendantsOfX := toSet(idx.DescendantsOf(x))

	candidates := g.NodeIDs()
	slices.Sort(candidates)

	for _, z := range candidates {
		if z == x || z == y {
			continue
		}
		if _, isDesc := descendantsOfX[z]; isDesc {
			continue
		}
		if len(paths.DirectedPaths(g, z, x)) == 0 {
			continue // relevance: z must move x
		}
		if exclusionRestrictionHolds(g, x, y, z) {
			return z, true
		}
	}
	return "", false
}

// exclusionRestrictionHolds verifies that every z-to-y path avoiding x is
// blocked given the empty set: z may influence y only through x
func exclusionRestrictionHolds(g *graph.CausalGraph, x, y, z string) bool {
	for _, p := range paths.FindAllPaths(g, []string{z}, []string{y}, paths.DefaultOptions()) {
		if slices.Contains(p.Nodes, x) {
			continue
		}
		if !dsep.IsPathBlocked(g, p, nil).Blocked {
			return false
		}
	}
	return true
}
