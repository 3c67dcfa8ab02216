package identify

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/dsep"
	"github.com/dd0wney/cluso-causal/pkg/graph"
	"github.com/dd0wney/cluso-causal/pkg/paths"
)

// FrontdoorResult reports whether a mediator set satisfies Pearl's frontdoor
// criterion for x and y
type FrontdoorResult struct {
	Satisfied bool
	Mediators []string
	Reason    string
}

// CheckFrontdoorCriterion searches for the canonical smallest mediator set M
// such that (1) M intercepts every directed path from x to y, (2) x has no
// unblocked backdoor path to any member of M, and (3) every backdoor path
// from a member of M to y is blocked by x.
func CheckFrontdoorCriterion(g *graph.CausalGraph, x, y string) FrontdoorResult {
	directed := paths.DirectedPaths(g, x, y)
	if len(directed) == 0 {
		return FrontdoorResult{Reason: fmt.Sprintf("no directed path from %s to %s to mediate", x, y)}
	}

	// Candidate mediators are the interior nodes of the directed x->y paths
	candidates := make(map[string]struct{})
	for _, p := range directed {
		for _, v := range p.Nodes[1 : len(p.Nodes)-1] {
			candidates[v] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		return FrontdoorResult{Reason: fmt.Sprintf("only the direct edge %s -> %s exists, nothing can mediate it", x, y)}
	}
	pool := sortedKeys(candidates)

	var mediators []string
	found := forEachSubset(pool, len(pool), func(m []string) bool {
		if len(m) == 0 {
			return false
		}
		if frontdoorHolds(g, x, y, m, directed) {
			mediators = slices.Clone(m)
			return true
		}
		return false
	})

	if !found {
		return FrontdoorResult{Reason: "no mediator set satisfies all three frontdoor conditions"}
	}
	return FrontdoorResult{Satisfied: true, Mediators: mediators}
}

func frontdoorHolds(g *graph.CausalGraph, x, y string, m []string, directed []paths.Path) bool {
	// (1) every directed x->y path passes through M
	mSet := toSet(m)
	for _, p := range directed {
		intercepted := false
		for _, v := range p.Nodes[1 : len(p.Nodes)-1] {
			if _, ok := mSet[v]; ok {
				intercepted = true
				break
			}
		}
		if !intercepted {
			return false
		}
	}

	// (2) no unblocked backdoor path from x into M
	for _, med := range m {
		for _, p := range dsep.BackdoorPaths(g, x, med) {
			if !dsep.IsPathBlocked(g, p, nil).Blocked {
				return false
			}
		}
	}

	// (3) x blocks every backdoor path from M to y
	for _, med := range m {
		for _, p := range dsep.BackdoorPaths(g, med, y) {
			if !dsep.IsPathBlocked(g, p, []string{x}).Blocked {
				return false
			}
		}
	}

	return true
}
