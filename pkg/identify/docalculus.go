package identify

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/dsep"
	"github.com/dd0wney/cluso-causal/pkg/graph"
)

// RuleResult reports whether a do-calculus rule applies and, if so, the
// rewritten expression. Overlapping input sets make a rule inapplicable
// rather than raising an error.
type RuleResult struct {
	Applicable bool
	Result     string
}

// Rule1 (insert/delete observation): if Y is d-separated from Z given X and W
// in the graph mutilated for do(X), then P(y|do(x),z,w) = P(y|do(x),w).
func Rule1(g *graph.CausalGraph, y, x, z, w []string) RuleResult {
	if !pairwiseDisjoint(y, x, z, w) {
		return RuleResult{}
	}
	mutilated := graph.Mutilate(g, x)
	if !dsep.DSeparated(mutilated, y, z, union(x, w)) {
		return RuleResult{}
	}
	return RuleResult{Applicable: true, Result: exprP(y, x, w)}
}

// Rule2 (action/observation exchange): if Y is d-separated from Z given X and
// W in the graph with incoming edges to X and outgoing edges from Z removed,
// then P(y|do(x),do(z),w) = P(y|do(x),z,w).
func Rule2(g *graph.CausalGraph, y, x, z, w []string) RuleResult {
	if !pairwiseDisjoint(y, x, z, w) {
		return RuleResult{}
	}
	surgered := graph.CutOutgoing(graph.Mutilate(g, x), z)
	if !dsep.DSeparated(surgered, y, z, union(x, w)) {
		return RuleResult{}
	}
	return RuleResult{Applicable: true, Result: exprP(y, x, union(z, w))}
}

// Rule3 (insert/delete action): if Y is d-separated from Z given X and W in
// the graph mutilated for do(X) and do(Z(W)), where Z(W) drops the Z-nodes
// that are ancestors of W in the do(X) graph, then
// P(y|do(x),do(z),w) = P(y|do(x),w).
func Rule3(g *graph.CausalGraph, y, x, z, w []string) RuleResult {
	if !pairwiseDisjoint(y, x, z, w) {
		return RuleResult{}
	}
	doX := graph.Mutilate(g, x)

	ancestorsOfW := toSet(graph.AncestorsOfSet(doX, w))
	zw := make([]string, 0, len(z))
	for _, v := range z {
		if _, isAncestor := ancestorsOfW[v]; !isAncestor {
			zw = append(zw, v)
		}
	}

	surgered := graph.Mutilate(doX, zw)
	if !dsep.DSeparated(surgered, y, z, union(x, w)) {
		return RuleResult{}
	}
	return RuleResult{Applicable: true, Result: exprP(y, x, w)}
}

// RuleApplication records which fallback rewrite identified the query
type RuleApplication struct {
	Rule   int
	Result string
}

// ApplyRules is the fallback sweep used when the named strategies fail: it
// tries to rewrite P(y|do(x)) directly, first exchanging the action for an
// observation (rule 2), then deleting it outright (rule 3).
func ApplyRules(g *graph.CausalGraph, x, y string) (RuleApplication, bool) {
	ySet, zSet := []string{y}, []string{x}

	if r := Rule2(g, ySet, nil, zSet, nil); r.Applicable {
		return RuleApplication{Rule: 2, Result: r.Result}, true
	}
	if r := Rule3(g, ySet, nil, zSet, nil); r.Applicable {
		return RuleApplication{Rule: 3, Result: r.Result}, true
	}
	return RuleApplication{}, false
}

// exprP renders P(y | do(x1),...,obs...) with sorted member lists
func exprP(y, do, obs []string) string {
	parts := make([]string, 0, len(do)+len(obs))
	for _, v := range sortedClone(do) {
		parts = append(parts, fmt.Sprintf("do(%s)", v))
	}
	parts = append(parts, sortedClone(obs)...)

	outcome := strings.Join(sortedClone(y), ",")
	if len(parts) == 0 {
		return fmt.Sprintf("P(%s)", outcome)
	}
	return fmt.Sprintf("P(%s|%s)", outcome, strings.Join(parts, ","))
}

func sortedClone(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}

func union(a, b []string) []string {
	set := toSet(a)
	for _, v := range b {
		set[v] = struct{}{}
	}
	return sortedKeys(set)
}

func pairwiseDisjoint(sets ...[]string) bool {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for _, v := range set {
			if _, dup := seen[v]; dup {
				return false
			}
			seen[v] = struct{}{}
		}
	}
	return true
}
