// Package dsep implements the d-separation criterion and the derived-set
// machinery built on it: Markov blankets, implied independencies, minimal
// separators, and backdoor admissibility.
package dsep

import (
	"fmt"

	"github.com/dd0wney/cluso-causal/pkg/graph"
	"github.com/dd0wney/cluso-causal/pkg/paths"
)

// BlockResult reports whether a conditioning set blocks one path, with a
// diagnostic naming the node that decided it
type BlockResult struct {
	Blocked bool
	Reason  string
}

// IsCollider reports whether the interior node path[i] is a collider on the
// path: both path-incident edges must carry an arrowhead into it.
func IsCollider(idx *graph.Index, path paths.Path, i int) bool {
	if i <= 0 || i >= len(path.Nodes)-1 {
		return false
	}
	prev, mid, next := path.Nodes[i-1], path.Nodes[i], path.Nodes[i+1]
	return idx.ArrowheadAt(prev, mid) && idx.ArrowheadAt(next, mid)
}

// IsPathBlocked decides whether the conditioning set z blocks the path.
// A path is blocked iff some interior non-collider lies in z, or some
// interior collider is neither in z nor has a descendant in z. A path with
// no interior node (a direct edge) is never blocked.
func IsPathBlocked(g *graph.CausalGraph, path paths.Path, z []string) BlockResult {
	idx := graph.NewIndex(g)
	return isPathBlocked(idx, path, toSet(z))
}

func isPathBlocked(idx *graph.Index, path paths.Path, z map[string]struct{}) BlockResult {
	for i := 1; i < len(path.Nodes)-1; i++ {
		mid := path.Nodes[i]
		_, conditioned := z[mid]

		if IsCollider(idx, path, i) {
			if conditioned {
				continue // conditioning on a collider opens it
			}
			if colliderOpenedByDescendant(idx, mid, z) {
				continue
			}
			return BlockResult{
				Blocked: true,
				Reason:  fmt.Sprintf("collider %s is not in the conditioning set and has no descendant in it", mid),
			}
		}

		if conditioned {
			return BlockResult{
				Blocked: true,
				Reason:  fmt.Sprintf("non-collider %s is in the conditioning set", mid),
			}
		}
	}

	return BlockResult{Blocked: false, Reason: "no blocking node on path"}
}

// colliderOpenedByDescendant reports whether conditioning reaches the
// collider through one of its descendants
func colliderOpenedByDescendant(idx *graph.Index, collider string, z map[string]struct{}) bool {
	for _, d := range idx.DescendantsOf(collider) {
		if _, ok := z[d]; ok {
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
