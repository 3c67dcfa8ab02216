package dsep

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/graph"
	"github.com/dd0wney/cluso-causal/pkg/paths"
)

// Query asks whether X and Y are d-separated given Z. The three sets are
// pairwise disjoint by convention; overlap is not rejected here.
type Query struct {
	X []string
	Y []string
	Z []string
}

// BlockedPath pairs a path with the reason it is blocked
type BlockedPath struct {
	Path   paths.Path
	Reason string
}

// Result reports a full d-separation decision. On separation BlockedPaths
// carries every path with its blocking reason; otherwise OpenPaths lists the
// unblocked paths that defeat separation.
type Result struct {
	Separated       bool
	ConditioningSet []string
	BlockedPaths    []BlockedPath
	OpenPaths       []paths.Path
	Explanation     string
}

// CheckDSeparation decides whether every path between X and Y is blocked by
// Z. Disconnected sets are trivially separated.
func CheckDSeparation(g *graph.CausalGraph, q Query) Result {
	idx := graph.NewIndex(g)
	zSet := toSet(q.Z)
	conditioning := slices.Clone(q.Z)
	slices.Sort(conditioning)

	allPaths := paths.FindAllPaths(g, q.X, q.Y, paths.DefaultOptions())
	if len(allPaths) == 0 {
		return Result{
			Separated:       true,
			ConditioningSet: conditioning,
			Explanation: fmt.Sprintf("no path connects {%s} and {%s}",
				strings.Join(q.X, ","), strings.Join(q.Y, ",")),
		}
	}

	result := Result{ConditioningSet: conditioning}
	for _, p := range allPaths {
		block := isPathBlocked(idx, p, zSet)
		if block.Blocked {
			result.BlockedPaths = append(result.BlockedPaths, BlockedPath{Path: p, Reason: block.Reason})
		} else {
			result.OpenPaths = append(result.OpenPaths, p)
		}
	}

	if len(result.OpenPaths) == 0 {
		result.Separated = true
		result.Explanation = fmt.Sprintf("all %d paths blocked given {%s}",
			len(allPaths), strings.Join(conditioning, ","))
	} else {
		result.Explanation = fmt.Sprintf("%d of %d paths remain open given {%s}, e.g. %s",
			len(result.OpenPaths), len(allPaths), strings.Join(conditioning, ","),
			strings.Join(result.OpenPaths[0].Nodes, " - "))
	}
	return result
}

// DSeparated is the boolean shortcut over CheckDSeparation
func DSeparated(g *graph.CausalGraph, x, y, z []string) bool {
	return CheckDSeparation(g, Query{X: x, Y: y, Z: z}).Separated
}
