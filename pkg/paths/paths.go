// Package paths enumerates simple paths through a causal graph in the
// undirected sense, which is the traversal d-separation needs: a path may
// walk an edge against its arrow.
package paths

import (
	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/graph"
)

// Path is an ordered walk through distinct nodes. Length counts edges.
type Path struct {
	Nodes  []string
	Length int
}

// Options configures path enumeration
type Options struct {
	// MaxLength caps the edge count of reported paths; 0 means unbounded.
	// Graphs in this domain are small (tens of nodes), so unbounded search
	// is the default despite the worst-case exponential path count.
	MaxLength int
}

// DefaultOptions returns unbounded enumeration
func DefaultOptions() Options {
	return Options{MaxLength: 0}
}

// FindAllPaths enumerates every simple path that connects a node in sources
// to a node in targets, walking edges in either direction. A path is reported
// each time the walk stands on a target, then extended further; paths through
// intermediate targets are therefore reported at every target they touch.
// Disconnected sets yield an empty list.
func FindAllPaths(g *graph.CausalGraph, sources, targets []string, opts Options) []Path {
	idx := graph.NewIndex(g)
	targetSet := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	var found []Path

	starts := slices.Clone(sources)
	slices.Sort(starts)
	for _, s := range starts {
		if !g.HasNode(s) {
			continue
		}
		visited := map[string]struct{}{s: {}}
		walk(idx, s, []string{s}, visited, targetSet, opts.MaxLength, &found)
	}

	return found
}

func walk(
	idx *graph.Index,
	current string,
	trail []string,
	visited map[string]struct{},
	targets map[string]struct{},
	maxLen int,
	found *[]Path,
) {
	if maxLen > 0 && len(trail)-1 >= maxLen {
		return
	}

	for _, next := range idx.Neighbors(current) {
		if _, seen := visited[next]; seen {
			continue
		}

		trail = append(trail, next)
		visited[next] = struct{}{}

		if _, hit := targets[next]; hit {
			*found = append(*found, Path{
				Nodes:  slices.Clone(trail),
				Length: len(trail) - 1,
			})
		}
		walk(idx, next, trail, visited, targets, maxLen, found)

		delete(visited, next)
		trail = trail[:len(trail)-1]
	}
}

// Connected reports whether any path at all links sources to targets
func Connected(g *graph.CausalGraph, sources, targets []string) bool {
	limited := FindAllPaths(g, sources, targets, DefaultOptions())
	return len(limited) > 0
}

// DirectedPaths enumerates simple paths from x to y that only walk directed
// edges with the arrow, i.e. causal routes from x to y.
func DirectedPaths(g *graph.CausalGraph, x, y string) []Path {
	idx := graph.NewIndex(g)
	var found []Path
	if !g.HasNode(x) || !g.HasNode(y) {
		return found
	}
	visited := map[string]struct{}{x: {}}
	walkDirected(idx, x, y, []string{x}, visited, &found)
	return found
}

func walkDirected(
	idx *graph.Index,
	current, goal string,
	trail []string,
	visited map[string]struct{},
	found *[]Path,
) {
	for _, next := range idx.Children(current) {
		if _, seen := visited[next]; seen {
			continue
		}

		trail = append(trail, next)
		visited[next] = struct{}{}

		if next == goal {
			*found = append(*found, Path{
				Nodes:  slices.Clone(trail),
				Length: len(trail) - 1,
			})
		} else {
			walkDirected(idx, next, goal, trail, visited, found)
		}

		delete(visited, next)
		trail = trail[:len(trail)-1]
	}
}
