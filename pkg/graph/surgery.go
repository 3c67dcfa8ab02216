package graph

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Mutilate implements the do-operator's graph surgery: it returns a copy of
// the graph with every edge carrying an arrowhead into an intervened variable
// removed. Directed edges into the variable (self-loops included) and
// bidirected edges touching it are cut; edges leaving the variable survive.
// The result's metadata records which variables were cut.
func Mutilate(g *CausalGraph, intervened []string) *CausalGraph {
	cut := make(map[string]struct{}, len(intervened))
	for _, v := range intervened {
		cut[v] = struct{}{}
	}

	out := g.clone()
	kept := out.Edges[:0]
	for _, e := range out.Edges {
		if _, ok := cut[e.To]; ok && e.Kind != Undirected {
			continue
		}
		if _, ok := cut[e.From]; ok && e.Kind == Bidirected {
			continue
		}
		kept = append(kept, e)
	}
	out.Edges = kept

	sorted := slices.Clone(intervened)
	slices.Sort(sorted)
	out.Metadata["mutilated"] = strings.Join(sorted, ",")
	return out
}

// CutOutgoing returns a copy of the graph with every directed edge leaving
// one of the given variables removed. This is the lower-bar surgery used by
// do-calculus rule 2 to treat a variable as passively observed.
func CutOutgoing(g *CausalGraph, vars []string) *CausalGraph {
	cut := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		cut[v] = struct{}{}
	}

	out := g.clone()
	kept := out.Edges[:0]
	for _, e := range out.Edges {
		if _, ok := cut[e.From]; ok && e.Kind == Directed {
			continue
		}
		kept = append(kept, e)
	}
	out.Edges = kept
	return out
}

// Marginalize eliminates node v: each parent of v is connected to each child
// of v with a directed edge (unless one already exists), then v and all edges
// touching it are removed.
func Marginalize(g *CausalGraph, v string) *CausalGraph {
	idx := NewIndex(g)
	parents := idx.Parents(v)
	children := idx.Children(v)

	out := g.clone()

	nodes := out.Nodes[:0]
	for _, n := range out.Nodes {
		if n.ID != v {
			nodes = append(nodes, n)
		}
	}
	out.Nodes = nodes

	existing := make(map[[2]string]struct{})
	kept := out.Edges[:0]
	for _, e := range out.Edges {
		if e.From == v || e.To == v {
			continue
		}
		if e.Kind == Directed {
			existing[[2]string{e.From, e.To}] = struct{}{}
		}
		kept = append(kept, e)
	}
	out.Edges = kept

	for _, p := range parents {
		for _, c := range children {
			if p == v || c == v || p == c {
				continue
			}
			if _, ok := existing[[2]string{p, c}]; ok {
				continue
			}
			existing[[2]string{p, c}] = struct{}{}
			out.Edges = append(out.Edges, Edge{From: p, To: c, Kind: Directed})
		}
	}

	return out
}
