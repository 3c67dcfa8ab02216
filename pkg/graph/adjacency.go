package graph

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Index is an adjacency view over a graph, built once per operation for O(1)
// neighbor lookup. It only indexes edges whose endpoints both exist in the
// graph; dangling edges are skipped rather than rejected.
type Index struct {
	parents   map[string]map[string]struct{} // child -> parents (directed edges only)
	children  map[string]map[string]struct{} // parent -> children (directed edges only)
	neighbors map[string]map[string]struct{} // undirected-sense adjacency, all edge kinds
	arrowInto map[[2]string]struct{}         // (u,v) present iff some edge between u and v has an arrowhead at v
}

// NewIndex builds an adjacency index for the graph
func NewIndex(g *CausalGraph) *Index {
	known := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.ID] = struct{}{}
	}

	idx := &Index{
		parents:   make(map[string]map[string]struct{}),
		children:  make(map[string]map[string]struct{}),
		neighbors: make(map[string]map[string]struct{}),
		arrowInto: make(map[[2]string]struct{}),
	}

	for _, e := range g.Edges {
		if _, ok := known[e.From]; !ok {
			continue
		}
		if _, ok := known[e.To]; !ok {
			continue
		}

		addMember(idx.neighbors, e.From, e.To)
		addMember(idx.neighbors, e.To, e.From)

		switch e.Kind {
		case Directed:
			addMember(idx.parents, e.To, e.From)
			addMember(idx.children, e.From, e.To)
			idx.arrowInto[[2]string{e.From, e.To}] = struct{}{}
		case Bidirected:
			// Arrowheads at both ends, but no parent/child relation:
			// the latent common cause is not a graph node.
			idx.arrowInto[[2]string{e.From, e.To}] = struct{}{}
			idx.arrowInto[[2]string{e.To, e.From}] = struct{}{}
		case Undirected:
			// Connects without orientation
		}
	}

	return idx
}

func addMember(m map[string]map[string]struct{}, key, member string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]struct{})
		m[key] = set
	}
	set[member] = struct{}{}
}

// Parents returns the direct causes of v, sorted by ID
func (idx *Index) Parents(v string) []string {
	return sortedMembers(idx.parents[v])
}

// Children returns the direct effects of v, sorted by ID
func (idx *Index) Children(v string) []string {
	return sortedMembers(idx.children[v])
}

// Neighbors returns every node adjacent to v in the undirected sense
func (idx *Index) Neighbors(v string) []string {
	return sortedMembers(idx.neighbors[v])
}

// Adjacent reports whether any edge connects u and v
func (idx *Index) Adjacent(u, v string) bool {
	_, ok := idx.neighbors[u][v]
	return ok
}

// ArrowheadAt reports whether some edge between u and v has an arrowhead at
// v. Directed u->v edges and bidirected edges qualify; undirected edges never
// do.
func (idx *Index) ArrowheadAt(u, v string) bool {
	_, ok := idx.arrowInto[[2]string{u, v}]
	return ok
}

func sortedMembers(set map[string]struct{}) []string {
	out := maps.Keys(set)
	slices.Sort(out)
	return out
}
