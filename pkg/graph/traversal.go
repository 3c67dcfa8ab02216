package graph

// Parents returns the direct causes of v, sorted by ID
func Parents(g *CausalGraph, v string) []string {
	return NewIndex(g).Parents(v)
}

// Children returns the direct effects of v, sorted by ID
func Children(g *CausalGraph, v string) []string {
	return NewIndex(g).Children(v)
}

// Ancestors returns the transitive closure of Parents, excluding v itself.
// A self-loop on v never places v in its own ancestor set.
func Ancestors(g *CausalGraph, v string) []string {
	return closure(NewIndex(g), v, (*Index).Parents)
}

// Descendants returns the transitive closure of Children, excluding v itself
func Descendants(g *CausalGraph, v string) []string {
	return closure(NewIndex(g), v, (*Index).Children)
}

// AncestorsOfSet returns the union of Ancestors over the set, minus the set
// itself
func AncestorsOfSet(g *CausalGraph, vs []string) []string {
	idx := NewIndex(g)
	in := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		in[v] = struct{}{}
	}
	union := make(map[string]struct{})
	for _, v := range vs {
		for _, a := range idx.AncestorsOf(v) {
			if _, isInput := in[a]; !isInput {
				union[a] = struct{}{}
			}
		}
	}
	return sortedMembers(union)
}

// closure runs BFS over the step function from v, excluding v from the result
func closure(idx *Index, v string, step func(*Index, string) []string) []string {
	visited := map[string]struct{}{v: {}}
	frontier := []string{v}
	result := make(map[string]struct{})

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for _, next := range step(idx, current) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			result[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}

	delete(result, v)
	return sortedMembers(result)
}

// AncestorsOf is the index-reusing form of Ancestors, for callers that query
// many nodes against one graph
func (idx *Index) AncestorsOf(v string) []string {
	return closure(idx, v, (*Index).Parents)
}

// DescendantsOf is the index-reusing form of Descendants
func (idx *Index) DescendantsOf(v string) []string {
	return closure(idx, v, (*Index).Children)
}

// IsDescendant reports whether d is a descendant of v
func IsDescendant(g *CausalGraph, v, d string) bool {
	for _, x := range Descendants(g, v) {
		if x == d {
			return true
		}
	}
	return false
}
