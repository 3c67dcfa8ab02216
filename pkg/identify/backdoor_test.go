package identify

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-causal/pkg/graph"
)

func buildGraph(nodeIDs []string, directed [][2]string) *graph.CausalGraph {
	nodes := make([]graph.Node, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		nodes = append(nodes, graph.Node{ID: id})
	}
	edges := make([]graph.Edge, 0, len(directed))
	for _, e := range directed {
		edges = append(edges, graph.Edge{From: e[0], To: e[1], Kind: graph.Directed})
	}
	return graph.New(nodes, edges)
}

// confoundedGraph is u -> x, u -> y, x -> y
func confoundedGraph() *graph.CausalGraph {
	return buildGraph([]string{"u", "x", "y"},
		[][2]string{{"u", "x"}, {"u", "y"}, {"x", "y"}})
}

func containsSet(sets [][]string, want ...string) bool {
	for _, s := range sets {
		if slices.Equal(s, want) {
			return true
		}
	}
	return false
}

func TestFindAllBackdoorSetsConfounded(t *testing.T) {
	sets := FindAllBackdoorSets(confoundedGraph(), "x", "y", 0)

	if !containsSet(sets, "u") {
		t.Errorf("expected {u} among valid sets, got %v", sets)
	}
	if containsSet(sets) {
		t.Errorf("empty set is not valid for a confounded pair: %v", sets)
	}
}

func TestFindAllBackdoorSetsUnconfounded(t *testing.T) {
	g := buildGraph([]string{"x", "y"}, [][2]string{{"x", "y"}})

	sets := FindAllBackdoorSets(g, "x", "y", 0)

	if len(sets) == 0 || len(sets[0]) != 0 {
		t.Errorf("unconfounded pair should list the empty set first, got %v", sets)
	}
}

func TestFindAllBackdoorSetsCanonicalOrder(t *testing.T) {
	// two independent confounders u and v; valid sets must come smallest
	// first, lexicographic within a size
	g := buildGraph([]string{"u", "v", "x", "y"},
		[][2]string{{"u", "x"}, {"u", "y"}, {"v", "x"}, {"v", "y"}, {"x", "y"}})

	sets := FindAllBackdoorSets(g, "x", "y", 0)

	if len(sets) == 0 {
		t.Fatal("expected at least one valid set")
	}
	if !slices.Equal(sets[0], []string{"u", "v"}) {
		t.Errorf("smallest valid set should be {u,v}, got %v", sets[0])
	}
	for i := 1; i < len(sets); i++ {
		if len(sets[i-1]) > len(sets[i]) {
			t.Errorf("sets out of size order: %v before %v", sets[i-1], sets[i])
		}
	}
}

func TestFindAllBackdoorSetsMaxSize(t *testing.T) {
	g := buildGraph([]string{"u", "v", "x", "y"},
		[][2]string{{"u", "x"}, {"u", "y"}, {"v", "x"}, {"v", "y"}, {"x", "y"}})

	sets := FindAllBackdoorSets(g, "x", "y", 1)

	for _, s := range sets {
		if len(s) > 1 {
			t.Errorf("maxSize 1 exceeded: %v", s)
		}
	}
	// both confounders are needed, so nothing of size <= 1 is valid
	if len(sets) != 0 {
		t.Errorf("no single-variable set should be valid, got %v", sets)
	}
}

func TestMinimalBackdoorSet(t *testing.T) {
	z, ok := MinimalBackdoorSet(confoundedGraph(), "x", "y")
	if !ok {
		t.Fatal("backdoor set should exist")
	}
	if !slices.Equal(z, []string{"u"}) {
		t.Errorf("minimal set = %v, want [u]", z)
	}
}

func TestMinimalBackdoorSetNone(t *testing.T) {
	// latent confounding x <-> y cannot be adjusted for
	g := graph.New(
		[]graph.Node{{ID: "x"}, {ID: "y"}},
		[]graph.Edge{
			{From: "x", To: "y", Kind: graph.Directed},
			{From: "x", To: "y", Kind: graph.Bidirected},
		},
	)

	if z, ok := MinimalBackdoorSet(g, "x", "y"); ok {
		t.Errorf("no valid set should exist, got %v", z)
	}
}

func TestBackdoorCandidatesExcludeDescendants(t *testing.T) {
	// m descends from x and must never appear in a candidate set
	g := buildGraph([]string{"u", "x", "m", "y"},
		[][2]string{{"u", "x"}, {"u", "y"}, {"x", "m"}, {"m", "y"}, {"x", "y"}})

	for _, s := range FindAllBackdoorSets(g, "x", "y", 0) {
		if slices.Contains(s, "m") {
			t.Errorf("descendant of x appeared in adjustment set %v", s)
		}
	}
}
