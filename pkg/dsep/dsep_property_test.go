package dsep

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-causal/pkg/graph"
)

const propertyPoolSize = 5

func decodeGraph(edgeCodes []int) *graph.CausalGraph {
	nodes := make([]graph.Node, 0, propertyPoolSize)
	for i := 0; i < propertyPoolSize; i++ {
		nodes = append(nodes, graph.Node{ID: fmt.Sprintf("n%d", i)})
	}
	edges := make([]graph.Edge, 0, len(edgeCodes))
	for _, code := range edgeCodes {
		from := code / propertyPoolSize
		to := code % propertyPoolSize
		if from == to {
			continue // keep the random graphs loop-free for d-separation
		}
		edges = append(edges, graph.Edge{
			From: fmt.Sprintf("n%d", from),
			To:   fmt.Sprintf("n%d", to),
			Kind: graph.Directed,
		})
	}
	return graph.New(nodes, edges)
}

// TestDSeparationInvariants verifies d-separation invariants over randomly
// generated directed graphs
func TestDSeparationInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	edgeGen := gen.SliceOfN(8, gen.IntRange(0, propertyPoolSize*propertyPoolSize-1))
	nodeGen := gen.IntRange(0, propertyPoolSize-1)

	properties.Property("d-separation is symmetric in X and Y", prop.ForAll(
		func(edgeCodes []int, a, b int) bool {
			if a == b {
				return true
			}
			g := decodeGraph(edgeCodes)
			x := fmt.Sprintf("n%d", a)
			y := fmt.Sprintf("n%d", b)
			return DSeparated(g, []string{x}, []string{y}, nil) ==
				DSeparated(g, []string{y}, []string{x}, nil)
		},
		edgeGen, nodeGen, nodeGen,
	))

	properties.Property("adjustment sets with a descendant of X are never valid", prop.ForAll(
		func(edgeCodes []int, a, b int) bool {
			if a == b {
				return true
			}
			g := decodeGraph(edgeCodes)
			x := fmt.Sprintf("n%d", a)
			y := fmt.Sprintf("n%d", b)

			for _, d := range graph.Descendants(g, x) {
				if d == y {
					continue
				}
				if IsValidBackdoorAdjustment(g, x, y, []string{d}) {
					return false
				}
			}
			return true
		},
		edgeGen, nodeGen, nodeGen,
	))

	properties.Property("adjacent nodes are never separated", prop.ForAll(
		func(edgeCodes []int) bool {
			g := decodeGraph(edgeCodes)
			idx := graph.NewIndex(g)
			for i := 0; i < propertyPoolSize; i++ {
				for j := i + 1; j < propertyPoolSize; j++ {
					x := fmt.Sprintf("n%d", i)
					y := fmt.Sprintf("n%d", j)
					if idx.Adjacent(x, y) && DSeparated(g, []string{x}, []string{y}, nil) {
						return false
					}
				}
			}
			return true
		},
		edgeGen,
	))

	properties.TestingRun(t)
}
