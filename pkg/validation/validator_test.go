package validation

import (
	"strings"
	"testing"

	"github.com/dd0wney/cluso-causal/pkg/graph"
)

func validGraph() *graph.CausalGraph {
	return graph.New(
		[]graph.Node{{ID: "x"}, {ID: "y"}, {ID: "u"}},
		[]graph.Edge{
			{From: "u", To: "x", Kind: graph.Directed},
			{From: "u", To: "y", Kind: graph.Directed},
			{From: "x", To: "y", Kind: graph.Directed},
		},
	)
}

func TestValidateGraphAccepts(t *testing.T) {
	if err := ValidateGraph(validGraph()); err != nil {
		t.Errorf("valid graph rejected: %v", err)
	}
}

func TestValidateGraphNil(t *testing.T) {
	if err := ValidateGraph(nil); err == nil {
		t.Error("nil graph should be rejected")
	}
}

func TestValidateGraphEmptyNodes(t *testing.T) {
	g := &graph.CausalGraph{}
	if err := ValidateGraph(g); err == nil {
		t.Error("graph without nodes should be rejected")
	}
}

func TestValidateGraphDuplicateID(t *testing.T) {
	g := graph.New([]graph.Node{{ID: "x"}, {ID: "x"}}, nil)

	err := ValidateGraph(g)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate-id error, got %v", err)
	}
}

func TestValidateGraphBadID(t *testing.T) {
	tests := []string{"", "has space", "1leading", "semi;colon"}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			g := graph.New([]graph.Node{{ID: id}}, nil)
			if err := ValidateGraph(g); err == nil {
				t.Errorf("id %q should be rejected", id)
			}
		})
	}
}

func TestValidateGraphDanglingEdge(t *testing.T) {
	g := graph.New(
		[]graph.Node{{ID: "x"}},
		[]graph.Edge{{From: "x", To: "ghost", Kind: graph.Directed}},
	)

	err := ValidateGraph(g)
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("expected dangling-edge error naming the id, got %v", err)
	}
}

func TestValidateQueryAccepts(t *testing.T) {
	req := &QueryRequest{Interventions: []string{"x"}, Outcomes: []string{"y"}, Conditioning: []string{"u"}}
	if err := ValidateQuery(validGraph(), req); err != nil {
		t.Errorf("valid query rejected: %v", err)
	}
}

func TestValidateQueryMissingVariable(t *testing.T) {
	req := &QueryRequest{Interventions: []string{"x"}, Outcomes: []string{"ghost"}}

	err := ValidateQuery(validGraph(), req)
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("expected missing-variable error, got %v", err)
	}
}

func TestValidateQueryOverlap(t *testing.T) {
	req := &QueryRequest{Interventions: []string{"x"}, Outcomes: []string{"x"}}

	if err := ValidateQuery(validGraph(), req); err == nil {
		t.Error("overlapping intervention/outcome sets should be rejected")
	}
}

func TestValidateQueryEmptySets(t *testing.T) {
	if err := ValidateQuery(validGraph(), &QueryRequest{Outcomes: []string{"y"}}); err == nil {
		t.Error("missing interventions should be rejected")
	}
	if err := ValidateQuery(validGraph(), nil); err == nil {
		t.Error("nil request should be rejected")
	}
}
