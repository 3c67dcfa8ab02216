package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// EdgeKind represents the orientation of an edge
type EdgeKind uint8

const (
	// Directed is a standard causal edge From -> To
	Directed EdgeKind = iota
	// Bidirected marks latent confounding: From <-> To stands for a hidden
	// common cause with an arrowhead at both endpoints
	Bidirected
	// Undirected carries no orientation; it connects for path purposes but
	// never contributes an arrowhead
	Undirected
)

// String returns the string representation of an edge kind
func (k EdgeKind) String() string {
	switch k {
	case Directed:
		return "directed"
	case Bidirected:
		return "bidirected"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// ParseEdgeKind converts a string to an EdgeKind
func ParseEdgeKind(s string) (EdgeKind, error) {
	switch s {
	case "directed", "", "->":
		return Directed, nil
	case "bidirected", "<->":
		return Bidirected, nil
	case "undirected", "--":
		return Undirected, nil
	default:
		return Directed, fmt.Errorf("unknown edge kind %q", s)
	}
}

// MarshalYAML encodes the kind as its string form
func (k EdgeKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes the kind from its string form
func (k *EdgeKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseEdgeKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Node is a variable in a causal graph. IDs must be unique within a graph;
// uniqueness is the caller's responsibility.
type Node struct {
	ID       string            `yaml:"id" json:"id"`
	Name     string            `yaml:"name,omitempty" json:"name,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Edge connects two nodes. Endpoints that reference unknown node IDs are
// tolerated and simply never traversed.
type Edge struct {
	From string   `yaml:"from" json:"from"`
	To   string   `yaml:"to" json:"to"`
	Kind EdgeKind `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// CausalGraph is an edge-list causal model. The engine never mutates a graph
// it is handed; every transformation returns a fresh value.
type CausalGraph struct {
	ID       string            `yaml:"id,omitempty" json:"id,omitempty"`
	Nodes    []Node            `yaml:"nodes" json:"nodes"`
	Edges    []Edge            `yaml:"edges" json:"edges"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// New creates a graph with a generated ID
func New(nodes []Node, edges []Edge) *CausalGraph {
	return &CausalGraph{
		ID:    uuid.NewString(),
		Nodes: nodes,
		Edges: edges,
	}
}

// Node returns the node with the given ID
func (g *CausalGraph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// HasNode reports whether a node with the given ID exists
func (g *CausalGraph) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// NodeIDs returns all node IDs in declaration order
func (g *CausalGraph) NodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

// clone copies the graph shallowly enough for safe structural edits:
// the node and edge slices are fresh, the elements are value types.
func (g *CausalGraph) clone() *CausalGraph {
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)
	meta := make(map[string]string, len(g.Metadata))
	for k, v := range g.Metadata {
		meta[k] = v
	}
	return &CausalGraph{ID: g.ID, Nodes: nodes, Edges: edges, Metadata: meta}
}
