// Package validation is an optional pre-flight gate for caller-supplied
// causal models and queries. The engine itself tolerates malformed input
// (dangling edges become edge-less); hosts that want hard errors up front
// call this first.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-causal/pkg/graph"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNodes          = 500
	MaxEdges          = 5000
	MaxVariableLength = 100
	MaxQueryVars      = 20

	// Variable IDs: identifier-style, no whitespace
	variablePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.-]*$`)
)

func init() {
	validate = validator.New()
}

// GraphRequest wraps a caller-supplied graph for struct-tag validation
type GraphRequest struct {
	Nodes []graph.Node `validate:"required,min=1,max=500"`
	Edges []graph.Edge `validate:"max=5000"`
}

// QueryRequest is the treatment/outcome query a session layer hands over
type QueryRequest struct {
	Interventions []string `json:"interventions" validate:"required,min=1,max=20"`
	Outcomes      []string `json:"outcomes" validate:"required,min=1,max=20"`
	Conditioning  []string `json:"conditioning" validate:"omitempty,max=20"`
}

// ValidateGraph checks node ID uniqueness and syntax, edge endpoint
// existence, and size bounds
func ValidateGraph(g *graph.CausalGraph) error {
	if g == nil {
		return errors.New("graph cannot be nil")
	}

	req := GraphRequest{Nodes: g.Nodes, Edges: g.Edges}
	if err := validate.Struct(&req); err != nil {
		return formatValidationError(err)
	}

	seen := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("Nodes: node at index %d has an empty id", i)
		}
		if len(n.ID) > MaxVariableLength {
			return fmt.Errorf("Nodes: id '%s' exceeds maximum length of %d characters", n.ID, MaxVariableLength)
		}
		if !variablePattern.MatchString(n.ID) {
			return fmt.Errorf("Nodes: id '%s' contains invalid characters (identifier syntax required)", n.ID)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("Nodes: duplicate id '%s'", n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	for i, e := range g.Edges {
		if _, ok := seen[e.From]; !ok {
			return fmt.Errorf("Edges: edge at index %d references unknown node '%s'", i, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			return fmt.Errorf("Edges: edge at index %d references unknown node '%s'", i, e.To)
		}
		if e.Kind > graph.Undirected {
			return fmt.Errorf("Edges: edge at index %d has unknown kind %d", i, e.Kind)
		}
	}

	return nil
}

// ValidateQuery checks a query against its graph: variables must exist and
// the three sets must not overlap
func ValidateQuery(g *graph.CausalGraph, req *QueryRequest) error {
	if req == nil {
		return errors.New("query request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	sets := []struct {
		name string
		vars []string
	}{
		{"Interventions", req.Interventions},
		{"Outcomes", req.Outcomes},
		{"Conditioning", req.Conditioning},
	}

	seen := make(map[string]string)
	for _, set := range sets {
		for _, v := range set.vars {
			if !g.HasNode(v) {
				return fmt.Errorf("%s: variable '%s' is not present in the graph", set.name, v)
			}
			if other, dup := seen[v]; dup && other != set.name {
				return fmt.Errorf("%s: variable '%s' also appears in %s", set.name, v, other)
			}
			seen[v] = set.name
		}
	}

	return nil
}

// formatValidationError converts validator errors to readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			switch fieldErr.Tag() {
			case "required":
				return fmt.Errorf("%s: field is required", fieldErr.Field())
			case "min":
				return fmt.Errorf("%s: must have at least %s elements", fieldErr.Field(), fieldErr.Param())
			case "max":
				return fmt.Errorf("%s: must have at most %s elements", fieldErr.Field(), fieldErr.Param())
			default:
				return fmt.Errorf("%s: failed validation '%s'", fieldErr.Field(), fieldErr.Tag())
			}
		}
	}
	return err
}
