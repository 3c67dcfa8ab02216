package identify

import (
	"fmt"

	"github.com/dd0wney/cluso-causal/pkg/dsep"
	"github.com/dd0wney/cluso-causal/pkg/graph"
)

// Method names the strategy that identified a causal effect
type Method string

const (
	MethodBackdoor     Method = "backdoor"
	MethodFrontdoor    Method = "frontdoor"
	MethodInstrumental Method = "instrumental"
	MethodDoCalculus   Method = "do-calculus"
)

// IdentifiabilityResult is the outcome of the strategy cascade. Exactly one
// of the detail fields is populated, matching Method.
type IdentifiabilityResult struct {
	Identifiable  bool
	Method        Method
	AdjustmentSet []string // backdoor
	Mediators     []string // frontdoor
	Instrument    string   // instrumental
	Rule          int      // do-calculus
	Expression    string   // do-calculus rewrite
	Reason        string   // populated when not identifiable
}

// IsIdentifiable runs the strategy cascade for the effect of do(x) on y:
// empty backdoor set, general backdoor search, frontdoor, instrumental
// variable, then the do-calculus fallback. The first success wins and is
// tagged with its method; failure returns a structured reason, never an
// error.
func IsIdentifiable(g *graph.CausalGraph, x, y string) IdentifiabilityResult {
	if !g.HasNode(x) || !g.HasNode(y) {
		return IdentifiabilityResult{Reason: "treatment or outcome variable not present in graph"}
	}

	// Unconfounded case first: the empty set is the cheapest adjustment
	if dsep.IsValidBackdoorAdjustment(g, x, y, nil) {
		return IdentifiabilityResult{
			Identifiable:  true,
			Method:        MethodBackdoor,
			AdjustmentSet: []string{},
		}
	}

	if z, ok := MinimalBackdoorSet(g, x, y); ok {
		return IdentifiabilityResult{
			Identifiable:  true,
			Method:        MethodBackdoor,
			AdjustmentSet: z,
		}
	}

	if fd := CheckFrontdoorCriterion(g, x, y); fd.Satisfied {
		return IdentifiabilityResult{
			Identifiable: true,
			Method:       MethodFrontdoor,
			Mediators:    fd.Mediators,
		}
	}

	if z, ok := FindInstrumentalVariable(g, x, y); ok {
		return IdentifiabilityResult{
			Identifiable: true,
			Method:       MethodInstrumental,
			Instrument:   z,
		}
	}

	if app, ok := ApplyRules(g, x, y); ok {
		return IdentifiabilityResult{
			Identifiable: true,
			Method:       MethodDoCalculus,
			Rule:         app.Rule,
			Expression:   app.Result,
		}
	}

	return IdentifiabilityResult{Reason: nonIdentifiableReason(g, x, y)}
}

// nonIdentifiableReason builds the most specific diagnostic available for a
// failed cascade
func nonIdentifiableReason(g *graph.CausalGraph, x, y string) string {
	for _, e := range g.Edges {
		if e.Kind != graph.Bidirected {
			continue
		}
		if (e.From == x && e.To == y) || (e.From == y && e.To == x) {
			return fmt.Sprintf("latent confounding %s <-> %s cannot be blocked by any adjustment set", x, y)
		}
	}

	backdoor := dsep.BackdoorPaths(g, x, y)
	for _, p := range backdoor {
		if !dsep.IsPathBlocked(g, p, nil).Blocked {
			open := p.Nodes[0]
			for _, v := range p.Nodes[1:] {
				open += " - " + v
			}
			return fmt.Sprintf("no strategy applies: backdoor path %s cannot be blocked without opening another", open)
		}
	}

	return "no identification strategy (backdoor, frontdoor, instrumental, do-calculus) applies"
}
