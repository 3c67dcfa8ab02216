package identify

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-causal/pkg/graph"
)

// InterventionType distinguishes intervention flavors; only atomic do(X=x)
// interventions affect the graphical analysis
type InterventionType string

const (
	// InterventionAtomic fixes a variable to a constant, do(X=x)
	InterventionAtomic InterventionType = "atomic"
)

// Intervention is one do() assignment in a query
type Intervention struct {
	Variable string
	Value    any
	Type     InterventionType
}

// AnalysisRequest asks for the effect of a set of interventions on a set of
// outcome variables
type AnalysisRequest struct {
	Interventions []Intervention
	Outcomes      []string
}

// AnalysisResult is the top-level identifiability answer. Adjustment and
// Estimand are populated on success; NonIdentifiableReason otherwise.
// OriginalDistribution always carries the pre-intervention notation for
// reference.
type AnalysisResult struct {
	Identifiable          bool
	OriginalDistribution  string
	Method                Method
	Adjustment            *Formula
	Estimand              string
	NonIdentifiableReason string
}

// AnalyzeIntervention is the engine's top-level entry point. Every treatment/
// outcome pair must be identifiable for the query to be identifiable; the
// reported formula is the one for the canonical first pair. Empty requests
// come back non-identifiable, never as a panic or error.
func AnalyzeIntervention(g *graph.CausalGraph, req AnalysisRequest) AnalysisResult {
	xs := make([]string, 0, len(req.Interventions))
	for _, iv := range req.Interventions {
		xs = append(xs, iv.Variable)
	}
	ys := sortedClone(req.Outcomes)
	xs = sortedClone(xs)

	result := AnalysisResult{OriginalDistribution: observationalNotation(ys, xs)}

	if len(xs) == 0 || len(ys) == 0 {
		result.NonIdentifiableReason = ErrEmptyQuery.Error()
		return result
	}

	var first IdentifiabilityResult
	for i, x := range xs {
		for j, y := range ys {
			r := IsIdentifiable(g, x, y)
			if !r.Identifiable {
				result.NonIdentifiableReason = fmt.Sprintf("effect of %s on %s: %s", x, y, r.Reason)
				return result
			}
			if i == 0 && j == 0 {
				first = r
			}
		}
	}

	result.Identifiable = true
	result.Method = first.Method

	x, y := xs[0], ys[0]
	switch first.Method {
	case MethodBackdoor:
		f := GenerateBackdoorFormula(x, y, first.AdjustmentSet)
		result.Adjustment = &f
		result.Estimand = f.PlainText
	case MethodFrontdoor:
		f := GenerateFrontdoorFormula(x, y, first.Mediators)
		result.Adjustment = &f
		result.Estimand = f.PlainText
	case MethodInstrumental:
		f := GenerateIVFormula(x, y, first.Instrument)
		result.Adjustment = &f
		result.Estimand = f.PlainText
	case MethodDoCalculus:
		result.Estimand = fmt.Sprintf("P(%s|do(%s)) = %s", y, x, first.Expression)
	}
	return result
}

// observationalNotation renders the pre-intervention distribution, e.g.
// P(cancer|smoking)
func observationalNotation(ys, xs []string) string {
	if len(ys) == 0 {
		return ""
	}
	if len(xs) == 0 {
		return fmt.Sprintf("P(%s)", strings.Join(ys, ","))
	}
	return fmt.Sprintf("P(%s|%s)", strings.Join(ys, ","), strings.Join(xs, ","))
}
