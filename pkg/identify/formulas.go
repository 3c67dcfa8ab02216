package identify

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// FormulaType names the identification strategy behind a formula
type FormulaType string

const (
	FormulaBackdoor     FormulaType = "backdoor"
	FormulaFrontdoor    FormulaType = "frontdoor"
	FormulaInstrumental FormulaType = "instrumental"
)

// Formula is an adjustment formula in both display (LaTeX) and plain-text
// form, together with the adjustment set it uses
type Formula struct {
	Type          FormulaType
	AdjustmentSet []string
	Latex         string
	PlainText     string
	Valid         bool
}

// GenerateBackdoorFormula emits P(Y|do(X)) = Σ_z P(Y|X,Z=z)P(Z=z). An empty
// adjustment set collapses the summation to plain P(Y|X).
func GenerateBackdoorFormula(x, y string, z []string) Formula {
	adjustment := slices.Clone(z)
	slices.Sort(adjustment)

	if len(adjustment) == 0 {
		return Formula{
			Type:          FormulaBackdoor,
			AdjustmentSet: []string{},
			Latex:         fmt.Sprintf(`P(%s \mid do(%s)) = P(%s \mid %s)`, y, x, y, x),
			PlainText:     fmt.Sprintf("P(%s|do(%s)) = P(%s|%s)", y, x, y, x),
			Valid:         true,
		}
	}

	joined := strings.Join(adjustment, ",")
	return Formula{
		Type:          FormulaBackdoor,
		AdjustmentSet: adjustment,
		Latex: fmt.Sprintf(`P(%s \mid do(%s)) = \sum_{%s} P(%s \mid %s, %s) P(%s)`,
			y, x, joined, y, x, joined, joined),
		PlainText: fmt.Sprintf("P(%s|do(%s)) = Σ_{%s} P(%s|%s,%s)P(%s)",
			y, x, joined, y, x, joined, joined),
		Valid: true,
	}
}

// GenerateFrontdoorFormula emits the two-stage mediator estimand
// P(Y|do(X)) = Σ_m P(m|X) Σ_x' P(Y|x',m)P(x')
func GenerateFrontdoorFormula(x, y string, mediators []string) Formula {
	m := slices.Clone(mediators)
	slices.Sort(m)
	joined := strings.Join(m, ",")

	return Formula{
		Type:          FormulaFrontdoor,
		AdjustmentSet: m,
		Latex: fmt.Sprintf(`P(%s \mid do(%s)) = \sum_{%s} P(%s \mid %s) \sum_{%s'} P(%s \mid %s', %s) P(%s')`,
			y, x, joined, joined, x, x, y, x, joined, x),
		PlainText: fmt.Sprintf("P(%s|do(%s)) = Σ_{%s} P(%s|%s) Σ_{%s'} P(%s|%s',%s)P(%s')",
			y, x, joined, joined, x, x, y, x, joined, x),
		Valid: true,
	}
}

// GenerateIVFormula emits the covariance-ratio estimand for a linear
// instrumental-variable identification
func GenerateIVFormula(x, y, instrument string) Formula {
	return Formula{
		Type:          FormulaInstrumental,
		AdjustmentSet: []string{instrument},
		Latex: fmt.Sprintf(`\text{Effect}(%s \to %s) = \frac{\mathrm{Cov}(%s, %s)}{\mathrm{Cov}(%s, %s)}`,
			x, y, instrument, y, instrument, x),
		PlainText: fmt.Sprintf("Effect(%s->%s) = Cov(%s,%s)/Cov(%s,%s)",
			x, y, instrument, y, instrument, x),
		Valid: true,
	}
}
