package identify

import (
	"errors"
	"fmt"
)

// Sentinel errors for callers that validate before analysis. Expected
// absences (no instrument, no separator, criterion unsatisfied) are reported
// through result values, never through these.
var (
	ErrVariableNotFound = errors.New("variable not present in graph")
	ErrEmptyQuery       = errors.New("query has no interventions or no outcomes")
	ErrOverlappingSets  = errors.New("rule sets must be pairwise disjoint")
)

// AnalysisError provides structured context for a failed analysis step
type AnalysisError struct {
	Op       string // operation that failed, e.g. "AnalyzeIntervention"
	Variable string // offending variable, if any
	Cause    error
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Variable, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
