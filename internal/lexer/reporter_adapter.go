package lexer

import "leo/internal/diag"

// ReporterAdapter wires a diag.Bag into lexer Options.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that stores diagnostics in the adapter's bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return &diag.BagReporter{Bag: r.Bag}
}
