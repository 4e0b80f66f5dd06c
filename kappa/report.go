// Package kappa: diagnostic reporting collaborator.
// The engine stays a pure function; descriptive output is routed through an
// injectable Reporter so display concerns never touch the computation.

package kappa

import (
	"fmt"
	"io"
)

// Reporter receives the descriptive summary of a successful computation.
// Implementations must not mutate the Result; the numeric contract is owned
// entirely by Compute.
type Reporter interface {
	Report(res Result)
}

// NopReporter discards the summary. The default when Options.Reporter is nil.
type NopReporter struct{}

// Report implements Reporter by doing nothing.
func (NopReporter) Report(Result) {}

// WriterReporter prints the human-readable block (item count, rater count,
// category sets, scale, P_O, P_C and the labeled coefficient) to W.
type WriterReporter struct {
	W io.Writer
}

// Report writes the diagnostic lines. Write failures are ignored: the
// side channel is informational and never disturbs the numeric result.
func (wr WriterReporter) Report(res Result) {
	if wr.W == nil {
		return
	}
	fmt.Fprintf(wr.W, "%-20s %d\n", "Items:", res.Items)
	fmt.Fprintf(wr.W, "%-20s %d\n", "Raters:", res.Raters)
	fmt.Fprintf(wr.W, "%-20s %v\n", "Possible categories:", res.Categories)
	fmt.Fprintf(wr.W, "%-20s %v\n", "Observed categories:", res.Observed)
	fmt.Fprintf(wr.W, "%-20s %s\n", "Scale:", res.Scale)
	fmt.Fprintf(wr.W, "%-20s %.4f\n", "P_O:", res.PO)
	fmt.Fprintf(wr.W, "%-20s %.4f\n", "P_C:", res.PC)
	fmt.Fprintf(wr.W, "%-20s %.4f\n", res.Label()+":", res.Kappa)
}
