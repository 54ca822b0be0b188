package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/fabricmock/pkg/scenario"
)

// PrintReport writes a short summary of a scenario run.
func PrintReport(w io.Writer, report *scenario.Report, runErr error) {
	if report == nil {
		return
	}
	if runErr != nil {
		printSystemMessage(w, "FAIL %s after %d steps: %v", report.Scenario, report.Steps, runErr)
		return
	}
	printSystemMessage(w, "PASS %s", report.Scenario)
	fmt.Fprintf(w, "  steps:      %d\n", report.Steps)
	fmt.Fprintf(w, "  assertions: %d\n", report.Assertions)
	fmt.Fprintf(w, "  nodes:      %d\n", len(report.Refs))
}
