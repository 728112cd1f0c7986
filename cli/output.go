// Package cli provides console output helpers for the propq command.
package cli

import (
	"fmt"
	"os"

	"github.com/propq/propq/check"
)

// Fatal prints a message to stderr and exits with code 1.
func Fatal(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}

// FatalErr prints an error message with details to stderr and exits with code 1.
func FatalErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// Infof prints a formatted informational message to stdout.
func Infof(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Successf prints a formatted success message to stdout.
func Successf(format string, args ...any) {
	fmt.Printf("✓ "+format+"\n", args...)
}

// Failf prints a formatted failure message to stdout.
func Failf(format string, args ...any) {
	fmt.Printf("✗ "+format+"\n", args...)
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// PrintReport renders a property run's report on one line.
// Failing runs include the counter-example and the seed needed to replay.
func PrintReport(name string, rep check.Report) {
	if rep.Passed {
		Successf("%s: %d/%d trials passed (seed %d)",
			name, rep.CompletedTrials, rep.RequestedTrials, rep.Seed)
		return
	}
	Failf("%s: failed on trial %d of %d with args %v (seed %d)",
		name, rep.CompletedTrials+1, rep.RequestedTrials, rep.FailingArgs, rep.Seed)
}
