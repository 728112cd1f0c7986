// Package check runs boolean-valued properties against randomly generated
// inputs and reports the outcome.
//
// A property is checked by running up to N trials. Each trial invokes the
// supplied generators in declared order to build a fresh argument list,
// then evaluates the property on it. The run stops at the first trial that
// returns false; the failing arguments and the active seed end up in the
// Report so the run can be replayed.
//
// Basic usage:
//
//	src := gen.NewSource(0)
//	rep := check.ForAll1(src, 100, gen.IntRange(1, 100), func(n int) bool {
//	    return n >= 1 && n <= 100
//	}, nil)
//	if !rep.Passed {
//	    log.Fatalf("failed on %v (seed %d)", rep.FailingArgs, rep.Seed)
//	}
package check

import "github.com/propq/propq/gen"

// DefaultTrials is the number of trials run when no count is given.
const DefaultTrials = 100

// Report is the structured result of a property run.
//
// CompletedTrials counts only the trials that passed before the first
// failure; the failing trial itself is excluded, so a property that fails
// immediately reports 0. FailingArgs holds the ordered argument list of the
// first failing trial and is non-nil exactly when Passed is false.
type Report struct {
	Passed          bool
	RequestedTrials int
	CompletedTrials int
	Seed            int64
	FailingArgs     []any
}

// ForAll1 runs up to trials trials of prop against values drawn from genA.
// A trials count <= 0 means DefaultTrials.
//
// On the first failing trial the optional reporter is invoked with the same
// argument, for diagnostics only, and the run stops. A panic raised inside
// prop or reporter is not recovered; it aborts the run with no Report.
func ForAll1[A any](src *gen.Source, trials int, genA gen.Gen[A], prop func(A) bool, reporter func(A)) Report {
	if trials <= 0 {
		trials = DefaultTrials
	}
	completed := 0
	for i := 0; i < trials; i++ {
		a := genA(src)
		if prop(a) {
			completed++
			continue
		}
		if reporter != nil {
			reporter(a)
		}
		return failed(trials, completed, src.Seed(), a)
	}
	return passed(trials, src.Seed())
}

// ForAll2 is ForAll1 for two-argument properties. The generators are invoked
// in declared order on every trial.
func ForAll2[A, B any](src *gen.Source, trials int, genA gen.Gen[A], genB gen.Gen[B], prop func(A, B) bool, reporter func(A, B)) Report {
	if trials <= 0 {
		trials = DefaultTrials
	}
	completed := 0
	for i := 0; i < trials; i++ {
		a := genA(src)
		b := genB(src)
		if prop(a, b) {
			completed++
			continue
		}
		if reporter != nil {
			reporter(a, b)
		}
		return failed(trials, completed, src.Seed(), a, b)
	}
	return passed(trials, src.Seed())
}

// ForAll3 is ForAll1 for three-argument properties.
func ForAll3[A, B, C any](src *gen.Source, trials int, genA gen.Gen[A], genB gen.Gen[B], genC gen.Gen[C], prop func(A, B, C) bool, reporter func(A, B, C)) Report {
	if trials <= 0 {
		trials = DefaultTrials
	}
	completed := 0
	for i := 0; i < trials; i++ {
		a := genA(src)
		b := genB(src)
		c := genC(src)
		if prop(a, b, c) {
			completed++
			continue
		}
		if reporter != nil {
			reporter(a, b, c)
		}
		return failed(trials, completed, src.Seed(), a, b, c)
	}
	return passed(trials, src.Seed())
}

func passed(trials int, seed int64) Report {
	return Report{
		Passed:          true,
		RequestedTrials: trials,
		CompletedTrials: trials,
		Seed:            seed,
	}
}

func failed(trials, completed int, seed int64, args ...any) Report {
	return Report{
		RequestedTrials: trials,
		CompletedTrials: completed,
		Seed:            seed,
		FailingArgs:     args,
	}
}
