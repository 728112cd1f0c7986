package check

import (
	"os"
	"strconv"
	"testing"

	"github.com/propq/propq/gen"
)

// SeedEnvVar overrides the seed for every Run*/Quick* call when set,
// so a failure printed by a previous run can be replayed exactly.
const SeedEnvVar = "PROPQ_SEED"

// Config controls how Run* executes a property.
type Config struct {
	// Trials is the number of test iterations. <= 0 means DefaultTrials.
	Trials int

	// Seed fixes the random stream for reproducibility. 0 means an
	// unpredictable seed, which is still reported on failure.
	Seed int64

	// Verbose logs the seed and trial count even when the property holds.
	Verbose bool
}

// DefaultConfig returns the standard configuration: DefaultTrials trials
// with an unpredictable seed.
func DefaultConfig() Config {
	return Config{Trials: DefaultTrials}
}

// effectiveSeed resolves the seed to run with: environment override first,
// then the configured seed, then 0 (NewSource picks an unpredictable one).
func effectiveSeed(cfg Config) int64 {
	if env := os.Getenv(SeedEnvVar); env != "" {
		if seed, err := strconv.ParseInt(env, 10, 64); err == nil {
			return seed
		}
	}
	return cfg.Seed
}

// Run1 checks a one-argument property under the testing framework. On
// failure it reports the failing argument and the seed needed to replay
// the run.
//
// Example:
//
//	check.Run1(t, "lengths are bounded", check.Config{Trials: 50},
//	    gen.SliceOf(10, gen.Bool()),
//	    func(xs []bool) bool { return len(xs) <= 10 })
func Run1[A any](t *testing.T, name string, cfg Config, genA gen.Gen[A], prop func(A) bool) {
	t.Helper()
	src := gen.NewSource(effectiveSeed(cfg))
	logStart(t, name, cfg, src)
	report(t, name, ForAll1(src, cfg.Trials, genA, prop, nil), cfg)
}

// Run2 checks a two-argument property under the testing framework.
func Run2[A, B any](t *testing.T, name string, cfg Config, genA gen.Gen[A], genB gen.Gen[B], prop func(A, B) bool) {
	t.Helper()
	src := gen.NewSource(effectiveSeed(cfg))
	logStart(t, name, cfg, src)
	report(t, name, ForAll2(src, cfg.Trials, genA, genB, prop, nil), cfg)
}

// Run3 checks a three-argument property under the testing framework.
func Run3[A, B, C any](t *testing.T, name string, cfg Config, genA gen.Gen[A], genB gen.Gen[B], genC gen.Gen[C], prop func(A, B, C) bool) {
	t.Helper()
	src := gen.NewSource(effectiveSeed(cfg))
	logStart(t, name, cfg, src)
	report(t, name, ForAll3(src, cfg.Trials, genA, genB, genC, prop, nil), cfg)
}

// Quick1 checks a one-argument property with the default configuration.
func Quick1[A any](t *testing.T, name string, genA gen.Gen[A], prop func(A) bool) {
	t.Helper()
	Run1(t, name, DefaultConfig(), genA, prop)
}

// Quick2 checks a two-argument property with the default configuration.
func Quick2[A, B any](t *testing.T, name string, genA gen.Gen[A], genB gen.Gen[B], prop func(A, B) bool) {
	t.Helper()
	Run2(t, name, DefaultConfig(), genA, genB, prop)
}

// Quick3 checks a three-argument property with the default configuration.
func Quick3[A, B, C any](t *testing.T, name string, genA gen.Gen[A], genB gen.Gen[B], genC gen.Gen[C], prop func(A, B, C) bool) {
	t.Helper()
	Run3(t, name, DefaultConfig(), genA, genB, genC, prop)
}

func logStart(t *testing.T, name string, cfg Config, src *gen.Source) {
	t.Helper()
	if cfg.Verbose {
		trials := cfg.Trials
		if trials <= 0 {
			trials = DefaultTrials
		}
		t.Logf("check %q: running %d trials with seed %d", name, trials, src.Seed())
	}
}

func report(t *testing.T, name string, rep Report, cfg Config) {
	t.Helper()
	if !rep.Passed {
		t.Errorf("check %q failed on trial %d with args %+v (seed=%d, use %s=%d to reproduce)",
			name, rep.CompletedTrials+1, rep.FailingArgs, rep.Seed, SeedEnvVar, rep.Seed)
		return
	}
	if cfg.Verbose {
		t.Logf("check %q: passed %d trials", name, rep.CompletedTrials)
	}
}
