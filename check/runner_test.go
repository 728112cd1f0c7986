package check

import (
	"testing"

	"github.com/propq/propq/gen"
)

func TestEffectiveSeedEnvOverride(t *testing.T) {
	t.Setenv(SeedEnvVar, "12345")
	if got := effectiveSeed(Config{Seed: 999}); got != 12345 {
		t.Errorf("effectiveSeed = %d, want env override 12345", got)
	}
}

func TestEffectiveSeedIgnoresBadEnv(t *testing.T) {
	t.Setenv(SeedEnvVar, "not-a-number")
	if got := effectiveSeed(Config{Seed: 999}); got != 999 {
		t.Errorf("effectiveSeed = %d, want configured 999", got)
	}
}

func TestEffectiveSeedFromConfig(t *testing.T) {
	t.Setenv(SeedEnvVar, "")
	if got := effectiveSeed(Config{Seed: 7}); got != 7 {
		t.Errorf("effectiveSeed = %d, want 7", got)
	}
	if got := effectiveSeed(Config{}); got != 0 {
		t.Errorf("effectiveSeed = %d, want 0 (randomize)", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Trials != DefaultTrials {
		t.Errorf("Trials = %d, want %d", cfg.Trials, DefaultTrials)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestRun1PassingProperty(t *testing.T) {
	Run1(t, "ranges hold", Config{Trials: 50, Seed: 1},
		gen.IntRange(1, 100),
		func(n int) bool { return n >= 1 && n <= 100 })
}

func TestQuick2PassingProperty(t *testing.T) {
	Quick2(t, "slice length bounded by cap",
		gen.IntRange(0, 20),
		gen.Bool(),
		func(n int, b bool) bool {
			src := gen.NewSource(int64(n) + 1)
			xs := gen.SliceOf(n, gen.Const(b))(src)
			return len(xs) <= n
		})
}
