package mathutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTableLength = 1024.0
	testSampleRate  = 44100.0
	wrapTolerance   = 1e-9

	randomWrapIterations = 10000
	randomSeed           = 42
)

// TestWrapPhase_Cases checks the three wrap regimes explicitly.
func TestWrapPhase_Cases(t *testing.T) {
	tests := []struct {
		name   string
		phase  float64
		length float64
		want   float64
	}{
		{"zero", 0, testTableLength, 0},
		{"in_range", 1023.5, testTableLength, 1023.5},
		{"exact_length", 1024, testTableLength, 0},
		{"single_wrap", 1030.25, testTableLength, 6.25},
		{"just_below_double", 2047.5, testTableLength, 1023.5},
		{"double_wrap", 2048.5, testTableLength, 0.5},
		{"many_wraps", 10*testTableLength + 3.75, testTableLength, 3.75},
		{"tiny_table", 7.5, 4, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapPhase(tt.phase, tt.length)
			assert.InDelta(t, tt.want, got, wrapTolerance)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, tt.length)
		})
	}
}

// TestWrapPhase_RandomIncrements verifies the wrap invariant for a random
// walk of increments, including increments larger than the table length.
func TestWrapPhase_RandomIncrements(t *testing.T) {
	rng := rand.New(rand.NewSource(randomSeed))

	phase := 0.0
	for i := 0; i < randomWrapIterations; i++ {
		// Up to ~3 table lengths per step.
		inc := rng.Float64() * 3 * testTableLength
		phase = WrapPhase(phase+inc, testTableLength)

		require.GreaterOrEqual(t, phase, 0.0, "iteration %d", i)
		require.Less(t, phase, testTableLength, "iteration %d", i)
	}
}

// TestWrapPhase_MatchesMod verifies agreement with plain math.Mod for
// non-negative inputs across all regimes.
func TestWrapPhase_MatchesMod(t *testing.T) {
	rng := rand.New(rand.NewSource(randomSeed))

	for i := 0; i < randomWrapIterations; i++ {
		phase := rng.Float64() * 5 * testTableLength
		want := math.Mod(phase, testTableLength)
		got := WrapPhase(phase, testTableLength)
		require.InDelta(t, want, got, wrapTolerance, "phase %f", phase)
	}
}

// TestPhaseIncrement verifies the frequency-to-phase-rate mapping.
func TestPhaseIncrement(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		want      float64
	}{
		{"concert_a", 440, 440 * testTableLength / testSampleRate},
		{"one_index_per_sample", testSampleRate / testTableLength, 1.0},
		{"nyquist", testSampleRate / 2, testTableLength / 2},
		{"above_table_rate", 2 * testSampleRate, 2 * testTableLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhaseIncrement(tt.frequency, testTableLength, testSampleRate)
			assert.InDelta(t, tt.want, got, wrapTolerance)
		})
	}
}

// TestPhaseIncrement_PeriodLength checks that one full table traversal at
// the derived increment takes sampleRate/frequency samples.
func TestPhaseIncrement_PeriodLength(t *testing.T) {
	const frequency = 441.0 // divides 44100 evenly
	inc := PhaseIncrement(frequency, testTableLength, testSampleRate)

	samplesPerPeriod := testTableLength / inc
	assert.InDelta(t, testSampleRate/frequency, samplesPerPeriod, wrapTolerance)
}
