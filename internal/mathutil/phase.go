// Package mathutil provides phase-accumulator arithmetic shared by the
// synthesis engine.
package mathutil

import "math"

// TwoPi is the phase span of one waveform cycle in radians.
const TwoPi = 2 * math.Pi

// WrapPhase reduces a non-negative phase into [0, length).
//
// The common cases are branch-only: no wrap, or a single overshoot of less
// than one table length. Increments larger than the table length (very high
// target frequencies) fall through to a true modulo, so the result is
// correct for increments of any magnitude, unlike the classic
// subtract-in-a-loop wrap which assumes increment < length.
func WrapPhase(phase, length float64) float64 {
	if phase < length {
		return phase
	}
	if phase < 2*length {
		return phase - length
	}
	return math.Mod(phase, length)
}

// PhaseIncrement returns the per-sample table-index advance for the given
// target frequency: frequency * length / sampleRate. One full table
// traversal then takes sampleRate/frequency samples, exactly one period.
func PhaseIncrement(frequency, length, sampleRate float64) float64 {
	return frequency * length / sampleRate
}
