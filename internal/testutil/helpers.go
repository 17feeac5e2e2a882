// Package testutil provides reusable test helper functions for oscillator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	TableTolerance   = 1e-6 // spec tolerance for trig table entries
	Float32Tolerance = 1e-5
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertChannelsIdentical verifies that every frame of an interleaved
// buffer holds the same value in all channel slots.
func AssertChannelsIdentical[F float32 | float64](t *testing.T, interleaved []F, channels int) bool {
	t.Helper()
	if channels < 1 || len(interleaved)%channels != 0 {
		return assert.Fail(t, "malformed interleaved buffer",
			"len=%d channels=%d", len(interleaved), channels)
	}
	frames := len(interleaved) / channels
	for frame := 0; frame < frames; frame++ {
		base := frame * channels
		want := interleaved[base]
		for ch := 1; ch < channels; ch++ {
			if interleaved[base+ch] != want {
				return assert.Fail(t, "channel slots differ",
					"frame %d: channel %d = %v, channel 0 = %v",
					frame, ch, interleaved[base+ch], want)
			}
		}
	}
	return true
}

// AssertMaxAbs verifies that no element's magnitude exceeds bound (within
// tolerance).
func AssertMaxAbs[F float32 | float64](t *testing.T, s []F, bound, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.Abs(float64(v)) > bound+tolerance {
			return assert.Fail(t, "magnitude exceeds bound",
				"s[%d]=%v exceeds %f", i, v, bound)
		}
	}
	return true
}

// Frames converts interleaved samples to per-frame mono values by taking
// channel 0 of each frame.
func Frames[F float32 | float64](interleaved []F, channels int) []F {
	frames := len(interleaved) / channels
	out := make([]F, frames)
	for i := range out {
		out[i] = interleaved[i*channels]
	}
	return out
}
