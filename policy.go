package wavetable

import "fmt"

// Policy selects how the oscillator turns a fractional table index into a
// sample value.
type Policy int

const (
	// PolicyTruncate reads the table at the integer part of the phase,
	// discarding the fraction. Cheapest per sample, but the index
	// quantization adds audible harmonic distortion.
	PolicyTruncate Policy = iota

	// PolicyInterpolate blends the two table entries adjacent to the
	// phase, weighted by its fractional part. One extra read and two
	// extra multiplies per sample for materially lower distortion.
	PolicyInterpolate
)

// String returns the policy name used on CLIs and in diagnostics.
func (p Policy) String() string {
	switch p {
	case PolicyTruncate:
		return "truncate"
	case PolicyInterpolate:
		return "interpolate"
	default:
		return "unknown"
	}
}

func (p Policy) valid() bool {
	return p == PolicyTruncate || p == PolicyInterpolate
}

// ParsePolicy maps a policy name to its value. It accepts the String
// forms "truncate" and "interpolate".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "truncate":
		return PolicyTruncate, nil
	case "interpolate":
		return PolicyInterpolate, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, s)
	}
}
