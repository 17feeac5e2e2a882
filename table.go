package wavetable

import (
	"fmt"

	"github.com/tphakala/go-wavetable/internal/engine"
)

// Float is the type constraint for supported sample types: float32
// matches typical device formats, float64 suits analysis and offline
// rendering.
type Float interface {
	float32 | float64
}

// Table is one precomputed cycle of a waveform, sampled at uniform phase
// intervals of 2π/length. It is immutable after construction and safe to
// read from any number of goroutines.
//
// Under PolicyInterpolate the backing storage carries one extra guard
// slot equal to slot zero, so an interpolating read at the upper boundary
// needs no wrap branch. The guard is a storage detail: Length reports the
// cycle length without it.
type Table[F Float] struct {
	samples []F
	length  int
}

// NewSineTable builds a sine cycle table: entry i holds sin(2π·i/length).
// The policy decides whether the interpolation guard slot is allocated.
func NewSineTable[F Float](length int, policy Policy) (*Table[F], error) {
	if length < minTableLength || length > maxTableLength {
		return nil, fmt.Errorf("%w: table length %d out of range [%d, %d]",
			ErrInvalidConfig, length, minTableLength, maxTableLength)
	}
	if !policy.valid() {
		return nil, fmt.Errorf("%w: unknown sampling policy %d", ErrInvalidConfig, policy)
	}

	return &Table[F]{
		samples: engine.SineTable[F](length, policy == PolicyInterpolate),
		length:  length,
	}, nil
}

// Length returns the cycle length, excluding any guard slot.
func (t *Table[F]) Length() int {
	return t.length
}

// HasGuard reports whether the table carries the interpolation guard
// slot.
func (t *Table[F]) HasGuard() bool {
	return len(t.samples) > t.length
}

// At returns entry i. Valid indices are [0, Length()], the upper bound
// only for tables with a guard slot; anything else panics.
func (t *Table[F]) At(i int) F {
	return t.samples[i]
}
