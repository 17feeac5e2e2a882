// Package engine implements the wavetable synthesis core: table
// construction and the phase-accumulator oscillator.
package engine

import (
	"math"

	"github.com/tphakala/go-wavetable/internal/mathutil"
	"github.com/tphakala/go-wavetable/internal/simdops"
)

// SineTable fills one cycle of a sine wave: table[i] = sin(2π·i/length)
// for i in [0, length). With guard set, the returned slice has length+1
// slots and the last slot repeats slot zero (the next cycle's first
// sample), so an interpolating read at index length-1+frac never branches.
//
// length must be positive; violating that is a programming error and
// panics. Callers are expected to validate user input first.
func SineTable[F simdops.Float](length int, guard bool) []F {
	if length <= 0 {
		panic("engine: sine table length must be positive")
	}

	size := length
	if guard {
		size++
	}
	table := make([]F, size)

	// One division for the whole fill.
	step := mathutil.TwoPi / float64(length)
	for i := 0; i < length; i++ {
		table[i] = F(math.Sin(float64(i) * step))
	}
	if guard {
		table[length] = table[0]
	}

	return table
}
