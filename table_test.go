package wavetable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wavetable/internal/testutil"
)

// TestNewSineTable_Correctness verifies entries against math.Sin within
// the spec tolerance.
func TestNewSineTable_Correctness(t *testing.T) {
	const length = 1024

	table, err := NewSineTable[float64](length, PolicyTruncate)
	require.NoError(t, err)
	require.Equal(t, length, table.Length())

	for i := 0; i < length; i++ {
		want := math.Sin(2 * math.Pi * float64(i) / length)
		require.InDelta(t, want, table.At(i), testutil.TableTolerance, "index %d", i)
	}
}

// TestNewSineTable_GuardPolicy verifies the guard slot exists exactly for
// the interpolating policy and repeats entry zero.
func TestNewSineTable_GuardPolicy(t *testing.T) {
	const length = 256

	truncating, err := NewSineTable[float64](length, PolicyTruncate)
	require.NoError(t, err)
	assert.False(t, truncating.HasGuard())
	assert.Panics(t, func() { truncating.At(length) })

	interpolating, err := NewSineTable[float64](length, PolicyInterpolate)
	require.NoError(t, err)
	assert.True(t, interpolating.HasGuard())
	assert.Equal(t, interpolating.At(0), interpolating.At(length))
}

// TestNewSineTable_InvalidLength verifies range validation.
func TestNewSineTable_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, 2, maxTableLength + 1} {
		_, err := NewSineTable[float64](length, PolicyTruncate)
		assert.ErrorIs(t, err, ErrInvalidConfig, "length %d", length)
	}
}
