package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wavetable/internal/testutil"
)

const (
	testSampleRate  = 44100.0
	testTableLength = 1024
	testAmplitude   = 0.5
	testTolerance   = 1e-12

	continuityFrames = 1000
	randomSeed       = 7
)

// quarterTable is one sine cycle at 4 points, the spec's concrete
// traversal scenario.
func quarterTable(guard bool) []float64 {
	if guard {
		return []float64{0, 1, 0, -1, 0}
	}
	return []float64{0, 1, 0, -1}
}

func newTestOsc(frequency, amplitude float64, interp bool) *Osc[float64] {
	table := SineTable[float64](testTableLength, interp)
	return NewOsc(table, testTableLength, frequency, amplitude, testSampleRate, 0, interp, 0)
}

// TestOsc_QuarterTableTraversal drives a 4-entry table at one index per
// sample: the truncating output must cycle 0, 1, 0, -1 exactly.
func TestOsc_QuarterTableTraversal(t *testing.T) {
	// frequency chosen so the phase increment is exactly 1.0/sample.
	const frequency = testSampleRate / 4

	osc := NewOsc(quarterTable(false), 4, frequency, 1.0, testSampleRate, 0, false, 0)
	require.InDelta(t, 1.0, osc.Step(), testTolerance)

	out := make([]float64, 12)
	osc.Synthesize(out, monoChannels)

	want := []float64{0, 1, 0, -1, 0, 1, 0, -1, 0, 1, 0, -1}
	for i, w := range want {
		assert.InDelta(t, w, out[i], testTolerance, "sample %d", i)
	}
}

// TestOsc_PhaseStaysInRange verifies the wrap invariant over many buffers
// for a spread of frequencies, including one whose increment exceeds the
// table length.
func TestOsc_PhaseStaysInRange(t *testing.T) {
	frequencies := []float64{1, 440, 12000, testSampleRate / 2,
		2 * testSampleRate, // increment = 2 * table length
	}

	for _, frequency := range frequencies {
		osc := newTestOsc(frequency, testAmplitude, false)
		out := make([]float64, 256)

		for call := 0; call < 50; call++ {
			osc.Synthesize(out, monoChannels)
			require.GreaterOrEqual(t, osc.Phase(), 0.0, "frequency %f", frequency)
			require.Less(t, osc.Phase(), float64(testTableLength), "frequency %f", frequency)
		}
	}
}

// TestOsc_PeriodReturnsPhase verifies that exactly sampleRate/frequency
// samples bring the phase back to its start.
func TestOsc_PeriodReturnsPhase(t *testing.T) {
	const frequency = 441.0 // 44100/441 = 100 samples per period
	periodSamples := int(testSampleRate / frequency)

	for _, interp := range []bool{false, true} {
		osc := newTestOsc(frequency, testAmplitude, interp)
		start := osc.Phase()

		out := make([]float64, periodSamples)
		osc.Synthesize(out, monoChannels)

		// The increment accumulates a few ulps of error per period, and
		// the start position is circular: length-ε and 0 are the same
		// point, so compare circular distance.
		assert.InDelta(t, 0.0, circularDistance(start, osc.Phase(), testTableLength), 1e-9,
			"interp=%v", interp)
	}
}

// circularDistance returns the distance between two phases on a cycle of
// the given length.
func circularDistance(a, b, length float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, length-d)
}

// TestOsc_InterpolationBound verifies interpolated samples never overshoot
// the two table entries they blend.
func TestOsc_InterpolationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(randomSeed))
	table := SineTable[float64](testTableLength, true)

	for trial := 0; trial < 200; trial++ {
		frequency := rng.Float64()*5000 + 1
		startPhase := rng.Float64() * testTableLength

		osc := NewOsc(table, testTableLength, frequency, 1.0, testSampleRate, startPhase, true, 0)

		out := make([]float64, 64)
		phases := make([]float64, 64)
		for i := range out {
			phases[i] = osc.Phase()
			osc.Synthesize(out[i:i+1], monoChannels)
		}

		for i, y := range out {
			j := int(phases[i])
			lo := math.Min(table[j], table[j+1])
			hi := math.Max(table[j], table[j+1])
			require.GreaterOrEqual(t, y, lo-testTolerance, "trial %d sample %d", trial, i)
			require.LessOrEqual(t, y, hi+testTolerance, "trial %d sample %d", trial, i)
		}
	}
}

// TestOsc_AmplitudeBound verifies output magnitude never exceeds the
// configured amplitude for either policy.
func TestOsc_AmplitudeBound(t *testing.T) {
	for _, interp := range []bool{false, true} {
		osc := newTestOsc(440, testAmplitude, interp)

		// More than one full period.
		out := make([]float64, 4096)
		osc.Synthesize(out, monoChannels)

		testutil.AssertNoNaNOrInf(t, out)
		testutil.AssertMaxAbs(t, out, testAmplitude, testTolerance, "interp=%v", interp)
	}
}

// TestOsc_ChannelDuplication verifies every channel slot of a frame holds
// the same value, and that channel count does not affect the signal.
func TestOsc_ChannelDuplication(t *testing.T) {
	const frames = 300

	channelCounts := []int{1, 2, 4}
	var mono []float64

	for _, channels := range channelCounts {
		osc := newTestOsc(440, testAmplitude, true)
		out := make([]float64, frames*channels)
		osc.Synthesize(out, channels)

		testutil.AssertChannelsIdentical(t, out, channels)

		got := testutil.Frames(out, channels)
		if mono == nil {
			mono = got
			continue
		}
		for i := range mono {
			require.InDelta(t, mono[i], got[i], testTolerance,
				"channels=%d frame %d", channels, i)
		}
	}
}

// TestOsc_ContinuityAcrossCalls verifies that splitting a request into two
// calls yields the same samples as one combined call, for both policies
// and for splits that straddle the scratch chunking boundary.
func TestOsc_ContinuityAcrossCalls(t *testing.T) {
	splits := []struct {
		name   string
		n1, n2 int
	}{
		{"small_split", 3, 5},
		{"uneven", 100, 156},
		{"across_scratch_chunk", 250, 750}, // combined call spans several chunks
		{"single_frame_first", 1, 255},
	}

	for _, interp := range []bool{false, true} {
		for _, tt := range splits {
			t.Run(tt.name, func(t *testing.T) {
				total := tt.n1 + tt.n2

				combined := newTestOsc(439.7, testAmplitude, interp)
				want := make([]float64, total*stereoChannels)
				combined.Synthesize(want, stereoChannels)

				split := newTestOsc(439.7, testAmplitude, interp)
				got := make([]float64, total*stereoChannels)
				split.Synthesize(got[:tt.n1*stereoChannels], stereoChannels)
				split.Synthesize(got[tt.n1*stereoChannels:], stereoChannels)

				for i := range want {
					require.InDelta(t, want[i], got[i], testTolerance,
						"interp=%v sample %d", interp, i)
				}
				assert.InDelta(t, combined.Phase(), split.Phase(), testTolerance)
			})
		}
	}
}

// TestOsc_ChunkedFillMatchesSmallScratch verifies scratch size has no
// effect on the produced signal.
func TestOsc_ChunkedFillMatchesSmallScratch(t *testing.T) {
	const frames = 1000
	table := SineTable[float64](testTableLength, true)

	big := NewOsc(table, testTableLength, 440, testAmplitude, testSampleRate, 0, true, frames)
	small := NewOsc(table, testTableLength, 440, testAmplitude, testSampleRate, 0, true, minScratchFrames)

	wantOut := make([]float64, frames)
	gotOut := make([]float64, frames)
	big.Synthesize(wantOut, monoChannels)
	small.Synthesize(gotOut, monoChannels)

	for i := range wantOut {
		require.InDelta(t, wantOut[i], gotOut[i], testTolerance, "sample %d", i)
	}
}

// TestOsc_InitialPhase verifies a nonzero starting phase offsets the
// traversal.
func TestOsc_InitialPhase(t *testing.T) {
	const frequency = testSampleRate / 4 // one index per sample

	osc := NewOsc(quarterTable(false), 4, frequency, 1.0, testSampleRate, 1, false, 0)

	out := make([]float64, 4)
	osc.Synthesize(out, monoChannels)

	want := []float64{1, 0, -1, 0}
	for i, w := range want {
		assert.InDelta(t, w, out[i], testTolerance, "sample %d", i)
	}
}

// TestOsc_Reset verifies Reset restores the configured start phase.
func TestOsc_Reset(t *testing.T) {
	osc := newTestOsc(440, testAmplitude, false)

	out := make([]float64, 123)
	osc.Synthesize(out, monoChannels)
	require.NotEqual(t, 0.0, osc.Phase())

	osc.Reset()
	assert.Equal(t, 0.0, osc.Phase())
}

// TestOsc_Float32 smoke-tests the float32 instantiation used for device
// output.
func TestOsc_Float32(t *testing.T) {
	table := SineTable[float32](testTableLength, true)
	osc := NewOsc(table, testTableLength, 440, testAmplitude, testSampleRate, 0, true, 0)

	out := make([]float32, 512)
	osc.Synthesize(out, stereoChannels)

	testutil.AssertChannelsIdentical(t, out, stereoChannels)
	testutil.AssertMaxAbs(t, out, testAmplitude, testutil.Float32Tolerance)
}

// TestOsc_ContractViolations verifies fail-fast behavior on malformed
// arguments.
func TestOsc_ContractViolations(t *testing.T) {
	table := SineTable[float64](testTableLength, false)

	assert.Panics(t, func() {
		// Missing guard slot for the interpolating policy.
		NewOsc(table, testTableLength, 440, 1, testSampleRate, 0, true, 0)
	})
	assert.Panics(t, func() {
		NewOsc(table, testTableLength, 440, 1, 0, 0, false, 0)
	})
	assert.Panics(t, func() {
		NewOsc(table, testTableLength, 440, 1, testSampleRate, testTableLength, false, 0)
	})

	osc := newTestOsc(440, 1, false)
	out := make([]float64, 10)
	assert.Panics(t, func() { osc.Synthesize(out, 0) })
	assert.Panics(t, func() { osc.Synthesize(out[:9], 2) })
}

// BenchmarkOsc_Synthesize measures the real-time callback cost for one
// 256-frame stereo buffer.
func BenchmarkOsc_Synthesize(b *testing.B) {
	benches := []struct {
		name   string
		interp bool
	}{
		{"truncate", false},
		{"interpolate", true},
	}

	for _, bb := range benches {
		b.Run(bb.name, func(b *testing.B) {
			table := SineTable[float32](testTableLength, bb.interp)
			osc := NewOsc(table, testTableLength, 440, testAmplitude, testSampleRate, 0, bb.interp, defaultScratchFrames)
			out := make([]float32, defaultScratchFrames*stereoChannels)

			b.ReportAllocs()
			for b.Loop() {
				osc.Synthesize(out, stereoChannels)
			}
		})
	}
}
