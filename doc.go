// Package wavetable implements a real-time wavetable oscillator in pure Go.
//
// A wavetable oscillator precomputes one cycle of a periodic waveform into a
// fixed-length table and synthesizes a continuous tone by walking through
// that table at a rate derived from the target frequency. The walk position
// (the phase accumulator) is a real-valued table index that advances by a
// fixed increment per sample and wraps modulo the table length.
//
// # Features
//
//   - Truncating (nearest-index) and linearly interpolating sampling policies
//   - Phase-continuous synthesis across arbitrary buffer boundaries
//   - Allocation-free, lock-free sample production safe for real-time
//     audio callbacks
//   - Generic float32/float64 sample types: float32 for device output,
//     float64 for analysis and offline rendering
//   - Mono duplication into any channel count, with SIMD-accelerated
//     amplitude scaling and stereo interleaving via github.com/tphakala/simd
//
// # Quick Start
//
// For a one-shot render:
//
//	samples, err := wavetable.RenderTone[float64](440, 0.5, time.Second, wavetable.PolicyInterpolate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For streaming synthesis driven by an audio callback:
//
//	osc, err := wavetable.New[float32](&wavetable.Config{
//	    Frequency: 440,
//	    Amplitude: 0.5,
//	    Policy:    wavetable.PolicyInterpolate,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Invoked by the audio subsystem on its real-time thread with an
//	// interleaved stereo buffer.
//	callback := osc.StreamCallback(2)
//
// # Sampling Policies
//
// [PolicyTruncate] reads the table at the integer part of the phase. It is
// the cheapest policy but the index quantization produces audible harmonic
// distortion.
//
// [PolicyInterpolate] blends the two table entries adjacent to the phase,
// weighted by its fractional part. It costs one extra table read and two
// multiplies per sample and lowers distortion by orders of magnitude. The
// table carries one extra guard slot equal to slot zero so the blend at the
// upper boundary needs no branch.
//
// # Real-Time Safety
//
// [Oscillator.Synthesize] performs no allocation, takes no locks, and does
// no I/O. Scratch buffers are sized at construction (Config.MaxFrames);
// larger requests are processed in chunks with bit-identical results. The
// oscillator is single-voice: exactly one goroutine (the audio callback)
// may drive it. The wavetable itself is immutable after construction and
// needs no synchronization.
//
// # Attribution
//
// The synthesis algorithm follows the classic wavetable examples by
// Christopher Dobrian (http://music.arts.uci.edu/dobrian/CAMP07/), which
// demonstrate truncating and interpolating table lookup over a PortAudio
// callback.
package wavetable
