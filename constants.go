package wavetable

// Default configuration values. These mirror the classic CD-quality
// wavetable setup: 44.1 kHz output, a 1024-entry table and 256-frame
// device buffers.
const (
	// DefaultSampleRate is the output sample rate in Hz.
	DefaultSampleRate = 44100.0

	// DefaultTableLength is the number of samples in one waveform cycle.
	DefaultTableLength = 1024

	// DefaultAmplitude is the linear output gain.
	DefaultAmplitude = 0.5

	// DefaultMaxFrames is the per-call frame count the oscillator's
	// scratch buffers are sized for. Requests above it are processed in
	// chunks of this size.
	DefaultMaxFrames = 256
)

// Table length limits.
//
// The lower bound only guards against degenerate tables; audible-range
// fidelity wants 256-8192 entries. The upper bound keeps a single cycle
// within cache-friendly territory.
const (
	minTableLength = 4
	maxTableLength = 1 << 20
)

// Channel count limits for Synthesize.
const (
	monoChannels   = 1
	stereoChannels = 2
	maxChannels    = 64
)
