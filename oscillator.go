package wavetable

import (
	"fmt"

	"github.com/tphakala/go-wavetable/internal/engine"
)

// Oscillator synthesizes a continuous tone by walking its wavetable at a
// frequency-derived rate. It is single-voice: one table, one phase, with
// the mono signal duplicated into every output channel.
//
// The phase persists across Synthesize calls, so consecutive calls emit
// one phase-continuous tone no matter how the frames are split between
// them. Exactly one goroutine — in the streaming case, the audio
// subsystem's callback thread — may drive an Oscillator.
type Oscillator[F Float] struct {
	cfg   Config
	table *Table[F]
	core  *engine.Osc[F]
}

// New creates an oscillator from the configuration, building its
// wavetable in the process. The returned oscillator is immediately
// producing: there is no further lifecycle beyond Synthesize calls.
func New[F Float](config *Config) (*Oscillator[F], error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	cfg := config.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := NewSineTable[F](cfg.TableLength, cfg.Policy)
	if err != nil {
		return nil, err
	}

	core := engine.NewOsc(
		table.samples, table.length,
		cfg.Frequency, cfg.Amplitude, cfg.SampleRate,
		cfg.InitialPhase*float64(table.length),
		cfg.Policy == PolicyInterpolate,
		cfg.MaxFrames,
	)

	return &Oscillator[F]{cfg: cfg, table: table, core: core}, nil
}

// Synthesize fills out with len(out)/channels frames of the tone,
// writing the same value into every channel slot of a frame. It performs
// no allocation, locking, blocking or I/O and is safe to call from a
// real-time audio callback.
//
// channels must be in [1, 64] and len(out) must be a multiple of
// channels. Violations are programming errors and panic; there are no
// runtime error returns on the synthesis path.
func (o *Oscillator[F]) Synthesize(out []F, channels int) {
	if channels < monoChannels || channels > maxChannels {
		panic("wavetable: channel count out of range")
	}
	o.core.Synthesize(out, channels)
}

// StreamCallback returns a closure matching the audio subsystem's render
// signature: it fills the interleaved buffer it is handed with
// len(out)/channels frames. With F = float32 the closure plugs directly
// into a PortAudio-style output stream callback.
func (o *Oscillator[F]) StreamCallback(channels int) func(out []F) {
	return func(out []F) {
		o.Synthesize(out, channels)
	}
}

// Phase returns the current table index, in [0, TableLength()).
func (o *Oscillator[F]) Phase() float64 {
	return o.core.Phase()
}

// Reset rewinds the phase to the configured initial phase.
func (o *Oscillator[F]) Reset() {
	o.core.Reset()
}

// Frequency returns the target pitch in Hz.
func (o *Oscillator[F]) Frequency() float64 {
	return o.cfg.Frequency
}

// Amplitude returns the linear output gain.
func (o *Oscillator[F]) Amplitude() float64 {
	return o.cfg.Amplitude
}

// SampleRate returns the output sample rate in Hz.
func (o *Oscillator[F]) SampleRate() float64 {
	return o.cfg.SampleRate
}

// TableLength returns the wavetable cycle length.
func (o *Oscillator[F]) TableLength() int {
	return o.table.Length()
}

// Policy returns the sampling policy in use.
func (o *Oscillator[F]) Policy() Policy {
	return o.cfg.Policy
}

// Table returns the oscillator's wavetable for inspection. The table is
// immutable and shared with the synthesis core.
func (o *Oscillator[F]) Table() *Table[F] {
	return o.table
}
