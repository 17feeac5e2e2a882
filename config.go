package wavetable

import (
	"errors"
	"fmt"
)

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid oscillator configuration")
)

// Config holds oscillator configuration. The zero value of every field
// except Frequency falls back to the package default, so the minimal
// useful config is Config{Frequency: 440}.
type Config struct {
	// SampleRate is the output sample rate in Hz. Defaults to
	// DefaultSampleRate.
	SampleRate float64

	// TableLength is the number of samples in one waveform cycle.
	// Defaults to DefaultTableLength. Valid range is 4 to 2^20;
	// 256-8192 covers audible-range fidelity without excessive memory.
	TableLength int

	// Frequency is the target pitch in Hz. Required, must be positive.
	// Frequencies whose per-sample phase increment exceeds the table
	// length are handled correctly (the wrap is a true modulo), they
	// just alias heavily.
	Frequency float64

	// Amplitude is the linear output gain in [0, 1]. A zero value
	// selects DefaultAmplitude.
	Amplitude float64

	// Policy selects truncating or interpolating table reads.
	Policy Policy

	// InitialPhase is the starting position within the cycle as a
	// fraction in [0, 1). The start phase index is
	// InitialPhase * TableLength.
	InitialPhase float64

	// MaxFrames hints the largest per-call frame count so scratch
	// buffers can be sized once at construction. Larger requests are
	// still handled, in chunks of this size. Zero selects
	// DefaultMaxFrames.
	MaxFrames int
}

// withDefaults returns a copy with zero-valued fields replaced by the
// package defaults.
func (c *Config) withDefaults() Config {
	cfg := *c
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.TableLength == 0 {
		cfg.TableLength = DefaultTableLength
	}
	if cfg.Amplitude == 0 {
		cfg.Amplitude = DefaultAmplitude
	}
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = DefaultMaxFrames
	}
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	if c.TableLength < minTableLength || c.TableLength > maxTableLength {
		return fmt.Errorf("%w: table length %d out of range [%d, %d]",
			ErrInvalidConfig, c.TableLength, minTableLength, maxTableLength)
	}

	if c.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive", ErrInvalidConfig)
	}

	if c.Amplitude < 0 || c.Amplitude > 1 {
		return fmt.Errorf("%w: amplitude must be in [0, 1]", ErrInvalidConfig)
	}

	if !c.Policy.valid() {
		return fmt.Errorf("%w: unknown sampling policy %d", ErrInvalidConfig, c.Policy)
	}

	if c.InitialPhase < 0 || c.InitialPhase >= 1 {
		return fmt.Errorf("%w: initial phase must be in [0, 1)", ErrInvalidConfig)
	}

	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: max frames must not be negative", ErrInvalidConfig)
	}

	return nil
}
