package wavetable

import "time"

// NewTruncating creates a truncating oscillator at the given frequency
// with package defaults for everything else.
func NewTruncating[F Float](frequency float64) (*Oscillator[F], error) {
	return New[F](&Config{Frequency: frequency, Policy: PolicyTruncate})
}

// NewInterpolating creates a linearly interpolating oscillator at the
// given frequency with package defaults for everything else.
func NewInterpolating[F Float](frequency float64) (*Oscillator[F], error) {
	return New[F](&Config{Frequency: frequency, Policy: PolicyInterpolate})
}

// RenderTone synthesizes duration's worth of mono samples at the default
// sample rate in one shot. A zero amplitude selects DefaultAmplitude,
// matching Config semantics. Intended for offline use (tests, file
// rendering, analysis); streaming callers should hold an Oscillator and
// call Synthesize per buffer instead.
func RenderTone[F Float](frequency, amplitude float64, duration time.Duration, policy Policy) ([]F, error) {
	osc, err := New[F](&Config{
		Frequency: frequency,
		Amplitude: amplitude,
		Policy:    policy,
	})
	if err != nil {
		return nil, err
	}

	frames := int(duration.Seconds() * osc.SampleRate())
	out := make([]F, frames)
	osc.Synthesize(out, monoChannels)
	return out, nil
}
