package engine

import (
	"github.com/tphakala/go-wavetable/internal/mathutil"
	"github.com/tphakala/go-wavetable/internal/simdops"
)

// Osc is the phase-accumulator oscillator core. It owns an immutable
// wavetable and a real-valued table index (the phase) that advances by a
// frequency-derived increment per sample and wraps modulo the table
// length.
//
// Synthesize is allocation-free and lock-free: all scratch space is sized
// at construction, so the core is safe to drive directly from a real-time
// audio callback. Exactly one goroutine may drive an Osc; the phase is
// unsynchronized state.
type Osc[F simdops.Float] struct {
	table  []F
	length float64 // table length excluding the guard slot
	phase  float64 // current table index, in [0, length)
	start  float64 // initial phase, restored by SetPhase/reset
	step   float64 // per-sample phase increment
	amp    F
	interp bool

	scratch []F // mono fill buffer, amplitude applied in place
	ops     *simdops.Ops[F]
}

// NewOsc builds an oscillator core over a prebuilt table.
//
// length is the cycle length; with interp set, table must carry the guard
// slot (len(table) == length+1), otherwise len(table) == length. maxFrames
// hints the largest per-call frame count; larger requests are chunked.
// Argument validation is the caller's contract, violations panic.
func NewOsc[F simdops.Float](table []F, length int, frequency, amplitude, sampleRate, startPhase float64, interp bool, maxFrames int) *Osc[F] {
	if length <= 0 {
		panic("engine: table length must be positive")
	}
	want := length
	if interp {
		want++
	}
	if len(table) != want {
		panic("engine: table size does not match length and policy")
	}
	if sampleRate <= 0 {
		panic("engine: sample rate must be positive")
	}
	if startPhase < 0 || startPhase >= float64(length) {
		panic("engine: start phase out of table range")
	}

	if maxFrames <= 0 {
		maxFrames = defaultScratchFrames
	}
	if maxFrames < minScratchFrames {
		maxFrames = minScratchFrames
	}

	return &Osc[F]{
		table:   table,
		length:  float64(length),
		phase:   startPhase,
		start:   startPhase,
		step:    mathutil.PhaseIncrement(frequency, float64(length), sampleRate),
		amp:     F(amplitude),
		interp:  interp,
		scratch: make([]F, maxFrames),
		ops:     simdops.For[F](),
	}
}

// Synthesize fills out with len(out)/channels frames, duplicating the mono
// signal into every channel slot of each frame. The phase persists across
// calls, so consecutive calls produce one continuous tone regardless of
// how the frames are split between them.
//
// channels must be at least 1 and len(out) must be a multiple of channels;
// both are caller contract violations and panic.
func (o *Osc[F]) Synthesize(out []F, channels int) {
	if channels < monoChannels {
		panic("engine: channel count must be at least 1")
	}
	if len(out)%channels != 0 {
		panic("engine: buffer length is not a multiple of the channel count")
	}

	frames := len(out) / channels
	for frames > 0 {
		n := min(frames, len(o.scratch))
		chunk := o.scratch[:n]

		o.fill(chunk)
		o.ops.Scale(chunk, chunk, o.amp)

		switch channels {
		case monoChannels:
			copy(out[:n], chunk)
		case stereoChannels:
			o.ops.Interleave2(out[:2*n], chunk, chunk)
		default:
			for i, y := range chunk {
				base := i * channels
				for ch := 0; ch < channels; ch++ {
					out[base+ch] = y
				}
			}
		}

		out = out[n*channels:]
		frames -= n
	}
}

// fill writes n unscaled samples into dst, advancing and wrapping the
// phase once per sample.
func (o *Osc[F]) fill(dst []F) {
	phase := o.phase
	if o.interp {
		for i := range dst {
			j := int(phase)
			f := phase - float64(j)
			y := (1-f)*float64(o.table[j]) + f*float64(o.table[j+1])
			dst[i] = F(y)
			phase = mathutil.WrapPhase(phase+o.step, o.length)
		}
	} else {
		for i := range dst {
			dst[i] = o.table[int(phase)]
			phase = mathutil.WrapPhase(phase+o.step, o.length)
		}
	}
	o.phase = phase
}

// Phase returns the current table index in [0, tableLength).
func (o *Osc[F]) Phase() float64 {
	return o.phase
}

// Reset rewinds the phase to the initial phase given at construction.
func (o *Osc[F]) Reset() {
	o.phase = o.start
}

// Step returns the per-sample phase increment.
func (o *Osc[F]) Step() float64 {
	return o.step
}
