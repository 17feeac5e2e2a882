// Package playback wraps the PortAudio output-stream lifecycle behind a
// small session type with a typed error for every lifecycle stage.
//
// The audio subsystem keeps timing authority: it invokes the render
// callback on its own real-time thread whenever the device needs another
// buffer. The callback receives an interleaved float32 buffer sized
// frames × channels and must return before the device deadline, so it
// must not block, allocate or lock.
package playback

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Stage identifies which part of the stream lifecycle failed.
type Stage int

const (
	// StageInitialize covers PortAudio library initialization.
	StageInitialize Stage = iota
	// StageDevice covers default output device lookup.
	StageDevice
	// StageOpen covers stream creation.
	StageOpen
	// StageStart covers starting the opened stream.
	StageStart
	// StageStop covers stopping a running stream.
	StageStop
	// StageClose covers closing the stream.
	StageClose
	// StageTerminate covers PortAudio library teardown.
	StageTerminate
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageInitialize:
		return "initialize"
	case StageDevice:
		return "device lookup"
	case StageOpen:
		return "stream open"
	case StageStart:
		return "stream start"
	case StageStop:
		return "stream stop"
	case StageClose:
		return "stream close"
	case StageTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// ErrNoOutputDevice indicates the host has no default output device.
var ErrNoOutputDevice = errors.New("no default output device")

// Error is a stream lifecycle failure. It names the failed stage and
// carries the underlying subsystem diagnostic.
type Error struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("playback: %s failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying subsystem error.
func (e *Error) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}

// Config describes the output stream format.
type Config struct {
	// SampleRate in Hz.
	SampleRate float64

	// FramesPerBuffer is the device buffer size; the render callback is
	// invoked once per buffer. Small powers of two (256) keep latency
	// low.
	FramesPerBuffer int

	// Channels is the interleaved output channel count.
	Channels int
}

// Session is an open output stream on the default device.
type Session struct {
	stream *portaudio.Stream
}

// Open initializes PortAudio and opens an output stream on the default
// device. render is invoked by PortAudio on its audio thread with the
// interleaved buffer to fill. On failure the library is torn down before
// returning, so a failed Open needs no Close.
func Open(cfg Config, render func(out []float32)) (*Session, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, stageErr(StageInitialize, err)
	}

	dev, err := portaudio.DefaultOutputDevice()
	if err != nil {
		_ = portaudio.Terminate()
		return nil, stageErr(StageDevice, err)
	}
	if dev == nil {
		_ = portaudio.Terminate()
		return nil, stageErr(StageDevice, ErrNoOutputDevice)
	}

	params := portaudio.LowLatencyParameters(nil, dev)
	params.Output.Channels = cfg.Channels
	params.SampleRate = cfg.SampleRate
	params.FramesPerBuffer = cfg.FramesPerBuffer

	stream, err := portaudio.OpenStream(params, render)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, stageErr(StageOpen, err)
	}

	return &Session{stream: stream}, nil
}

// Start begins playback: the subsystem starts invoking the render
// callback on its schedule.
func (s *Session) Start() error {
	if err := s.stream.Start(); err != nil {
		return stageErr(StageStart, err)
	}
	return nil
}

// Stop ceases playback. The callback is simply no longer invoked; no
// in-flight cancellation is needed because every call is self-contained.
func (s *Session) Stop() error {
	if err := s.stream.Stop(); err != nil {
		return stageErr(StageStop, err)
	}
	return nil
}

// Close releases the stream and tears down the library. It reports the
// first failure but always attempts both steps.
func (s *Session) Close() error {
	var firstErr error
	if err := s.stream.Close(); err != nil {
		firstErr = stageErr(StageClose, err)
	}
	if err := portaudio.Terminate(); err != nil && firstErr == nil {
		firstErr = stageErr(StageTerminate, err)
	}
	return firstErr
}
