// Command render-wav renders a wavetable oscillator tone to a 16-bit PCM
// WAV file instead of playing it live.
//
// Usage:
//
//	render-wav -freq 440 -dur 2s tone.wav
//	render-wav -freq 261.63 -policy interpolate -amp 0.8 middle-c.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	wavetable "github.com/tphakala/go-wavetable"
)

const (
	defaultFrequency = 440.0
	defaultDuration  = time.Second

	outputChannels = 2
	bitDepth       = 16
	pcmFormat      = 1 // WAV audio format tag for integer PCM
	maxInt16       = 32767.0

	// Frames rendered per encoder write.
	chunkFrames = 4096

	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	freq := flag.Float64("freq", defaultFrequency, "Tone frequency in Hz")
	amp := flag.Float64("amp", wavetable.DefaultAmplitude, "Linear amplitude (0-1)")
	dur := flag.Duration("dur", defaultDuration, "Rendered duration")
	rate := flag.Float64("rate", wavetable.DefaultSampleRate, "Sample rate in Hz")
	tableLen := flag.Int("table", wavetable.DefaultTableLength, "Wavetable length in samples")
	policyName := flag.String("policy", "interpolate", "Sampling policy: truncate or interpolate")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("output path required")
	}
	outputPath := args[0]

	policy, err := wavetable.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	osc, err := wavetable.New[float64](&wavetable.Config{
		SampleRate:  *rate,
		TableLength: *tableLen,
		Frequency:   *freq,
		Amplitude:   *amp,
		Policy:      policy,
		MaxFrames:   chunkFrames,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	frames, err := render(osc, outputPath, *dur)
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %s\n", filepath.Base(outputPath))
	fmt.Printf("  %.2f Hz sine, %s policy, amplitude %.2f\n", *freq, policy, osc.Amplitude())
	fmt.Printf("  %d frames at %g Hz (%d channels, %d-bit) in %.2fs\n",
		frames, osc.SampleRate(), outputChannels, bitDepth, time.Since(start).Seconds())

	return nil
}

func render(osc *wavetable.Oscillator[float64], outputPath string, dur time.Duration) (frames int, err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("could not create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sampleRate := int(osc.SampleRate())
	enc := wav.NewEncoder(f, sampleRate, bitDepth, outputChannels, pcmFormat)
	// Close finalizes the header, so its error matters on success.
	defer func() {
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
	}()

	remaining := int(dur.Seconds() * osc.SampleRate())
	total := remaining

	synth := make([]float64, chunkFrames*outputChannels)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: outputChannels, SampleRate: sampleRate},
		Data:           make([]int, chunkFrames*outputChannels),
		SourceBitDepth: bitDepth,
	}

	for remaining > 0 {
		n := min(remaining, chunkFrames)

		chunk := synth[:n*outputChannels]
		osc.Synthesize(chunk, outputChannels)

		buf.Data = buf.Data[:n*outputChannels]
		for i, s := range chunk {
			buf.Data[i] = int(clamp(s) * maxInt16)
		}

		if err := enc.Write(buf); err != nil {
			return 0, fmt.Errorf("failed to write audio data: %w", err)
		}
		remaining -= n
	}

	return total, nil
}

func clamp(s float64) float64 {
	if s > 1.0 {
		return 1.0
	}
	if s < -1.0 {
		return -1.0
	}
	return s
}
