// Command wavetone synthesizes a sine tone with a wavetable oscillator
// and plays it through the default output device.
//
// Usage:
//
//	wavetone 440                             # 1 second of A440
//	wavetone -dur 4s -policy interpolate 261.63
//	wavetone -amp 0.3 -table 4096 880
//
// The single positional argument is the target frequency in Hz.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	wavetable "github.com/tphakala/go-wavetable"
	"github.com/tphakala/go-wavetable/internal/playback"
)

const (
	defaultDuration     = time.Second
	defaultBufferFrames = 256
	outputChannels      = 2 // stereo, both channels carry the mono tone
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	amp := flag.Float64("amp", wavetable.DefaultAmplitude, "Linear amplitude (0-1)")
	dur := flag.Duration("dur", defaultDuration, "Playback duration")
	rate := flag.Float64("rate", wavetable.DefaultSampleRate, "Sample rate in Hz")
	tableLen := flag.Int("table", wavetable.DefaultTableLength, "Wavetable length in samples")
	buffer := flag.Int("buffer", defaultBufferFrames, "Device buffer size in frames")
	policyName := flag.String("policy", "truncate", "Sampling policy: truncate or interpolate")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	frequency, err := parseFrequency(flag.Args())
	if err != nil {
		printUsage()
		return err
	}

	policy, err := wavetable.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	osc, err := wavetable.New[float32](&wavetable.Config{
		SampleRate:  *rate,
		TableLength: *tableLen,
		Frequency:   frequency,
		Amplitude:   *amp,
		Policy:      policy,
		MaxFrames:   *buffer,
	})
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Sample rate: %g Hz", osc.SampleRate())
		log.Printf("Table length: %d samples", osc.TableLength())
		log.Printf("Buffer: %d frames (%.2f ms per callback)",
			*buffer, float64(*buffer)/osc.SampleRate()*1000)
		log.Printf("Policy: %s", osc.Policy())
	}

	fmt.Printf("wavetone: %.2f Hz sine, %s policy\n", frequency, policy)

	session, err := playback.Open(playback.Config{
		SampleRate:      osc.SampleRate(),
		FramesPerBuffer: *buffer,
		Channels:        outputChannels,
	}, osc.StreamCallback(outputChannels))
	if err != nil {
		return describe(err)
	}

	if err := session.Start(); err != nil {
		_ = session.Close()
		return describe(err)
	}

	time.Sleep(*dur)

	if err := session.Stop(); err != nil {
		_ = session.Close()
		return describe(err)
	}
	if err := session.Close(); err != nil {
		return describe(err)
	}

	fmt.Println("Finished.")
	return nil
}

// describe keeps the lifecycle stage visible while surfacing the
// subsystem's own diagnostic text.
func describe(err error) error {
	var pbErr *playback.Error
	if errors.As(err, &pbErr) {
		return fmt.Errorf("audio subsystem failure during %s: %w", pbErr.Stage, pbErr.Err)
	}
	return err
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] frequency\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s 440                             # 1 second of A440\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -dur 4s -policy interpolate 261.63\n", os.Args[0])
}
