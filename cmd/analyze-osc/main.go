// Command analyze-osc measures the spectral quality of the two table
// sampling policies across several table lengths and prints a comparison.
package main

import (
	"fmt"
	"log"

	wavetable "github.com/tphakala/go-wavetable"
	"github.com/tphakala/go-wavetable/internal/analysis"
)

const (
	// FFT length for the measurement; the analysis frequency is aligned
	// to bin fundamentalBin for a leakage-free spectrum.
	fftSize        = 65536
	fundamentalBin = 1024

	sampleRate = wavetable.DefaultSampleRate
	harmonics  = 10
	amplitude  = 1.0
)

var tableLengths = []int{256, 1024, 4096}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fundamental := sampleRate * fundamentalBin / fftSize

	fmt.Println("=== Wavetable Policy Distortion ===")
	fmt.Printf("Tone: %.4f Hz, %d samples at %g Hz, %d harmonics measured\n\n",
		fundamental, fftSize, sampleRate, harmonics)

	fmt.Printf("%-8s  %-12s  %12s  %12s  %10s\n",
		"table", "policy", "THD", "THD (dB)", "RMS")

	for _, length := range tableLengths {
		for _, policy := range []wavetable.Policy{wavetable.PolicyTruncate, wavetable.PolicyInterpolate} {
			samples, err := synthesize(length, fundamental, policy)
			if err != nil {
				return err
			}

			thd := analysis.THD(samples, sampleRate, fundamental, harmonics)
			fmt.Printf("%-8d  %-12s  %12.3e  %12.2f  %10.6f\n",
				length, policy, thd, analysis.DB(thd), analysis.RMS(samples))
		}
	}

	fmt.Println("\nInterpolation trades one extra table read and two multiplies")
	fmt.Println("per sample for the THD drop shown above.")
	return nil
}

func synthesize(tableLength int, frequency float64, policy wavetable.Policy) ([]float64, error) {
	osc, err := wavetable.New[float64](&wavetable.Config{
		TableLength: tableLength,
		Frequency:   frequency,
		Amplitude:   amplitude,
		Policy:      policy,
	})
	if err != nil {
		return nil, err
	}

	out := make([]float64, fftSize)
	osc.Synthesize(out, 1)
	return out, nil
}
