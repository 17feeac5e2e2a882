// Package analysis provides spectral measurements used to compare the
// oscillator's sampling policies: magnitude spectra, harmonic distortion
// and signal level.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-wavetable/internal/simdops"
)

// minDB is the floor returned by DB for zero or denormal magnitudes.
const minDB = -200.0

// MagnitudeSpectrum returns the single-sided magnitude spectrum of the
// samples, normalized so a full-scale sine at an exact bin frequency
// measures 1.0 at its bin. The result has len(samples)/2 + 1 bins.
func MagnitudeSpectrum(samples []float64) []float64 {
	n := len(samples)
	if n == 0 {
		return nil
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	// Single-sided scaling: interior bins carry the energy of both the
	// positive and negative frequency, DC and Nyquist do not.
	mags := make([]float64, len(coeffs))
	scale := 2.0 / float64(n)
	for i, c := range coeffs {
		m := math.Hypot(real(c), imag(c)) * scale
		if i == 0 || (n%2 == 0 && i == len(coeffs)-1) {
			m /= 2
		}
		mags[i] = m
	}
	return mags
}

// THD returns total harmonic distortion: the ratio of the RMS sum of the
// given number of harmonics (2f, 3f, ...) to the fundamental's magnitude.
// fundamental should line up with an FFT bin (frequency = k·rate/n) for a
// leakage-free measurement.
func THD(samples []float64, sampleRate, fundamental float64, harmonics int) float64 {
	mags := MagnitudeSpectrum(samples)
	if len(mags) == 0 {
		return 0
	}

	n := len(samples)
	bin := func(f float64) int {
		return int(math.Round(f * float64(n) / sampleRate))
	}

	f0 := bin(fundamental)
	if f0 <= 0 || f0 >= len(mags) || mags[f0] == 0 {
		return 0
	}

	var harmonicPower float64
	for h := 2; h <= harmonics+1; h++ {
		k := bin(float64(h) * fundamental)
		if k >= len(mags) {
			break
		}
		harmonicPower += mags[k] * mags[k]
	}

	return math.Sqrt(harmonicPower) / mags[f0]
}

// RMS returns the root-mean-square level of the samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	ops := simdops.Float64Ops()
	power := ops.DotProductUnsafe(samples, samples)
	return math.Sqrt(power / float64(len(samples)))
}

// DB converts a linear magnitude ratio to decibels, clamped at a floor
// for zero input.
func DB(x float64) float64 {
	if x <= 0 {
		return minDB
	}
	db := 20 * math.Log10(x)
	if db < minDB {
		return minDB
	}
	return db
}
