package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// GaussianPulse samples amp*exp(-((i-center)/width)^2/2) for i in [0, length).
func GaussianPulse(length int, center, width, amp float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		z := (float64(i) - center) / width
		out[i] = amp * math.Exp(-z*z/2)
	}
	return out
}

// NaiveDFT computes the forward DFT of x directly in O(N^2). It is the
// reference for transform tests.
func NaiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			phase := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, phase))
		}
		out[k] = sum
	}
	return out
}
