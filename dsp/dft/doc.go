// Package dft provides fixed-length discrete Fourier transforms of real
// sequences and elementwise spectrum arithmetic.
//
// A [Transform] is created once for a given length and reused for every
// sequence of that length:
//
//	tr, err := dft.NewTransform(len(wave))
//	spec, err := tr.Forward(nil, wave)
//	err = dft.MultiplyInPlace(spec, kernelSpec)
//	wave, err = tr.Inverse(nil, spec)
//
// # Backends
//
// Power-of-two lengths are planned with algo-fft. Every other length falls
// back to gonum's mixed-radix complex FFT, so sampled grids never need to be
// padded. Both backends use the forward convention
//
//	X[k] = sum_n x[n] exp(-2*pi*i*k*n/N)
//
// and [Transform.Inverse] applies the 1/N normalization.
package dft
