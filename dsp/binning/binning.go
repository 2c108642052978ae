// Package binning provides a uniform one-dimensional binning over a
// half-open interval [min, max).
//
// A Binning is a small value type used to describe sampled time grids and
// transverse position grids:
//
//	tbins, err := binning.New(1000, 0, 500*units.Microsecond)
//	tick := tbins.BinSize()
//	t := tbins.Center(10)
package binning

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBinning is returned when a binning has no bins or an empty or
// inverted range.
var ErrInvalidBinning = errors.New("binning: invalid binning")

// Binning divides [min, max) into n bins of equal size.
type Binning struct {
	n        int
	min, max float64
}

// New returns a binning of n bins spanning [min, max).
func New(n int, min, max float64) (Binning, error) {
	if n <= 0 {
		return Binning{}, fmt.Errorf("%w: bin count must be > 0: %d", ErrInvalidBinning, n)
	}
	if !(max > min) || math.IsInf(max-min, 0) || math.IsNaN(max-min) {
		return Binning{}, fmt.Errorf("%w: range must satisfy min < max: [%g, %g)", ErrInvalidBinning, min, max)
	}
	return Binning{n: n, min: min, max: max}, nil
}

// Len returns the number of bins.
func (b Binning) Len() int { return b.n }

// Min returns the lower edge of the first bin.
func (b Binning) Min() float64 { return b.min }

// Max returns the upper edge of the last bin.
func (b Binning) Max() float64 { return b.max }

// Span returns max - min.
func (b Binning) Span() float64 { return b.max - b.min }

// BinSize returns the width of one bin.
func (b Binning) BinSize() float64 {
	if b.n == 0 {
		return 0
	}
	return (b.max - b.min) / float64(b.n)
}

// Edge returns the lower edge of bin i. Edge(Len()) is Max().
func (b Binning) Edge(i int) float64 {
	return b.min + float64(i)*b.BinSize()
}

// Center returns the center of bin i.
func (b Binning) Center(i int) float64 {
	return b.min + (float64(i)+0.5)*b.BinSize()
}

// Bin returns the index of the bin holding x. The result is not clamped:
// values below Min give negative indices and values at or above Max give
// indices >= Len.
func (b Binning) Bin(x float64) int {
	return int(math.Floor((x - b.min) / b.BinSize()))
}

// Inside reports whether x lies in [min, max).
func (b Binning) Inside(x float64) bool {
	return x >= b.min && x < b.max
}

// InBounds reports whether i is a valid bin index.
func (b Binning) InBounds(i int) bool {
	return i >= 0 && i < b.n
}

// String implements fmt.Stringer.
func (b Binning) String() string {
	return fmt.Sprintf("%d bins [%g, %g)", b.n, b.min, b.max)
}
