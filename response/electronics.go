package response

import (
	"math"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/units"
)

// Generator samples a time-domain impulse response.
type Generator interface {
	// Generate returns one sample per bin of tbins, taken at bin centers.
	Generate(tbins binning.Binning) []float64
}

// ColdElec is the cold-electronics shaping response.
//
// Gain is the peak amplitude of the response (for example in mV/fC) and
// Shaping is the shaping time in internal time units.
type ColdElec struct {
	Gain    float64
	Shaping float64
}

// coldElecValidity bounds the time range over which the parameterisation
// holds.
const coldElecValidity = 10 * units.Microsecond

// Value returns the response at time t. It is zero outside (0, 10us).
func (c ColdElec) Value(t float64) float64 {
	return ColdElecValue(t, c.Gain, c.Shaping)
}

// Generate implements [Generator].
func (c ColdElec) Generate(tbins binning.Binning) []float64 {
	out := make([]float64, tbins.Len())
	for i := range out {
		out[i] = c.Value(tbins.Center(i))
	}
	return out
}

// ColdElecValue evaluates the cold-electronics response at time t for the
// given gain and shaping time.
func ColdElecValue(t, gain, shaping float64) float64 {
	if t <= 0 || t >= coldElecValidity || shaping <= 0 {
		return 0
	}

	r := t / shaping

	// Normalizes the peak of the shaped response to gain.
	g := gain * 10 * 1.012

	e1 := math.Exp(-2.94809 * r)
	e2 := math.Exp(-2.82833 * r)
	e3 := math.Exp(-2.40318 * r)

	c1, s1 := math.Cos(1.19361*r), math.Sin(1.19361*r)
	c2, s2 := math.Cos(2.38722*r), math.Sin(2.38722*r)
	c3, s3 := math.Cos(2.5928*r), math.Sin(2.5928*r)
	c4, s4 := math.Cos(5.18561*r), math.Sin(5.18561*r)

	v := 4.31054 * e1
	v += e2 * (-2.6202*c1 - 2.6202*c1*c2 + 0.762456*s1 - 0.762456*c2*s1 + 0.762456*c1*s2 - 2.6202*s1*s2)
	v += e3 * (0.464924*c3 + 0.464924*c3*c4 - 0.327684*s3 + 0.327684*c4*s3 - 0.327684*c3*s4 + 0.464924*s3*s4)

	return v * g
}
