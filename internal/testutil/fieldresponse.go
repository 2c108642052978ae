package testutil

import (
	"math"

	"github.com/cwbudde/algo-response/response/schema"
)

// PlaneLayout describes a synthetic wire-plane tabulation.
//
// Wires are numbered -HalfWires..HalfWires. Each wire w carries
// ImpactsPerWire paths spaced uniformly from w*Pitch - Pitch/2 up to and
// including w*Pitch, which is the layout the impact engine expects.
type PlaneLayout struct {
	HalfWires      int
	ImpactsPerWire int
	Pitch          float64
	Samples        int     // current samples per path
	TStart         float64 // time of the first sample
	Period         float64 // sample period
}

// ImpactSpacing returns the distance between adjacent impacts of one wire.
func (l PlaneLayout) ImpactSpacing() float64 {
	return l.Pitch / 2 / float64(l.ImpactsPerWire-1)
}

// Positions returns the pitch positions of all paths in tabulation order.
func (l PlaneLayout) Positions() []float64 {
	d := l.ImpactSpacing()
	out := make([]float64, 0, (2*l.HalfWires+1)*l.ImpactsPerWire)
	for w := -l.HalfWires; w <= l.HalfWires; w++ {
		for j := 0; j < l.ImpactsPerWire; j++ {
			out = append(out, float64(w)*l.Pitch-float64(l.ImpactsPerWire-1-j)*d)
		}
	}
	return out
}

// PathCurrent returns a smooth current trace that depends on the absolute
// pitch position only, so a tabulation built from it is mirror symmetric.
func (l PlaneLayout) PathCurrent(pos float64) []float64 {
	a := math.Abs(pos) / l.Pitch
	center := float64(l.Samples)/4 + 2*a
	return GaussianPulse(l.Samples, center, 2+a/4, 1/(1+a))
}

// Plane builds the plane response for the layout.
func (l PlaneLayout) Plane(id int) schema.PlaneResponse {
	pos := l.Positions()
	plane := schema.PlaneResponse{
		Paths:   make([]schema.PathResponse, 0, len(pos)),
		PlaneID: id,
		Pitch:   l.Pitch,
	}
	for _, p := range pos {
		plane.Paths = append(plane.Paths, schema.PathResponse{
			Current:  l.PathCurrent(p),
			PitchPos: p,
		})
	}
	return plane
}

// FieldResponse builds a field response with nplanes identical planes.
func (l PlaneLayout) FieldResponse(nplanes int) *schema.FieldResponse {
	fr := &schema.FieldResponse{
		Axis:   [3]float64{1, 0, 0},
		TStart: l.TStart,
		Period: l.Period,
	}
	for i := 0; i < nplanes; i++ {
		fr.Planes = append(fr.Planes, l.Plane(i))
	}
	return fr
}
