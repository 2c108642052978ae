package impact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/cwbudde/algo-response/response/schema"
)

// layout is the validated impact organization of one plane.
type layout struct {
	impactSpacing float64
	wireSpacing   float64
	halfExtent    float64
	halfWires     int

	// groups maps a relative wire number to its path indices in
	// increasing pitch order.
	groups map[int][]int
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedTabulation}, args...)...)
}

// analyzeLayout checks the tabulation assumptions the row reconstruction
// relies on and derives the plane geometry.
func analyzeLayout(pr *schema.PlaneResponse, nPer int, tol float64) (layout, error) {
	paths := pr.Paths
	npaths := len(paths)

	if nPer < 2 {
		return layout{}, malformed("need at least 2 impacts per wire, got %d", nPer)
	}
	if npaths < nPer {
		return layout{}, malformed("plane has %d paths, need at least %d", npaths, nPer)
	}
	if npaths%nPer != 0 {
		return layout{}, malformed("%d paths is not a multiple of %d impacts per wire", npaths, nPer)
	}
	if !(pr.Pitch > 0) {
		return layout{}, malformed("nominal wire pitch must be > 0: %g", pr.Pitch)
	}

	nsamples := len(paths[0].Current)
	if nsamples == 0 {
		return layout{}, malformed("path 0 has no current samples")
	}
	for i := range paths {
		if len(paths[i].Current) != nsamples {
			return layout{}, malformed("path %d has %d current samples, want %d", i, len(paths[i].Current), nsamples)
		}
		if i > 0 && !(paths[i].PitchPos > paths[i-1].PitchPos) {
			return layout{}, malformed("pitch positions not strictly increasing at path %d: %g after %g",
				i, paths[i].PitchPos, paths[i-1].PitchPos)
		}
	}

	lay := layout{
		impactSpacing: math.Abs(paths[1].PitchPos - paths[0].PitchPos),
		wireSpacing:   2 * math.Abs(paths[nPer-1].PitchPos-paths[0].PitchPos),
		halfExtent:    math.Max(math.Abs(paths[0].PitchPos), math.Abs(paths[npaths-1].PitchPos)),
		halfWires:     npaths / nPer / 2,
		groups:        make(map[int][]int),
	}

	if !scalar.EqualWithinAbsOrRel(lay.wireSpacing, pr.Pitch, tol, tol) {
		return layout{}, malformed("wire spacing %g implied by impacts does not match nominal pitch %g",
			lay.wireSpacing, pr.Pitch)
	}

	for i := range paths {
		wire := int(math.Ceil(paths[i].PitchPos / pr.Pitch))
		lay.groups[wire] = append(lay.groups[wire], i)
	}

	nwires := 2*lay.halfWires + 1
	if len(lay.groups) != nwires || npaths != nwires*nPer {
		return layout{}, malformed("%d paths fall on %d wires, want %d wires of %d impacts symmetric about the center",
			npaths, len(lay.groups), nwires, nPer)
	}

	for w := -lay.halfWires; w <= lay.halfWires; w++ {
		group := lay.groups[w]
		if len(group) != nPer {
			return layout{}, malformed("relative wire %d has %d impacts, want %d", w, len(group), nPer)
		}
		for j := 1; j < len(group); j++ {
			d := paths[group[j]].PitchPos - paths[group[j-1]].PitchPos
			if !scalar.EqualWithinAbsOrRel(d, lay.impactSpacing, tol, tol) {
				return layout{}, malformed("relative wire %d: impact spacing %g at path %d, want %g",
					w, d, group[j], lay.impactSpacing)
			}
		}
		if w > -lay.halfWires {
			prev := lay.groups[w-1]
			d := paths[group[0]].PitchPos - paths[prev[0]].PitchPos
			if !scalar.EqualWithinAbsOrRel(d, lay.wireSpacing, tol, tol) {
				return layout{}, malformed("relative wire %d: wire spacing %g, want %g", w, d, lay.wireSpacing)
			}
		}
	}

	return lay, nil
}

// rows builds one row per relative wire -H..H: the wire's own impacts
// followed by the mirrored impacts of the opposite wire, without the
// duplicate at the wire position.
func (lay layout) rows() [][]int {
	rows := make([][]int, 0, 2*lay.halfWires+1)
	for w := -lay.halfWires; w <= lay.halfWires; w++ {
		direct := lay.groups[w]
		other := lay.groups[-w]

		row := make([]int, 0, len(direct)+len(other)-1)
		row = append(row, direct...)
		for i := len(other) - 2; i >= 0; i-- {
			row = append(row, other[i])
		}
		rows = append(rows, row)
	}
	return rows
}
