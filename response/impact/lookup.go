package impact

import "math"

// Locate maps a pitch offset relative to the plane center to the nearest
// wire row and the nearest impact entry within that row. pitch must be
// finite.
//
// An offset exactly half way past the outermost wire rounds outwards; it is
// folded back onto the outermost row, where it lands on the row edge. The
// result always indexes a populated entry.
func (p *Plane) Locate(pitch float64) (row, imp int) {
	center := len(p.rows) / 2

	rel := int(math.Round(pitch / p.wireSpacing))
	if rel > center {
		rel = center
	} else if rel < -center {
		rel = -center
	}

	rem := pitch - float64(rel)*p.wireSpacing
	imp = int(math.Round(rem/p.impactSpacing)) + p.RowLen()/2
	imp = max(0, min(imp, p.RowLen()-1))
	return center + rel, imp
}

// Contains reports whether pitch lies in [-HalfExtent, HalfExtent].
func (p *Plane) Contains(pitch float64) bool {
	return pitch >= -p.halfExtent && pitch <= p.halfExtent
}

// Closest returns the response tabulated nearest to pitch, or nil if pitch
// is outside the plane.
func (p *Plane) Closest(pitch float64) *Response {
	if !p.contains("closest", pitch) {
		return nil
	}

	row, imp := p.Locate(pitch)
	return &p.responses[p.rows[row][imp]]
}

// Bounded returns the two responses whose positions bracket pitch, in
// increasing pitch order, or two nils if pitch is outside the plane. At the
// edge of a row it returns the two outermost entries of that row.
func (p *Plane) Bounded(pitch float64) (lo, hi *Response) {
	row, ilo, ihi, ok := p.bracket(pitch)
	if !ok {
		return nil, nil
	}
	r := p.rows[row]
	return &p.responses[r[ilo]], &p.responses[r[ihi]]
}

// Interpolated returns the spectrum linearly interpolated in pitch between
// the two responses returned by Bounded, or nil if pitch is outside the
// plane.
func (p *Plane) Interpolated(pitch float64) []complex128 {
	row, ilo, ihi, ok := p.bracket(pitch)
	if !ok {
		return nil
	}

	x0 := p.Position(row, ilo)
	x1 := p.Position(row, ihi)
	w := (pitch - x0) / (x1 - x0)
	w = math.Max(0, math.Min(1, w))

	a := p.responses[p.rows[row][ilo]].spectrum
	b := p.responses[p.rows[row][ihi]].spectrum
	out := make([]complex128, len(a))
	cw := complex(w, 0)
	for i := range out {
		out[i] = a[i] + cw*(b[i]-a[i])
	}
	return out
}

// bracket returns the row and the two row entries around pitch.
func (p *Plane) bracket(pitch float64) (row, lo, hi int, ok bool) {
	if !p.contains("bounded", pitch) {
		return 0, 0, 0, false
	}

	row, imp := p.Locate(pitch)

	last := len(p.rows[row]) - 1
	switch {
	case imp == 0:
		return row, 0, 1, true
	case imp == last:
		return row, last - 1, last, true
	case pitch > p.Position(row, imp):
		return row, imp, imp + 1, true
	default:
		return row, imp - 1, imp, true
	}
}

// contains is Contains with queries outside the plane logged on the ops
// stream. Inside the plane Locate always lands on a populated entry.
func (p *Plane) contains(op string, pitch float64) bool {
	if p.Contains(pitch) {
		return true
	}
	p.logs.opsf("%s: relative pitch %g outside of plane half extent %g", op, pitch, p.halfExtent)
	return false
}
