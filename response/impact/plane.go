package impact

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/dsp/dft"
	"github.com/cwbudde/algo-response/response/schema"
)

// Errors returned by plane construction.
var (
	ErrNoFieldResponse     = errors.New("impact: nil field response")
	ErrNoPlane             = errors.New("impact: no such plane")
	ErrMalformedTabulation = errors.New("impact: malformed tabulation")
	ErrBinOutOfRange       = errors.New("impact: field response sample outside time binning")
)

// BinRangeError reports a native current sample whose time falls outside
// the target time binning. The tabulation timing and the binning are
// incompatible; no plane can be built.
type BinRangeError struct {
	Sample int     // native sample index
	Time   float64 // sample time
	Bin    int     // target bin the sample maps to
	Bins   int     // number of target bins
	Tick   float64 // target bin size
}

func (e *BinRangeError) Error() string {
	return fmt.Sprintf("%v: sample %d at time %g maps to bin %d of %d (tick %g)",
		ErrBinOutOfRange, e.Sample, e.Time, e.Bin, e.Bins, e.Tick)
}

// Unwrap returns ErrBinOutOfRange.
func (e *BinRangeError) Unwrap() error { return ErrBinOutOfRange }

// Plane holds the precomputed responses of one wire plane.
type Plane struct {
	fr    *schema.FieldResponse
	index int
	tbins binning.Binning

	impactSpacing float64
	wireSpacing   float64
	halfExtent    float64

	// responses is indexed by path index; rows hold indices into it.
	responses []Response
	rows      [][]int

	logs logs
}

// NewPlane builds the responses of fr.Planes[index] sampled on tbins.
func NewPlane(fr *schema.FieldResponse, index int, tbins binning.Binning, opts ...Option) (*Plane, error) {
	return newPlane(fr, index, tbins, ApplyOptions(opts...))
}

func newPlane(fr *schema.FieldResponse, index int, tbins binning.Binning, cfg Config) (*Plane, error) {
	if fr == nil {
		return nil, ErrNoFieldResponse
	}
	if index < 0 || index >= len(fr.Planes) {
		return nil, fmt.Errorf("%w: index %d of %d planes", ErrNoPlane, index, len(fr.Planes))
	}
	if tbins.Len() == 0 {
		return nil, fmt.Errorf("impact: %w: no time bins", binning.ErrInvalidBinning)
	}
	if !(fr.Period > 0) {
		return nil, malformed("sample period must be > 0: %g", fr.Period)
	}

	pr := &fr.Planes[index]
	lay, err := analyzeLayout(pr, cfg.ImpactsPerWire, cfg.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("plane %d: %w", index, err)
	}

	sampleBins, err := resampleBins(fr, len(pr.Paths[0].Current), tbins)
	if err != nil {
		return nil, fmt.Errorf("plane %d: %w", index, err)
	}

	tr, err := dft.NewTransform(tbins.Len())
	if err != nil {
		return nil, fmt.Errorf("impact: %w", err)
	}

	var elec []complex128
	if cfg.Electronics != nil {
		elec, err = tr.Forward(nil, cfg.Electronics.Generate(tbins))
		if err != nil {
			return nil, fmt.Errorf("impact: electronics spectrum: %w", err)
		}
	}

	p := &Plane{
		fr:            fr,
		index:         index,
		tbins:         tbins,
		impactSpacing: lay.impactSpacing,
		wireSpacing:   lay.wireSpacing,
		halfExtent:    lay.halfExtent,
		responses:     make([]Response, 0, len(pr.Paths)),
		rows:          lay.rows(),
		logs:          newLogs(cfg.OpsLog, cfg.DiagLog),
	}

	wave := make([]float64, tbins.Len())
	for ipath := range pr.Paths {
		for i := range wave {
			wave[i] = 0
		}
		for r, v := range pr.Paths[ipath].Current {
			wave[sampleBins[r]] += v
		}

		spec, err := tr.Forward(nil, wave)
		if err != nil {
			return nil, fmt.Errorf("impact: path %d: %w", ipath, err)
		}
		if elec != nil {
			if err := dft.MultiplyInPlace(spec, elec); err != nil {
				return nil, fmt.Errorf("impact: path %d: %w", ipath, err)
			}
		}

		p.responses = append(p.responses, NewResponse(ipath, spec))
	}

	p.logs.diagf("plane %d (id %d): %d paths, %d wires x %d impacts, impact %g, pitch %g, half extent %g, electronics %t",
		index, pr.PlaneID, len(pr.Paths), len(p.rows), p.RowLen(),
		p.impactSpacing, p.wireSpacing, p.halfExtent, elec != nil)

	return p, nil
}

// resampleBins maps every native current sample to the target bin it is
// accumulated into. Samples are taken at the centers of the native
// binning, which starts at fr.TStart with one bin per period.
func resampleBins(fr *schema.FieldResponse, nsamples int, tbins binning.Binning) ([]int, error) {
	native, err := binning.New(nsamples, fr.TStart, fr.TStart+float64(nsamples)*fr.Period)
	if err != nil {
		return nil, malformed("native sampling: %v", err)
	}

	bins := make([]int, nsamples)
	for r := range bins {
		t := native.Center(r)
		bin := tbins.Bin(t)
		if !tbins.InBounds(bin) {
			return nil, &BinRangeError{
				Sample: r,
				Time:   t,
				Bin:    bin,
				Bins:   tbins.Len(),
				Tick:   tbins.BinSize(),
			}
		}
		bins[r] = bin
	}
	return bins, nil
}

// FieldResponse returns the tabulation the plane was built from.
func (p *Plane) FieldResponse() *schema.FieldResponse { return p.fr }

// Index returns the index of the plane in the field response.
func (p *Plane) Index() int { return p.index }

// PlaneID returns the ID of the tabulated plane.
func (p *Plane) PlaneID() int { return p.fr.Planes[p.index].PlaneID }

// Binning returns the time binning of the responses.
func (p *Plane) Binning() binning.Binning { return p.tbins }

// ImpactSpacing returns the distance between adjacent impact positions.
func (p *Plane) ImpactSpacing() float64 { return p.impactSpacing }

// WireSpacing returns the distance between adjacent wires.
func (p *Plane) WireSpacing() float64 { return p.wireSpacing }

// HalfExtent returns the largest absolute pitch covered by the tabulation.
// Lookups are defined on [-HalfExtent, HalfExtent].
func (p *Plane) HalfExtent() float64 { return p.halfExtent }

// NumWires returns the number of wire rows.
func (p *Plane) NumWires() int { return len(p.rows) }

// RowLen returns the number of impact positions in each row.
func (p *Plane) RowLen() int {
	if len(p.rows) == 0 {
		return 0
	}
	return len(p.rows[0])
}

// Responses returns all responses in path order. The slice is shared and
// must not be modified.
func (p *Plane) Responses() []Response { return p.responses }

// Response returns the response of path i, or nil if i is out of range.
func (p *Plane) Response(i int) *Response {
	if i < 0 || i >= len(p.responses) {
		return nil
	}
	return &p.responses[i]
}

// Row returns a copy of the path indices of wire row i, ordered by
// increasing pitch, or nil if i is out of range.
func (p *Plane) Row(i int) []int {
	if i < 0 || i >= len(p.rows) {
		return nil
	}
	return append([]int(nil), p.rows[i]...)
}

// Position returns the pitch position represented by entry imp of row.
func (p *Plane) Position(row, imp int) float64 {
	center := len(p.rows) / 2
	return float64(row-center)*p.wireSpacing + float64(imp-p.RowLen()/2)*p.impactSpacing
}
