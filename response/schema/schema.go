package schema

import (
	"errors"
	"fmt"
)

// Errors returned by schema functions.
var (
	ErrNoPlane = errors.New("schema: no such plane")
	ErrInvalid = errors.New("schema: invalid field response")
	ErrFormat  = errors.New("schema: unrecognized field response format")
)

// PathResponse is the current induced on a wire by charge drifting along
// one path.
type PathResponse struct {
	// Current holds the induced current, one sample per period.
	Current []float64

	// PitchPos is the transverse position of the path relative to the
	// plane center.
	PitchPos float64

	// WirePos is the position of the path along the wire direction.
	WirePos float64
}

// PlaneResponse holds all path responses of one wire plane.
type PlaneResponse struct {
	Paths    []PathResponse
	PlaneID  int
	Location float64 // position of the plane along the drift axis
	Pitch    float64 // nominal wire pitch
}

// FieldResponse holds the tabulated responses of all planes together with
// the global sampling metadata shared by every path.
type FieldResponse struct {
	Planes []PlaneResponse
	Axis   [3]float64 // drift axis direction
	Origin float64    // drift origin along Axis where paths start
	TStart float64    // time of the first current sample
	Period float64    // sample period
	Speed  float64    // nominal drift speed
}

// PlaneByID returns the plane with the given ID.
func (fr *FieldResponse) PlaneByID(id int) (*PlaneResponse, error) {
	for i := range fr.Planes {
		if fr.Planes[i].PlaneID == id {
			return &fr.Planes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNoPlane, id)
}

// Samples returns the number of current samples per path, taken from the
// first path of the first plane. It returns 0 for an empty response.
func (fr *FieldResponse) Samples() int {
	for _, p := range fr.Planes {
		if len(p.Paths) > 0 {
			return len(p.Paths[0].Current)
		}
	}
	return 0
}

// Validate checks the basic shape of the response: a positive period, at
// least one plane, and non-empty paths of equal length within each plane.
// It does not check the impact layout; that is the consumer's concern.
func (fr *FieldResponse) Validate() error {
	if !(fr.Period > 0) {
		return fmt.Errorf("%w: period must be > 0: %g", ErrInvalid, fr.Period)
	}
	if len(fr.Planes) == 0 {
		return fmt.Errorf("%w: no planes", ErrInvalid)
	}

	for pi, p := range fr.Planes {
		if len(p.Paths) == 0 {
			return fmt.Errorf("%w: plane %d has no paths", ErrInvalid, pi)
		}
		n := len(p.Paths[0].Current)
		if n == 0 {
			return fmt.Errorf("%w: plane %d path 0 has no current samples", ErrInvalid, pi)
		}
		for i, path := range p.Paths {
			if len(path.Current) != n {
				return fmt.Errorf("%w: plane %d path %d has %d samples, want %d",
					ErrInvalid, pi, i, len(path.Current), n)
			}
		}
	}
	return nil
}
