package schema

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-response/units"
)

// File-level units.
const (
	fileTime   = units.Microsecond
	fileLength = units.Millimeter
	fileSpeed  = units.Millimeter / units.Microsecond
)

type jsonField struct {
	FieldResponse *jsonFieldBody `json:"FieldResponse"`
}

type jsonFieldBody struct {
	Planes []jsonPlane `json:"planes"`
	Axis   []float64   `json:"axis"`
	Origin float64     `json:"origin"`
	TStart float64     `json:"tstart"`
	Period float64     `json:"period"`
	Speed  float64     `json:"speed"`
}

type jsonPlane struct {
	PlaneResponse *jsonPlaneBody `json:"PlaneResponse"`
}

type jsonPlaneBody struct {
	Paths    []jsonPath `json:"paths"`
	PlaneID  int        `json:"planeid"`
	Location float64    `json:"location"`
	Pitch    float64    `json:"pitch"`
}

type jsonPath struct {
	PathResponse *jsonPathBody `json:"PathResponse"`
}

type jsonPathBody struct {
	Current  jsonArray `json:"current"`
	PitchPos float64   `json:"pitchpos"`
	WirePos  float64   `json:"wirepos"`
}

type jsonArray struct {
	Array struct {
		Elements []float64 `json:"elements"`
		Shape    []int     `json:"shape,omitempty"`
	} `json:"array"`
}

// Load reads a field response file. Files ending in .gz or .bz2 are
// decompressed transparently.
func Load(path string) (*FieldResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: open field response: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("schema: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".bz2"):
		r = bzip2.NewReader(f)
	}

	fr, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", path, err)
	}
	return fr, nil
}

// Decode reads one boxed JSON field response from r, converts it to
// internal units and validates its shape.
func Decode(r io.Reader) (*FieldResponse, error) {
	var doc jsonField
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode field response: %w", err)
	}
	if doc.FieldResponse == nil {
		return nil, fmt.Errorf("%w: missing FieldResponse object", ErrFormat)
	}

	body := doc.FieldResponse
	fr := &FieldResponse{
		Planes: make([]PlaneResponse, 0, len(body.Planes)),
		Origin: body.Origin * fileLength,
		TStart: body.TStart * fileTime,
		Period: body.Period * fileTime,
		Speed:  body.Speed * fileSpeed,
	}
	copy(fr.Axis[:], body.Axis)

	for pi, jp := range body.Planes {
		if jp.PlaneResponse == nil {
			return nil, fmt.Errorf("%w: plane %d is missing its PlaneResponse object", ErrFormat, pi)
		}
		pb := jp.PlaneResponse
		plane := PlaneResponse{
			Paths:    make([]PathResponse, 0, len(pb.Paths)),
			PlaneID:  pb.PlaneID,
			Location: pb.Location * fileLength,
			Pitch:    pb.Pitch * fileLength,
		}
		for i, jpath := range pb.Paths {
			if jpath.PathResponse == nil {
				return nil, fmt.Errorf("%w: plane %d path %d is missing its PathResponse object", ErrFormat, pi, i)
			}
			b := jpath.PathResponse
			plane.Paths = append(plane.Paths, PathResponse{
				Current:  b.Current.Array.Elements,
				PitchPos: b.PitchPos * fileLength,
				WirePos:  b.WirePos * fileLength,
			})
		}
		fr.Planes = append(fr.Planes, plane)
	}

	if err := fr.Validate(); err != nil {
		return nil, err
	}
	return fr, nil
}

// Encode writes fr to w in the boxed JSON layout, converting back to file
// units.
func Encode(w io.Writer, fr *FieldResponse) error {
	body := &jsonFieldBody{
		Planes: make([]jsonPlane, 0, len(fr.Planes)),
		Axis:   fr.Axis[:],
		Origin: fr.Origin / fileLength,
		TStart: fr.TStart / fileTime,
		Period: fr.Period / fileTime,
		Speed:  fr.Speed / fileSpeed,
	}

	for _, p := range fr.Planes {
		pb := &jsonPlaneBody{
			Paths:    make([]jsonPath, 0, len(p.Paths)),
			PlaneID:  p.PlaneID,
			Location: p.Location / fileLength,
			Pitch:    p.Pitch / fileLength,
		}
		for _, path := range p.Paths {
			b := &jsonPathBody{
				PitchPos: path.PitchPos / fileLength,
				WirePos:  path.WirePos / fileLength,
			}
			b.Current.Array.Elements = path.Current
			b.Current.Array.Shape = []int{len(path.Current)}
			pb.Paths = append(pb.Paths, jsonPath{PathResponse: b})
		}
		body.Planes = append(body.Planes, jsonPlane{PlaneResponse: pb})
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(jsonField{FieldResponse: body}); err != nil {
		return fmt.Errorf("schema: encode field response: %w", err)
	}
	return nil
}
