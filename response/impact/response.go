package impact

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-response/dsp/dft"
)

// Response is the frequency-domain response of one tabulated impact
// position.
type Response struct {
	index    int
	spectrum []complex128
}

// NewResponse returns a response for the path with the given index. The
// response takes ownership of spectrum.
func NewResponse(index int, spectrum []complex128) Response {
	return Response{index: index, spectrum: spectrum}
}

// Index returns the index of the tabulated path in its plane.
func (r *Response) Index() int { return r.index }

// Len returns the number of spectrum bins.
func (r *Response) Len() int { return len(r.spectrum) }

// Spectrum returns the response spectrum. The slice is shared and must not
// be modified.
func (r *Response) Spectrum() []complex128 { return r.spectrum }

// Waveform returns the time-domain response on the binning the spectrum was
// built for.
func (r *Response) Waveform() ([]float64, error) {
	tr, err := dft.NewTransform(len(r.spectrum))
	if err != nil {
		return nil, err
	}
	return tr.Inverse(nil, r.spectrum)
}

// Amplitude returns |X[k]| for each bin.
func (r *Response) Amplitude() []float64 {
	if len(r.spectrum) == 0 {
		return nil
	}
	re, im := r.parts()
	out := make([]float64, len(r.spectrum))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each bin.
func (r *Response) Power() []float64 {
	if len(r.spectrum) == 0 {
		return nil
	}
	re, im := r.parts()
	out := make([]float64, len(r.spectrum))
	vecmath.Power(out, re, im)
	return out
}

func (r *Response) parts() (re, im []float64) {
	re = make([]float64, len(r.spectrum))
	im = make([]float64, len(r.spectrum))
	for i, c := range r.spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
