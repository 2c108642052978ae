package impact

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-response/internal/testutil"
)

func TestResponseAmplitudePower(t *testing.T) {
	spec := []complex128{3 + 4i, -1, 2i, 0, 1 - 1i}
	r := NewResponse(7, spec)

	if r.Index() != 7 || r.Len() != len(spec) {
		t.Fatalf("Index() = %d, Len() = %d", r.Index(), r.Len())
	}

	amp := make([]float64, len(spec))
	pow := make([]float64, len(spec))
	for i, c := range spec {
		amp[i] = cmplx.Abs(c)
		pow[i] = real(c)*real(c) + imag(c)*imag(c)
	}
	testutil.RequireSliceNearlyEqual(t, r.Amplitude(), amp, 1e-12)
	testutil.RequireSliceNearlyEqual(t, r.Power(), pow, 1e-12)

	empty := NewResponse(0, nil)
	if empty.Amplitude() != nil || empty.Power() != nil {
		t.Error("empty response should have nil amplitude and power")
	}
}

func TestResponseWaveform(t *testing.T) {
	l := testLayout()
	p := newTestPlane(t)

	// Without electronics the waveform is the resampled current, which
	// for a one-to-one binning is the tabulated current itself.
	for _, pitch := range []float64{0, -3.5, 10} {
		r := p.Closest(pitch)
		wf, err := r.Waveform()
		if err != nil {
			t.Fatalf("Waveform: %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, wf, l.PathCurrent(pitch), 1e-9)
	}
}

func TestResponseWaveformNonPowerOfTwo(t *testing.T) {
	l := testLayout()
	p := mustPlane(t, l.FieldResponse(1), mustBinning(t, 48, 0, 96))

	wf, err := p.Closest(0).Waveform()
	if err != nil {
		t.Fatalf("Waveform: %v", err)
	}

	cur := l.PathCurrent(0)
	var gotSum, wantSum float64
	for _, v := range wf {
		gotSum += v
	}
	for _, v := range cur {
		wantSum += v
	}
	if math.Abs(gotSum-wantSum) > 1e-9 {
		t.Fatalf("waveform integral = %v, want %v", gotSum, wantSum)
	}
}
