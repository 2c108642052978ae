package dft

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-response/internal/testutil"
)

func TestForwardMatchesNaiveDFT(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "power of two", n: 64},
		{name: "mixed radix", n: 60},
		{name: "prime", n: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := testutil.DeterministicNoise(int64(tt.n), 1, tt.n)

			tr, err := NewTransform(tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if tr.Len() != tt.n {
				t.Fatalf("Len() = %d, want %d", tr.Len(), tt.n)
			}

			got, err := tr.Forward(nil, x)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSpectrumNearlyEqual(t, got, testutil.NaiveDFT(x), 1e-9)
		})
	}
}

func TestInverseRoundTrip(t *testing.T) {
	for _, n := range []int{128, 100} {
		x := testutil.DeterministicNoise(7, 0.5, n)

		tr, err := NewTransform(n)
		if err != nil {
			t.Fatal(err)
		}
		spec, err := tr.Forward(nil, x)
		if err != nil {
			t.Fatal(err)
		}
		back, err := tr.Inverse(nil, spec)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, back, x, 1e-12)
	}
}

func TestForwardReusesDestination(t *testing.T) {
	tr, err := NewTransform(16)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]complex128, 16)
	got, err := tr.Forward(dst, testutil.Impulse(16, 0))
	if err != nil {
		t.Fatal(err)
	}
	if &got[0] != &dst[0] {
		t.Fatal("Forward did not write into dst")
	}
}

func TestLengthErrors(t *testing.T) {
	if _, err := NewTransform(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewTransform(0) error = %v, want ErrInvalidLength", err)
	}

	tr, err := NewTransform(8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Forward(nil, make([]float64, 7)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Forward short input error = %v", err)
	}
	if _, err := tr.Forward(make([]complex128, 4), make([]float64, 8)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Forward short dst error = %v", err)
	}
	if _, err := tr.Inverse(nil, make([]complex128, 9)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Inverse long spectrum error = %v", err)
	}
	if _, err := tr.Inverse(make([]float64, 3), make([]complex128, 8)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Inverse short dst error = %v", err)
	}
}

func TestMultiply(t *testing.T) {
	a := []complex128{1, 2i, complex(1, 1)}
	b := []complex128{3, 2i, complex(1, -1)}
	dst := make([]complex128, 3)

	if err := Multiply(dst, a, b); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSpectrumNearlyEqual(t, dst, []complex128{3, -4, 2}, 1e-15)

	if err := MultiplyInPlace(a, b); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSpectrumNearlyEqual(t, a, dst, 0)

	if err := Multiply(dst, a, b[:2]); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Multiply mismatch error = %v", err)
	}
}

func TestConvolutionTheorem(t *testing.T) {
	// Multiplying spectra is circular convolution: convolving with an
	// impulse at k shifts the sequence by k.
	const n = 48
	x := testutil.GaussianPulse(n, 10, 2, 1)
	shift := 5

	tr, err := NewTransform(n)
	if err != nil {
		t.Fatal(err)
	}
	xs, err := tr.Forward(nil, x)
	if err != nil {
		t.Fatal(err)
	}
	ks, err := tr.Forward(nil, testutil.Impulse(n, shift))
	if err != nil {
		t.Fatal(err)
	}
	if err := MultiplyInPlace(xs, ks); err != nil {
		t.Fatal(err)
	}
	y, err := tr.Inverse(nil, xs)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, n)
	for i := range x {
		want[(i+shift)%n] = x[i]
	}
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
}
