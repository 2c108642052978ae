package impact

import (
	"testing"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/internal/testutil"
)

func benchPlane(b *testing.B, halfWires, samples int) (testutil.PlaneLayout, binning.Binning) {
	b.Helper()
	l := testutil.PlaneLayout{HalfWires: halfWires, ImpactsPerWire: 6, Pitch: 5, Samples: samples, Period: 1}
	tbins, err := binning.New(samples, 0, float64(samples))
	if err != nil {
		b.Fatal(err)
	}
	return l, tbins
}

func BenchmarkNewPlane(b *testing.B) {
	sizes := []struct {
		name      string
		halfWires int
		samples   int
	}{
		{"5x256", 2, 256},
		{"21x1K", 10, 1024},
		{"21x1000", 10, 1000},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			l, tbins := benchPlane(b, testCase.halfWires, testCase.samples)
			fr := l.FieldResponse(1)

			b.ResetTimer()

			for range b.N {
				if _, err := NewPlane(fr, 0, tbins, WithColdElectronics(14, 2000)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkClosest(b *testing.B) {
	l, tbins := benchPlane(b, 10, 256)
	p, err := NewPlane(l.FieldResponse(1), 0, tbins)
	if err != nil {
		b.Fatal(err)
	}
	half := p.HalfExtent()

	b.ResetTimer()

	for i := range b.N {
		x := -half + 2*half*float64(i%1024)/1024
		_ = p.Closest(x)
	}
}

func BenchmarkBounded(b *testing.B) {
	l, tbins := benchPlane(b, 10, 256)
	p, err := NewPlane(l.FieldResponse(1), 0, tbins)
	if err != nil {
		b.Fatal(err)
	}
	half := p.HalfExtent()

	b.ResetTimer()

	for i := range b.N {
		x := -half + 2*half*float64(i%1024)/1024
		_, _ = p.Bounded(x)
	}
}
