package impact_test

import (
	"fmt"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/internal/testutil"
	"github.com/cwbudde/algo-response/response/impact"
)

func ExampleNewPlane() {
	layout := testutil.PlaneLayout{
		HalfWires:      1,
		ImpactsPerWire: 6,
		Pitch:          5,
		Samples:        32,
		Period:         1,
	}
	tbins, _ := binning.New(32, 0, 32)

	plane, err := impact.NewPlane(layout.FieldResponse(1), 0, tbins)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("wires=%d rowlen=%d pitch=%.1f impact=%.1f half=%.1f\n",
		plane.NumWires(), plane.RowLen(), plane.WireSpacing(), plane.ImpactSpacing(), plane.HalfExtent())
	fmt.Println(plane.Closest(0).Index())

	lo, hi := plane.Bounded(0.8)
	fmt.Println(lo.Index(), hi.Index())
	// Output:
	// wires=3 rowlen=11 pitch=5.0 impact=0.5 half=7.5
	// 11
	// 10 9
}
