package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/units"
)

func TestColdElecValidityRange(t *testing.T) {
	ce := ColdElec{Gain: 14, Shaping: 2 * units.Microsecond}

	for _, tm := range []float64{-1, 0, 10 * units.Microsecond, 20 * units.Microsecond} {
		if v := ce.Value(tm); v != 0 {
			t.Errorf("Value(%v) = %v, want 0", tm, v)
		}
	}

	if v := ColdElecValue(units.Microsecond, 14, 0); v != 0 {
		t.Errorf("zero shaping: got %v, want 0", v)
	}
}

func TestColdElecPeak(t *testing.T) {
	tests := []struct {
		name    string
		gain    float64
		shaping float64
	}{
		{name: "unit gain 2us", gain: 1, shaping: 2 * units.Microsecond},
		{name: "14 mV/fC 2us", gain: 14, shaping: 2 * units.Microsecond},
		{name: "1us shaping", gain: 4.7, shaping: 1 * units.Microsecond},
	}

	tbins, err := binning.New(2000, 0, 10*units.Microsecond)
	if err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wave := ColdElec{Gain: tt.gain, Shaping: tt.shaping}.Generate(tbins)
			if len(wave) != tbins.Len() {
				t.Fatalf("len = %d, want %d", len(wave), tbins.Len())
			}

			peakIdx := 0
			for i, v := range wave {
				if v > wave[peakIdx] {
					peakIdx = i
				}
			}

			peak := wave[peakIdx]
			if math.Abs(peak-tt.gain) > 1e-3*tt.gain {
				t.Errorf("peak = %v, want %v", peak, tt.gain)
			}

			peakTime := tbins.Center(peakIdx)
			if peakTime < tt.shaping || peakTime > 1.3*tt.shaping {
				t.Errorf("peak time = %v, want within [%v, %v]", peakTime, tt.shaping, 1.3*tt.shaping)
			}
		})
	}
}

func TestColdElecScalesWithGain(t *testing.T) {
	tm := 1.7 * units.Microsecond
	sh := 2 * units.Microsecond

	a := ColdElecValue(tm, 1, sh)
	b := ColdElecValue(tm, 3, sh)
	if math.Abs(b-3*a) > 1e-12 {
		t.Fatalf("ColdElecValue not linear in gain: %v vs %v", b, 3*a)
	}
}

var _ Generator = ColdElec{}
