package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-response/response/impact"
	"github.com/cwbudde/algo-response/units"
)

// writePlots renders the time-domain responses of every wire row of p into
// one PNG per row.
func writePlots(dir string, p *impact.Plane) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	tb := p.Binning()
	center := p.NumWires() / 2

	for row := 0; row < p.NumWires(); row++ {
		pl := plot.New()
		pl.Title.Text = fmt.Sprintf("plane %d, wire %+d", p.PlaneID(), row-center)
		pl.X.Label.Text = "time [us]"
		pl.Y.Label.Text = "response"

		entries := p.Row(row)
		colors := generateColors(len(entries))
		for imp, idx := range entries {
			wf, err := p.Response(idx).Waveform()
			if err != nil {
				return err
			}

			pts := make(plotter.XYs, len(wf))
			for i, v := range wf {
				pts[i] = plotter.XY{X: tb.Center(i) / units.Microsecond, Y: v}
			}

			line, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("failed to create line: %w", err)
			}
			line.Color = colors[imp]
			line.Width = vg.Points(1)
			pl.Add(line)
			pl.Legend.Add(fmt.Sprintf("%.3f mm", p.Position(row, imp)/units.Millimeter), line)
		}
		pl.Legend.Top = true
		pl.Legend.XOffs = -10
		pl.Legend.YOffs = -10

		file := filepath.Join(dir, fmt.Sprintf("plane_%d_row_%02d.png", p.PlaneID(), row))
		if err := pl.Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
			return fmt.Errorf("failed to save plot: %w", err)
		}
	}
	return nil
}

// generateColors spreads n colors from blue to red.
func generateColors(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}
		out[i] = color.RGBA{R: uint8(255 * f), G: 64, B: uint8(255 * (1 - f)), A: 255}
	}
	return out
}
