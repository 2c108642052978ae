// Command pirinfo prints the impact response structure of a field response
// file and evaluates lookups at chosen pitch offsets.
//
// Usage:
//
//	pirinfo [flags] field-response.json[.gz|.bz2]
//
// Examples:
//
//	pirinfo dune-garfield.json.bz2
//	pirinfo -plane 2 -query -1.5,0,1.5 garfield.json.gz
//	pirinfo -tick 0.5 -nticks 10000 -gain 14 -shaping 2 garfield.json.bz2
//	pirinfo -plot plots garfield.json.bz2
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/response/impact"
	"github.com/cwbudde/algo-response/response/schema"
	"github.com/cwbudde/algo-response/units"
)

func main() {
	plane := flag.Int("plane", -1, "plane ID to inspect (-1 for all planes)")
	nticks := flag.Int("nticks", 0, "number of time bins (0 covers the tabulated duration)")
	tick := flag.Float64("tick", 0.5, "time bin size [us]")
	gain := flag.Float64("gain", 0, "cold electronics gain (0 disables the convolution)")
	shaping := flag.Float64("shaping", 2, "cold electronics shaping time [us]")
	nper := flag.Int("nper", 6, "tabulated impact positions per wire")
	query := flag.String("query", "", "comma separated pitch offsets [mm] to look up")
	plotDir := flag.String("plot", "", "directory to write per-row waveform plots into")
	concurrency := flag.Int("concurrency", 0, "maximum planes built in parallel (0 for no limit)")
	verbose := flag.Bool("v", false, "log construction diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pirinfo [flags] field-response-file\n\n")
		fmt.Fprintf(os.Stderr, "Prints the impact response structure of each wire plane.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pirinfo garfield.json.bz2\n")
		fmt.Fprintf(os.Stderr, "  pirinfo -plane 2 -query -1.5,0,1.5 garfield.json.gz\n")
		fmt.Fprintf(os.Stderr, "  pirinfo -gain 14 -shaping 2 -plot plots garfield.json.bz2\n")
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("pirinfo: ")

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	pitches, err := parseQueries(*query)
	if err != nil {
		log.Fatal(err)
	}

	fr, err := schema.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	tbins, err := timeBinning(fr, *nticks, *tick*units.Microsecond)
	if err != nil {
		log.Fatal(err)
	}

	var diag io.Writer
	if *verbose {
		diag = os.Stderr
	}
	opts := []impact.Option{
		impact.WithImpactsPerWire(*nper),
		impact.WithColdElectronics(*gain, *shaping*units.Microsecond),
		impact.WithLogWriters(os.Stderr, diag),
	}
	if *concurrency > 0 {
		opts = append(opts, impact.WithConcurrency(*concurrency))
	}

	planes, err := impact.NewPlanes(context.Background(), fr, tbins, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if *plane >= 0 {
		planes = selectPlane(planes, *plane)
		if len(planes) == 0 {
			log.Fatalf("no plane with ID %d", *plane)
		}
	}

	if err := printSummary(os.Stdout, planes); err != nil {
		log.Fatal(err)
	}
	if len(pitches) > 0 {
		if err := printQueries(os.Stdout, planes, pitches); err != nil {
			log.Fatal(err)
		}
	}
	if *plotDir != "" {
		for _, p := range planes {
			if err := writePlots(*plotDir, p); err != nil {
				log.Fatal(err)
			}
		}
	}
}

// timeBinning returns nticks bins of size tick starting at zero. With
// nticks zero the bins cover every tabulated sample.
func timeBinning(fr *schema.FieldResponse, nticks int, tick float64) (binning.Binning, error) {
	if nticks <= 0 {
		end := fr.TStart + float64(fr.Samples())*fr.Period
		nticks = int(math.Ceil(end / tick))
	}
	return binning.New(nticks, 0, float64(nticks)*tick)
}

func parseQueries(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid query %q: %w", f, err)
		}
		out = append(out, v*units.Millimeter)
	}
	return out, nil
}

func selectPlane(planes []*impact.Plane, id int) []*impact.Plane {
	for _, p := range planes {
		if p.PlaneID() == id {
			return []*impact.Plane{p}
		}
	}
	return nil
}

func printSummary(w io.Writer, planes []*impact.Plane) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Plane\tPaths\tWires\tRow Len\tPitch [mm]\tImpact [mm]\tHalf [mm]\tBins\tTick [us]\n")
	fmt.Fprintf(tw, "-----\t-----\t-----\t-------\t----------\t-----------\t---------\t----\t---------\n")

	for _, p := range planes {
		tb := p.Binning()
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%d\t%.4f\n",
			p.PlaneID(),
			len(p.Responses()),
			p.NumWires(),
			p.RowLen(),
			p.WireSpacing()/units.Millimeter,
			p.ImpactSpacing()/units.Millimeter,
			p.HalfExtent()/units.Millimeter,
			tb.Len(),
			tb.BinSize()/units.Microsecond,
		)
	}
	return tw.Flush()
}

func printQueries(w io.Writer, planes []*impact.Plane, pitches []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nPlane\tPitch [mm]\tRow\tImpact\tClosest\tBounded\tPeak |X|\n")
	fmt.Fprintf(tw, "-----\t----------\t---\t------\t-------\t-------\t--------\n")

	for _, p := range planes {
		for _, x := range pitches {
			c := p.Closest(x)
			if c == nil {
				fmt.Fprintf(tw, "%d\t%.4f\t-\t-\toutside\t-\t-\n", p.PlaneID(), x/units.Millimeter)
				continue
			}

			row, imp := p.Locate(x)
			lo, hi := p.Bounded(x)
			fmt.Fprintf(tw, "%d\t%.4f\t%d\t%d\t%d\t%d,%d\t%.4g\n",
				p.PlaneID(), x/units.Millimeter, row, imp, c.Index(), lo.Index(), hi.Index(), peak(c.Amplitude()))
		}
	}
	return tw.Flush()
}

func peak(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		m = math.Max(m, v)
	}
	return m
}
