// Command fdmtinfo prints the search-plan geometry of a dispersion-measure
// transform: the band's dispersion span, its native DM step, and the trial
// bounds covering a physical DM range.
//
// Usage:
//
//	fdmtinfo [flags]
//
// Examples:
//
//	fdmtinfo -fhi 1500 -flo 1200 -nchan 1024 -tsamp 0.000064 -dmmax 500
//	fdmtinfo -fhi 1500 -flo 1200 -nchan 64 -tsamp 0.001 -dmmax 100 -tree
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-fdmt/fdmt"
)

func main() {
	fHi := flag.Float64("fhi", 1500, "upper channel-edge frequency in MHz")
	fLo := flag.Float64("flo", 1200, "lower channel-edge frequency in MHz")
	nChan := flag.Int("nchan", 1024, "number of frequency channels")
	tSamp := flag.Float64("tsamp", 64e-6, "sampling interval in seconds")
	dmMin := flag.Float64("dmmin", 0, "lower DM search bound in pc/cm^3")
	dmMax := flag.Float64("dmmax", 100, "upper DM search bound in pc/cm^3")
	tree := flag.Bool("tree", false, "print the band-split recursion tree")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fdmtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints dispersion-measure transform search-plan geometry.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	tr := fdmt.Transformer{FHi: *fHi, FLo: *fLo, TSamp: *tSamp, DMMin: *dmMin, DMMax: *dmMax}
	if err := tr.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	band, err := fdmt.NewBand(*fHi, *fLo, *tSamp, *nChan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	dmStep := band.DMStep()
	yMin := int(*dmMin / dmStep)
	yMax := int(math.Ceil(*dmMax / dmStep))

	fmt.Printf("Band:        %.3f .. %.3f MHz, %d channels (%.4f MHz each)\n",
		band.FHi, band.FLo, band.NChan, band.ChannelStep())
	fmt.Printf("Sampling:    %.3e s\n", band.TSamp)
	fmt.Printf("Span:        %.6e s per pc/cm^3\n", band.Span())
	fmt.Printf("DM step:     %.6f pc/cm^3\n", dmStep)
	fmt.Printf("DM range:    %.3f .. %.3f pc/cm^3\n", *dmMin, *dmMax)
	fmt.Printf("Trials:      %d .. %d (%d total)\n", yMin, yMax, yMax-yMin+1)

	if *tree {
		fmt.Println()
		printTree(band)
	}
}

func printTree(root fdmt.Band) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Depth\tChannels\tFrequency [MHz]\tSpan [s per pc/cm^3]\n")
	fmt.Fprintf(tw, "-----\t--------\t---------------\t--------------------\n")
	walk(tw, root, 0)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func walk(tw *tabwriter.Writer, b fdmt.Band, depth int) {
	fmt.Fprintf(tw, "%d\t%d\t%.3f .. %.3f\t%.6e\n", depth, b.NChan, b.FHi, b.FLo, b.Span())
	if b.NChan < 2 {
		return
	}
	head, tail := b.Split()
	walk(tw, head, depth+1)
	walk(tw, tail, depth+1)
}
