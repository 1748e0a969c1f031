// Command dynalign-bench is a thin sample harness over the dynalign
// API: it aligns one pair (or triple) of nucleotide strings given on
// the command line and prints the cost, plus the aligned streams and
// median for the pairwise (linear, affine) modes. It exists
// to exercise the public entry points end to end, the way the
// teacher's cmd/cablastp-compress/main.go exercises the compression
// pipeline; it is explicitly out of scope as a CLI per spec.md §6.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ndaniels/dynalign"
	"github.com/ndaniels/dynalign/costmatrix"
)

var (
	flagMode     = "linear"
	flagGapOpen  = 0
	flagGapExt   = 0
	flagBand     = -1
	flagSub      = 1
	flagThird    = ""
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&flagMode, "mode", flagMode,
		"Alignment mode: linear, affine, 3d, or powell.")
	flag.IntVar(&flagGapOpen, "gap-open", flagGapOpen,
		"Gap-open cost (affine and powell modes).")
	flag.IntVar(&flagGapExt, "gap-extend", flagGapExt,
		"Gap-extend cost (powell mode).")
	flag.IntVar(&flagBand, "band", flagBand,
		"Ukkonen band width for linear mode; negative means unbanded.")
	flag.IntVar(&flagSub, "mismatch", flagSub,
		"Uniform cost between distinct states, the gap state included.")
	flag.StringVar(&flagThird, "s3", flagThird,
		"Third input sequence, required for 3d and powell modes.")
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatal("Usage: dynalign-bench [flags] <sequence1> <sequence2>")
	}
	s1, s2 := []byte(args[0]), []byte(args[1])

	alphabet := dynalign.NewAlphabet([]byte("ACGT"), '-')
	base := uniformBase(alphabet.K(), flagSub)

	switch flagMode {
	case "linear":
		runQuick(alphabet, base, s1, s2, 0)
	case "affine":
		runQuick(alphabet, base, s1, s2, flagGapOpen)
	case "3d", "powell":
		if flagThird == "" {
			log.Fatal("mode 3d/powell requires -s3")
		}
		runThreeWay(alphabet, base, s1, s2, []byte(flagThird))
	default:
		log.Fatalf("unknown mode %q", flagMode)
	}
}

func uniformBase(k, mismatch int) [][]int {
	t := make([][]int, k)
	for i := range t {
		t[i] = make([]int, k)
		for j := range t[i] {
			if i != j {
				t[i][j] = mismatch
			}
		}
	}
	return t
}

func runQuick(alphabet *dynalign.Alphabet, base [][]int, s1, s2 []byte, gapOpen int) {
	costs := dynalign.CostOptions{Table: base, GapOpen: gapOpen, Metric: true}
	cost, out1, out2, median, err := dynalign.Quick(s1, s2, alphabet, costs)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("cost: %d\n%s\n%s\n%s\n", cost, out1, out2, median)
}

func runThreeWay(alphabet *dynalign.Alphabet, base [][]int, s1, s2, s3 []byte) {
	bTab := costmatrix.Base{K: alphabet.K(), T: base, Metric: true}
	cm3, err := dynalign.ExpandCostMatrix3D(bTab)
	if err != nil {
		log.Fatal(err)
	}

	streams := [][]byte{s1, s2, s3}
	// align_3d_powell requires lesser <= middle <= longer by length.
	for i := 0; i < len(streams); i++ {
		for j := i + 1; j < len(streams); j++ {
			if len(streams[j]) < len(streams[i]) {
				streams[i], streams[j] = streams[j], streams[i]
			}
		}
	}

	lesser, err := alphabet.Encode(streams[0])
	if err != nil {
		log.Fatal(err)
	}
	middle, err := alphabet.Encode(streams[1])
	if err != nil {
		log.Fatal(err)
	}
	longer, err := alphabet.Encode(streams[2])
	if err != nil {
		log.Fatal(err)
	}

	res, err := dynalign.Align3DPowell(lesser, middle, longer, cm3, dynalign.Align3DPowellOptions{
		GapOpen: flagGapOpen, GapExtend: flagGapExt,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("cost: %d\n", res.Cost)
	os.Exit(0)
}
