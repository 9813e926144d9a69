package main

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/cev/cev"
)

var (
	growthElem   string
	growthPushes int
)

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().StringVar(&growthElem, "elem", "u8", "Element kind: u8, u64, page or zst")
	cmd.Flags().IntVar(&growthPushes, "pushes", 64, "Number of pushes from empty")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Show capacity transitions while pushing",
		Long: `The growth command pushes elements into an empty container and
prints every capacity it passes through.

Example:
  cevctl growth --elem u8 --pushes 40
  cevctl growth --elem page --pushes 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth()
		},
	}
}

// GrowthTrace is the result of one growth run.
type GrowthTrace struct {
	Elem       string  `json:"elem"`
	ElemSize   uintptr `json:"elem_size"`
	Pushes     int     `json:"pushes"`
	Capacities []int   `json:"capacities"`
}

func runGrowth() error {
	if growthPushes < 0 {
		return fmt.Errorf("pushes must not be negative, got %d", growthPushes)
	}

	var trace GrowthTrace
	switch growthElem {
	case "u8":
		trace = traceGrowth[uint8](growthPushes)
	case "u64":
		trace = traceGrowth[uint64](growthPushes)
	case "page":
		trace = traceGrowth[[4096]byte](growthPushes)
	case "zst":
		trace = traceGrowth[struct{}](growthPushes)
	default:
		return fmt.Errorf("unknown element kind %q (want u8, u64, page or zst)", growthElem)
	}
	trace.Elem = growthElem

	if jsonOut {
		return printJSON(trace)
	}

	printInfo("%s (%d bytes), %s pushes\n", trace.Elem, trace.ElemSize, humanize.Comma(int64(trace.Pushes)))
	printInfo("  %s\n", formatCapacities(trace.Capacities))
	return nil
}

// traceGrowth pushes zero values into a fresh container and records each
// distinct capacity, starting with the initial one.
func traceGrowth[T any](pushes int) GrowthTrace {
	var zero T
	c := cev.New[T]()
	defer c.Release()

	caps := []int{c.Cap()}
	for range pushes {
		c.Push(zero)
		if n := c.Cap(); n != caps[len(caps)-1] {
			printVerbose("  push %d: cap %d -> %d\n", c.Len(), caps[len(caps)-1], n)
			caps = append(caps, n)
		}
	}
	return GrowthTrace{
		ElemSize:   unsafe.Sizeof(zero),
		Pushes:     pushes,
		Capacities: caps,
	}
}

func formatCapacities(caps []int) string {
	parts := make([]string, len(caps))
	for i, n := range caps {
		if n == math.MaxInt {
			parts[i] = "unbounded"
			continue
		}
		parts[i] = humanize.Comma(int64(n))
	}
	return strings.Join(parts, " -> ")
}
