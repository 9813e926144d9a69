package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/cev/alloc"
	"github.com/joshuapare/cev/cev"
)

var benchN int

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchN, "n", 100_000, "Operations per workload")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time front operations against slice prepends",
		Long: `The bench command times Push, Pop and Insert(0) on a Cev[int] and
compares them with slices.Insert(s, 0, v) on a plain slice.

Example:
  cevctl bench --n 50000
  cevctl bench --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

// BenchResult is the timing of one workload.
type BenchResult struct {
	Name     string  `json:"name"`
	Ops      int     `json:"ops"`
	NsPerOp  float64 `json:"ns_per_op"`
	Acquired uint64  `json:"blocks_acquired"`
}

type workload struct {
	name string
	run  func(n int)
}

var workloads = []workload{
	{"cev push", func(n int) {
		c := cev.New[int]()
		for i := range n {
			c.Push(i)
		}
		c.Release()
	}},
	{"cev pop", func(n int) {
		c := cev.WithCapacity[int](n)
		c.SetLenHead(n)
		for {
			if _, ok := c.Pop(); !ok {
				break
			}
		}
		c.Release()
	}},
	{"cev insert(0)", func(n int) {
		c := cev.New[int]()
		for i := range n {
			c.Insert(0, i)
		}
		c.Release()
	}},
	{"slice insert(0)", func(n int) {
		var s []int
		for i := range n {
			s = slices.Insert(s, 0, i)
		}
	}},
}

func runBench() error {
	if benchN <= 0 {
		return fmt.Errorf("n must be positive, got %d", benchN)
	}

	results := make([]BenchResult, 0, len(workloads))
	for _, w := range workloads {
		printVerbose("Running %s (%d ops)\n", w.name, benchN)
		results = append(results, measure(w, benchN))
	}

	if jsonOut {
		return printJSON(results)
	}

	printInfo("%-16s %12s %12s %8s\n", "WORKLOAD", "OPS", "NS/OP", "BLOCKS")
	for _, r := range results {
		printInfo("%-16s %12s %12.1f %8d\n", r.Name, humanize.Comma(int64(r.Ops)), r.NsPerOp, r.Acquired)
	}
	return nil
}

func measure(w workload, n int) BenchResult {
	before := alloc.Stats()
	start := time.Now()
	w.run(n)
	elapsed := time.Since(start)

	return BenchResult{
		Name:     w.name,
		Ops:      n,
		NsPerOp:  float64(elapsed.Nanoseconds()) / float64(n),
		Acquired: alloc.Stats().Sub(before).Acquired,
	}
}
