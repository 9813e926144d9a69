package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/cev/alloc"
	"github.com/joshuapare/cev/cev"
)

var statsN int

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsN, "n", 1000, "Number of elements")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show allocation accounting for a container lifecycle",
		Long: `The stats command fills a container, converts it to a slice and
back, consumes half of it through the consuming iterator and reports the
engine's allocation counters for the whole run.

Example:
  cevctl stats --n 100000
  cevctl stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

// LifecycleStats reports the accounting deltas of one stats run.
type LifecycleStats struct {
	Elements  int    `json:"elements"`
	FinalCap  int    `json:"final_cap"`
	PeakBytes uint64 `json:"peak_bytes"`
	Consumed  int    `json:"consumed"`
	Acquired  uint64 `json:"blocks_acquired"`
	Released  uint64 `json:"blocks_released"`
	LiveBytes int64  `json:"live_bytes"`
}

func runStats() error {
	if statsN < 0 {
		return fmt.Errorf("n must not be negative, got %d", statsN)
	}

	st, err := lifecycle(statsN)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(st)
	}

	printInfo("Elements: %s\n", humanize.Comma(int64(st.Elements)))
	printInfo("Capacity: %s (%s)\n", humanize.Comma(int64(st.FinalCap)), humanize.Bytes(st.PeakBytes))
	printInfo("Consumed by iterator: %s\n", humanize.Comma(int64(st.Consumed)))
	printInfo("Blocks acquired: %d\n", st.Acquired)
	printInfo("Blocks released: %d\n", st.Released)
	printInfo("Live bytes: %s\n", humanize.Bytes(uint64(max(st.LiveBytes, 0))))
	return nil
}

func lifecycle(n int) (LifecycleStats, error) {
	before := alloc.Stats()

	c := cev.New[int64]()
	for i := range n {
		c.Push(int64(i))
	}
	st := LifecycleStats{Elements: c.Len(), FinalCap: c.Cap()}

	l, err := alloc.ArrayLayout[int64](c.Cap())
	if err != nil {
		return st, err
	}
	st.PeakBytes = uint64(l.Size)

	s := c.IntoSlice()
	printVerbose("Converted to slice: len=%d cap=%d\n", len(s), cap(s))
	c = cev.FromSlice(s)

	it := c.IntoIter()
	for range n / 2 {
		it.Next()
	}
	st.Consumed = n / 2
	if err := it.Close(); err != nil {
		return st, fmt.Errorf("failed to close iterator: %w", err)
	}

	delta := alloc.Stats().Sub(before)
	st.Acquired = delta.Acquired
	st.Released = delta.Released
	st.LiveBytes = delta.LiveBytes
	return st, nil
}
