// Command benchmark_parser turns `go test -bench` output for the cev
// package into a markdown report comparing each operation's cev run with
// its plain slice baseline.
//
//	go test -bench . -benchmem ./cev | go run ./scripts -output report.md
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Impl        string // "cev" or "slice"
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult pairs the cev and slice runs of one operation.
type ComparisonResult struct {
	Operation   string
	CevNs       float64
	SliceNs     float64
	Speedup     float64
	CevMem      int64
	SliceMem    int64
	CevAllocs   int64
	SliceAllocs int64
	CevOnly     bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

// BenchmarkPrepend/cev-8    10000    12450 ns/op    4096 B/op    8 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Lines from `go test -json` carry the text in Output.
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		r := BenchmarkResult{Name: matches[1]}
		r.Iterations, _ = strconv.Atoi(matches[2])
		r.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
		if matches[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		r.Operation, r.Impl = splitName(r.Name)
		results = append(results, r)
	}

	return results
}

// splitName splits Benchmark<Operation>/<impl>-<procs>. A benchmark without
// an impl part is treated as cev-only.
func splitName(name string) (operation, impl string) {
	name = strings.TrimPrefix(name, "Benchmark")
	if i := strings.LastIndex(name, "-"); i > 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			name = name[:i]
		}
	}
	operation, impl, ok := strings.Cut(name, "/")
	if !ok {
		return operation, "cev"
	}
	return operation, impl
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	grouped := make(map[string]map[string]BenchmarkResult)
	for _, r := range results {
		if grouped[r.Operation] == nil {
			grouped[r.Operation] = make(map[string]BenchmarkResult)
		}
		grouped[r.Operation][r.Impl] = r
	}

	var comparisons []ComparisonResult
	for op, impls := range grouped {
		c, hasCev := impls["cev"]
		if !hasCev {
			continue
		}
		comp := ComparisonResult{
			Operation: op,
			CevNs:     c.NsPerOp,
			CevMem:    c.BytesPerOp,
			CevAllocs: c.AllocsPerOp,
			CevOnly:   true,
		}
		if s, ok := impls["slice"]; ok && c.NsPerOp > 0 {
			comp.SliceNs = s.NsPerOp
			comp.SliceMem = s.BytesPerOp
			comp.SliceAllocs = s.AllocsPerOp
			comp.Speedup = s.NsPerOp / c.NsPerOp
			comp.CevOnly = false
		}
		comparisons = append(comparisons, comp)
	}

	slices.SortFunc(comparisons, func(a, b ComparisonResult) int {
		return strings.Compare(a.Operation, b.Operation)
	})
	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	cevFaster, sliceFaster, cevOnly := 0, 0, 0
	totalSpeedup := 0.0
	for _, comp := range comparisons {
		switch {
		case comp.CevOnly:
			cevOnly++
		case comp.Speedup > 1.0:
			cevFaster++
		case comp.Speedup < 1.0:
			sliceFaster++
		}
		totalSpeedup += comp.Speedup
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total benchmarks**: %d\n", len(comparisons))
	if compared := len(comparisons) - cevOnly; compared > 0 {
		fmt.Fprintf(&sb, "- **Compared with slices**: %d\n", compared)
		fmt.Fprintf(&sb, "  - cev faster: %d\n", cevFaster)
		fmt.Fprintf(&sb, "  - slice faster: %d\n", sliceFaster)
		fmt.Fprintf(&sb, "  - Average speedup: **%.2fx**\n", totalSpeedup/float64(compared))
	}
	fmt.Fprintf(&sb, "- **cev-only benchmarks**: %d\n\n", cevOnly)

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | cev (ns/op) | slice (ns/op) | Speedup | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|-------------|---------------|---------|---------------|--------|\n")

	for _, comp := range comparisons {
		if comp.CevOnly {
			fmt.Fprintf(&sb, "| %s | %s | *N/A* | *cev only* | %s | %d |\n",
				comp.Operation,
				formatNs(comp.CevNs),
				humanize.IBytes(uint64(comp.CevMem)),
				comp.CevAllocs,
			)
			continue
		}

		indicator := "✓"
		if comp.Speedup < 1.0 {
			indicator = "✗"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %.2fx %s | %s vs %s | %d vs %d |\n",
			comp.Operation,
			formatNs(comp.CevNs),
			formatNs(comp.SliceNs),
			comp.Speedup,
			indicator,
			humanize.IBytes(uint64(comp.CevMem)),
			humanize.IBytes(uint64(comp.SliceMem)),
			comp.CevAllocs,
			comp.SliceAllocs,
		)
	}

	sb.WriteString("\n## Notes\n\n")
	sb.WriteString("- **Speedup > 1.0**: cev is faster ✓\n")
	sb.WriteString("- **Speedup < 1.0**: the slice baseline is faster ✗\n")
	sb.WriteString("- **Memory and allocations**: lower is better\n")

	return sb.String()
}

func formatNs(n float64) string {
	return humanize.CommafWithDigits(n, 1)
}
