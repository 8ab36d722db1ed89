package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/katalvlaran/geobench/bench"
)

// csvHeader is the first CSV row.
var csvHeader = []string{"Algorithm", "DataSize", "ExecutionTime(ms)", "MemoryUsed(MB)", "Runs"}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []bench.Result) error {
	if results == nil {
		results = []bench.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// WriteCSV writes a header row and one row per result. Times are in
// milliseconds with 3 decimals; memory is in MiB with 2 decimals, or N/A.
func WriteCSV(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write csv: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Algorithm,
			strconv.Itoa(r.DataSize),
			strconv.FormatFloat(millis(r), 'f', 3, 64),
			memoryColumn(r),
			strconv.Itoa(r.Runs),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: write csv: %w", err)
	}

	return nil
}

func millis(r bench.Result) float64 {
	return r.ExecutionTime.Seconds() * 1000
}

func mebibytes(b uint64) float64 {
	return float64(b) / 1024 / 1024
}

func memoryColumn(r bench.Result) string {
	if !r.MemoryKnown {
		return "N/A"
	}

	return strconv.FormatFloat(mebibytes(r.MemoryUsed), 'f', 2, 64)
}

// Display prints results grouped by algorithm name (sorted), then the
// fastest result overall.
func Display(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No benchmark results available")

		return err
	}

	ew := &errWriter{w: w}
	ew.printf("\n=== Benchmark Results ===\n")

	groups := lo.GroupBy(results, func(r bench.Result) string { return r.Algorithm })
	names := lo.Keys(groups)
	sort.Strings(names)
	for _, name := range names {
		ew.printf("\n--- %s ---\n", name)
		for _, r := range groups[name] {
			ew.printf("Data size: %d, Execution time: %.2fms", r.DataSize, millis(r))
			if r.MemoryKnown && r.MemoryUsed > 0 {
				ew.printf(", Memory usage: %.2fMB", mebibytes(r.MemoryUsed))
			}
			ew.printf("\n")
		}
	}

	best := lo.MinBy(results, func(a, b bench.Result) bool { return a.ExecutionTime < b.ExecutionTime })
	ew.printf("\nBest Performance: %s (%.2fms)\n", best.Algorithm, millis(best))

	return ew.err
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// SaveJSON writes results to path with WriteJSON.
func SaveJSON(path string, results []bench.Result) error {
	return saveFile(path, func(w io.Writer) error { return WriteJSON(w, results) })
}

// SaveCSV writes results to path with WriteCSV.
func SaveCSV(path string, results []bench.Result) error {
	return saveFile(path, func(w io.Writer) error { return WriteCSV(w, results) })
}

// saveFile creates path, runs write and closes the file, returning the
// first error.
func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
