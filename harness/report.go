// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/katalvlaran/mxv/matrix"
)

// Record is the timing sample of one repetition.
type Record struct {
	Repetition  int           // zero-based index
	StartOffset time.Duration // since the harness reference time
	Elapsed     time.Duration // duration of the multiply alone
}

// String renders the record the way the report stream prints it (no newline).
func (r Record) String() string {
	return fmt.Sprintf("  repetition: %2d  started at: %12d nanoseconds  took: %10d nanoseconds",
		r.Repetition, r.StartOffset.Nanoseconds(), r.Elapsed.Nanoseconds())
}

// Report is the outcome of Harness.Run. On a fatal error it holds whatever
// was recorded before the abort.
// Expected and Product are copies owned by the caller; writing to them does
// not affect the harness or any other Report.
type Report struct {
	Config   Config
	Records  []Record
	Expected matrix.Matrix // copy of the analytic answer
	Product  matrix.Matrix // copy of the state left by the final repetition
}

// Summary aggregates the elapsed durations of a report.
type Summary struct {
	Count                  int
	Min, Max, Mean, Median time.Duration
}

// Summary computes min, max, mean and median elapsed time. A report without
// records yields a zero Summary. Computed after the timed loop, on a copy.
func (r *Report) Summary() Summary {
	n := len(r.Records)
	if n == 0 {
		return Summary{}
	}
	elapsed := make([]time.Duration, n)
	var total time.Duration
	for i, rec := range r.Records {
		elapsed[i] = rec.Elapsed
		total += rec.Elapsed
	}
	slices.Sort(elapsed)

	median := elapsed[n/2]
	if n%2 == 0 {
		median = (elapsed[n/2-1] + elapsed[n/2]) / 2
	}

	return Summary{
		Count:  n,
		Min:    elapsed[0],
		Max:    elapsed[n-1],
		Mean:   total / time.Duration(n),
		Median: median,
	}
}

// String renders the summary as one report line (no newline).
func (s Summary) String() string {
	return fmt.Sprintf("  summary:  count: %d  min: %d  max: %d  mean: %d  median: %d nanoseconds",
		s.Count, s.Min.Nanoseconds(), s.Max.Nanoseconds(), s.Mean.Nanoseconds(), s.Median.Nanoseconds())
}

// writeHeader prints the run parameters line.
func writeHeader(w io.Writer, cfg Config) error {
	_, err := fmt.Fprintf(w, "MxV:  rows: %d  columns: %d  repetitions: %d  sleepMillis: %d\n",
		cfg.Rows, cfg.Columns, cfg.Repetitions, cfg.Sleep.Milliseconds())

	return err
}

// writeLine prints v followed by a newline.
func writeLine(w io.Writer, v fmt.Stringer) error {
	_, err := fmt.Fprintln(w, v.String())

	return err
}
