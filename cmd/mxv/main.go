// Command mxv times a naive int64 matrix multiply (an R×C all-ones matrix
// times a C×1 all-ones column) and verifies the result.
//
// Usage:
//
//	mxv [-m rows] [-n columns] [-r repetitions] [-s sleepMillis] [-pad millis] [-summary] [-cpuprofile file]
//
// The process idles for -pad milliseconds before and after the measured
// work so that startup and shutdown activity stay out of a profiler's view
// of the multiplies.
//
// Exit status: 0 on success, 1 when the benchmark aborts (dimension or
// verification failure), 2 on invalid flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime/pprof"
	"time"

	"github.com/katalvlaran/mxv/harness"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2

	defaultPadMillis = 1200

	// maxMillis is the largest millisecond count a time.Duration can hold.
	maxMillis = math.MaxInt64 / int64(time.Millisecond)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Sleep))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer, sleep func(time.Duration)) int {
	fs := flag.NewFlagSet("mxv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		rows        = fs.Int("m", harness.DefaultRows, "Rows of the left matrix")
		columns     = fs.Int("n", harness.DefaultColumns, "Columns of the left matrix (rows of the right)")
		repetitions = fs.Int("r", harness.DefaultRepetitions, "Number of timed multiplies")
		sleepMillis = fs.Int("s", int(harness.DefaultSleep/time.Millisecond), "Pause before each multiply in ms (0 = none)")
		padMillis   = fs.Int("pad", defaultPadMillis, "Idle time before and after the run in ms (0 = none)")
		summary     = fs.Bool("summary", false, "Print min/max/mean/median after the records")
		cpuProf     = fs.String("cpuprofile", "", "Write CPU profile of the run to file")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := log.New(stderr, "mxv: ", 0)
	pad, err := millis("-pad", *padMillis)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	pause, err := millis("-s", *sleepMillis)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	h, err := harness.New(
		harness.WithConfig(harness.Config{
			Rows:        *rows,
			Columns:     *columns,
			Repetitions: *repetitions,
			Sleep:       pause,
		}),
		harness.WithReportWriter(stdout),
		harness.WithDiagnosticWriter(stderr),
	)
	if err != nil {
		logger.Print(err)
		fs.Usage()
		return exitUsage
	}

	if pad > 0 {
		sleep(pad)
	}

	if code := measure(h, *cpuProf, *summary, stdout, logger); code != exitOK {
		return code
	}

	if pad > 0 {
		sleep(pad)
	}

	return exitOK
}

// millis converts a millisecond flag value to a Duration, rejecting values
// that are negative or would overflow the conversion.
func millis(name string, v int) (time.Duration, error) {
	if v < 0 {
		return 0, fmt.Errorf("%s must be >= 0 (got %d)", name, v)
	}
	if int64(v) > maxMillis {
		return 0, fmt.Errorf("%s must be <= %d (got %d)", name, maxMillis, v)
	}

	return time.Duration(v) * time.Millisecond, nil
}

// measure runs the harness, optionally under the CPU profiler, and prints
// the summary line when asked.
func measure(h *harness.Harness, cpuProf string, summary bool, stdout io.Writer, logger *log.Logger) int {
	if cpuProf != "" {
		f, err := os.Create(cpuProf)
		if err != nil {
			logger.Printf("create cpuprofile: %v", err)
			return exitFatal
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			logger.Printf("start cpuprofile: %v", err)
			return exitFatal
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	rep, err := h.Run()
	if err != nil {
		logger.Print(err)
		return exitFatal
	}
	if summary {
		fmt.Fprintln(stdout, rep.Summary())
	}

	return exitOK
}
