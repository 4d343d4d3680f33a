// SPDX-License-Identifier: MIT

// Package harness: functional configuration for a benchmark run.
// This file defines:
//   - documented defaults (constants),
//   - Config (the run parameters echoed in every Report),
//   - Option / Options and the WithX setters,
//   - gatherOptions, which applies setters and enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Setters never panic; validation happens once in gatherOptions and
//     surfaces as ErrInvalidConfig, because values usually come from flags.
package harness

import (
	"fmt"
	"io"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRows is the left/product row count.
	DefaultRows = 5000

	// DefaultColumns is the left column count and the right row count.
	DefaultColumns = 4000

	// DefaultRepetitions is the number of timed multiply cycles.
	DefaultRepetitions = 10

	// DefaultSleep is the pause before each repetition; 0 disables it.
	DefaultSleep = 900 * time.Millisecond
)

// Config holds the benchmark parameters.
type Config struct {
	Rows        int           // > 0
	Columns     int           // > 0
	Repetitions int           // >= 0
	Sleep       time.Duration // >= 0; 0 disables the pause
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Rows:        DefaultRows,
		Columns:     DefaultColumns,
		Repetitions: DefaultRepetitions,
		Sleep:       DefaultSleep,
	}
}

// Validate checks every field and returns ErrInvalidConfig wrapped with the
// first offending field.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be > 0 (got %d)", ErrInvalidConfig, c.Rows)
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be > 0 (got %d)", ErrInvalidConfig, c.Columns)
	case c.Repetitions < 0:
		return fmt.Errorf("%w: repetitions must be >= 0 (got %d)", ErrInvalidConfig, c.Repetitions)
	case c.Sleep < 0:
		return fmt.Errorf("%w: sleep must be >= 0 (got %v)", ErrInvalidConfig, c.Sleep)
	}

	return nil
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	cfg    Config
	report io.Writer           // per-repetition records; io.Discard by default
	diag   io.Writer           // verifier diagnostics; io.Discard by default
	sleep  func(time.Duration) // time.Sleep by default
}

// WithConfig replaces all run parameters at once.
func WithConfig(cfg Config) Option {
	return func(o *Options) { o.cfg = cfg }
}

// WithRows sets the left/product row count.
func WithRows(rows int) Option {
	return func(o *Options) { o.cfg.Rows = rows }
}

// WithColumns sets the shared dimension (left columns, right rows).
func WithColumns(cols int) Option {
	return func(o *Options) { o.cfg.Columns = cols }
}

// WithRepetitions sets the number of timed multiply cycles.
func WithRepetitions(n int) Option {
	return func(o *Options) { o.cfg.Repetitions = n }
}

// WithSleep sets the pause taken before every repetition. Zero disables it.
// The pause spreads multiplies apart in the timeline of an external
// sampling profiler; it is never part of a measured window.
func WithSleep(d time.Duration) Option {
	return func(o *Options) { o.cfg.Sleep = d }
}

// WithReportWriter directs the header and per-repetition records to w.
// A nil w restores the default (discard).
func WithReportWriter(w io.Writer) Option {
	return func(o *Options) { o.report = w }
}

// WithDiagnosticWriter directs the verifier's mismatch line to w.
// A nil w restores the default (discard).
func WithDiagnosticWriter(w io.Writer) Option {
	return func(o *Options) { o.diag = w }
}

// WithSleeper replaces time.Sleep, mainly for tests. nil restores time.Sleep.
func WithSleeper(fn func(time.Duration)) Option {
	return func(o *Options) { o.sleep = fn }
}

// defaultOptions returns Options filled with documented defaults.
func defaultOptions() Options {
	return Options{
		cfg:    DefaultConfig(),
		report: io.Discard,
		diag:   io.Discard,
		sleep:  time.Sleep,
	}
}

// gatherOptions applies opts over the defaults, restores defaults for nil
// collaborators and validates the run parameters.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.report == nil {
		o.report = io.Discard
	}
	if o.diag == nil {
		o.diag = io.Discard
	}
	if o.sleep == nil {
		o.sleep = time.Sleep
	}
	if err := o.cfg.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}
