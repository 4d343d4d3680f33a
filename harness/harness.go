// SPDX-License-Identifier: MIT

// Package harness - repeated allocate/reset/multiply/measure cycles.
//
// Purpose:
//   - Own the four matrices of a run (left, right, expected, product).
//   - Time each multiply in isolation and report one Record per repetition.
//   - Verify the final product once against the analytic answer.
//
// State machine:
//
//	Setup ──► Repeating ──► Verifying ──► done
//	  │           │             │
//	  └───────────┴─────────────┴──► abort (first fatal error, no retry)
//
// Setup happens in New; Repeating and Verifying happen in Run.
package harness

import (
	"time"

	"github.com/katalvlaran/mxv/matrix"
)

// Phase identifies where a run currently is.
type Phase int

const (
	// PhaseSetup allocates matrices and samples the reference time.
	PhaseSetup Phase = iota
	// PhaseRepeating runs the timed multiply cycles.
	PhaseRepeating
	// PhaseVerifying compares the final product with the expected matrix.
	PhaseVerifying
)

// String returns the lower-case phase name used in error messages.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRepeating:
		return "repeating"
	case PhaseVerifying:
		return "verifying"
	default:
		return "unknown"
	}
}

// Harness runs one benchmark configuration. It is single-threaded by
// contract: Run must not be called concurrently.
type Harness struct {
	opts  Options
	start time.Time // monotonic reference, read-only after New
	phase Phase

	left     matrix.Matrix // Rows×Columns, all ones
	right    matrix.Matrix // Columns×1, all ones
	expected matrix.Matrix // Rows×1, all Columns
	product  matrix.Matrix // Rows×1, reset before every multiply
}

// New validates the options and performs the Setup phase.
// MAIN DESCRIPTION:
//   - left and right are filled with 1, so every product cell must equal
//     the shared dimension; expected is filled with that value once.
//   - The reference time is sampled once, before any repetition, and only
//     feeds the StartOffset of each Record.
//
// Errors:
//   - ErrInvalidConfig (wrapped with the offending field).
//
// Complexity:
//   - Time/Space O(Rows*Columns) for left.
func New(opts ...Option) (*Harness, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	cfg := o.cfg

	h := &Harness{
		opts:  o,
		start: time.Now(),
		phase: PhaseSetup,
	}
	h.left = matrix.Allocate(cfg.Rows, cfg.Columns, 1)
	h.right = matrix.Allocate(cfg.Columns, 1, 1)
	h.expected = matrix.Allocate(cfg.Rows, 1, int64(cfg.Columns))
	h.product = matrix.Allocate(cfg.Rows, 1, 0)

	return h, nil
}

// Config returns the validated run parameters.
func (h *Harness) Config() Config { return h.opts.cfg }

// Phase returns the phase the harness is in (or aborted in).
func (h *Harness) Phase() Phase { return h.phase }

// Run executes the Repeating and Verifying phases.
// MAIN DESCRIPTION:
//   - Writes a header line, then for each repetition: optional sleep, reset
//     product to zero, time one Multiply, write one Record line.
//   - After the last repetition Verify runs once against the final product.
//     Earlier repetitions are never checked.
//
// Returns:
//   - *Report: always non-nil; holds records gathered before any abort and
//     copies of expected and product taken after the loop.
//   - error  : *PhaseError wrapping the cause (matrix sentinels, or a
//     report writer failure).
//
// Notes:
//   - With zero repetitions the zeroed product is verified and fails with
//     matrix.ErrValueMismatch.
func (h *Harness) Run() (*Report, error) {
	cfg := h.opts.cfg
	rep := &Report{
		Config:  cfg,
		Records: make([]Record, 0, cfg.Repetitions),
	}
	h.phase = PhaseRepeating
	if err := writeHeader(h.opts.report, cfg); err != nil {
		return h.finish(rep, err)
	}
	for i := 0; i < cfg.Repetitions; i++ {
		if cfg.Sleep > 0 {
			h.opts.sleep(cfg.Sleep)
		}
		offset := time.Since(h.start)
		elapsed, err := h.timeMultiply()
		if err != nil {
			return h.finish(rep, err)
		}
		rec := Record{Repetition: i, StartOffset: offset, Elapsed: elapsed}
		rep.Records = append(rep.Records, rec)
		if err = writeLine(h.opts.report, rec); err != nil {
			return h.finish(rep, err)
		}
	}

	h.phase = PhaseVerifying
	return h.finish(rep, matrix.Verify(h.opts.diag, h.expected, h.product))
}

// finish detaches rep from the harness matrices and tags a non-nil err
// with the current phase.
func (h *Harness) finish(rep *Report, err error) (*Report, error) {
	rep.Expected = matrix.Clone(h.expected)
	rep.Product = matrix.Clone(h.product)
	if err != nil {
		return rep, h.abort(err)
	}

	return rep, nil
}

// timeMultiply resets product and measures a single Multiply call.
// The reset stays outside the measured window.
func (h *Harness) timeMultiply() (time.Duration, error) {
	matrix.Initialize(h.product, 0)

	before := time.Now()
	err := matrix.Multiply(h.product, h.left, h.right)
	elapsed := time.Since(before)

	return elapsed, err
}

// abort tags err with the current phase.
func (h *Harness) abort(err error) error {
	return &PhaseError{Phase: h.phase, Err: err}
}
