// Package mxv is a micro-benchmark for the baseline scalar cost of dense
// integer matrix multiplication.
//
// 🚀 What does it measure?
//
//	An R×C all-ones int64 matrix times a C×1 all-ones column, multiplied
//	with a plain triple loop, timed once per repetition:
//		• every product cell must equal C, so the answer is known up front
//		• the product is reset in place, never reallocated, between runs
//		• arithmetic wraps on overflow exactly like 64-bit hardware
//
// Under the hood, everything is organized under three packages:
//
//	matrix/   — Matrix type, Allocate/Initialize, Multiply, Verify, typed errors
//	harness/  — Setup → Repeating → Verifying state machine, options, records
//	cmd/mxv/  — command-line entry point (flags, padding, CPU profile)
//
// Quick start:
//
//	go run ./cmd/mxv -m 3 -n 4 -r 2 -s 0 -pad 0
//
// prints one header line and one timing line per repetition, then exits 0
// once the final product verifies.
package mxv
