// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New when a run parameter is out of range.
var ErrInvalidConfig = errors.New("harness: invalid config")

// PhaseError records the phase a run aborted in. It unwraps to the cause,
// so matrix sentinels still match through errors.Is.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string { return fmt.Sprintf("%s: %v", e.Phase, e.Err) }

// Unwrap exposes the underlying cause.
func (e *PhaseError) Unwrap() error { return e.Err }
