// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors, loop phases and the GrowthError wrapper.
//
// Error policy:
//   - Callers branch with errors.Is on the sentinels below.
//   - Grow wraps every failure in *GrowthError so the iteration and phase
//     that failed stay inspectable with errors.As.

package growth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sirg/metrics"
)

var (
	// ErrConfiguration indicates invalid engine options, a NaN fitness value or
	// a prior with zero mass.
	ErrConfiguration = errors.New("growth: invalid configuration")

	// ErrAttachmentExhausted indicates interior attachment found no
	// conflict-free node selection within the attempt ceiling.
	ErrAttachmentExhausted = errors.New("growth: interior attachment exhausted")

	// ErrDisconnectedInput indicates a nil, empty or edgeless seed, or a seed
	// with more than one component of two or more nodes.
	ErrDisconnectedInput = errors.New("growth: seed graph is not a single connected structure")

	// ErrIterationLimit indicates the node ceiling was not reached within WithMaxIterations.
	ErrIterationLimit = errors.New("growth: iteration limit reached")

	// ErrSink indicates a snapshot sink failed to persist an intermediate graph.
	ErrSink = errors.New("growth: snapshot sink failed")
)

// Phase names a state of the growth loop.
type Phase string

const (
	PhaseValidate   Phase = "validate"
	PhaseGrowing    Phase = "growing"
	PhaseCandidates Phase = "candidate-generation"
	PhaseSnapshot   Phase = "snapshot"
	PhaseConnecting Phase = "connecting"
)

// GrowthError reports where a run failed.
type GrowthError struct {
	Iteration int
	Phase     Phase
	Err       error
}

func (e *GrowthError) Error() string {
	return fmt.Sprintf("growth: iteration %d (%s): %v", e.Iteration, e.Phase, e.Err)
}

func (e *GrowthError) Unwrap() error { return e.Err }

// failure wraps err and counts it under its phase.
func failure(iter int, phase Phase, err error) error {
	metrics.RunErrors.WithLabelValues(string(phase)).Inc()

	return &GrowthError{Iteration: iter, Phase: phase, Err: err}
}
