// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"sync"

	"github.com/google/uuid"
)

// Job identifies one input file within a run.
type Job struct {
	ID   uuid.UUID
	Path string

	plot bool
}

// Result records the outcome for a single input file.
type Result struct {
	Job Job
	// Artifacts lists the files written for this input, in creation order.
	Artifacts []string
	// Degraded marks a file whose coverage start fell back to the current
	// time because no date could be extracted from its name.
	Degraded bool
	Err      error
}

// Outcome classifies a finished run.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomePartial Outcome = "partial"
	OutcomeFailed  Outcome = "failed"
)

// Report accumulates per-file results. Workers append concurrently.
type Report struct {
	mtx sync.Mutex

	Results   []Result
	Succeeded int
	Failed    int
}

func (r *Report) add(res Result) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.Results = append(r.Results, res)
	if res.Err != nil {
		r.Failed++
	} else {
		r.Succeeded++
	}
}

// Outcome is OK when every file succeeded, Partial when some did, and Failed
// when none did.
func (r *Report) Outcome() Outcome {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	switch {
	case r.Failed == 0:
		return OutcomeOK
	case r.Succeeded > 0:
		return OutcomePartial
	default:
		return OutcomeFailed
	}
}
