package models

import (
	"time"

	"github.com/pkg/errors"
)

// CycleReport is the outcome of a single enforcement cycle.
type CycleReport struct {
	ID        string
	Started   time.Time
	Duration  time.Duration
	Processed int
	Revoked   int
	Restored  int
	// Err is the error which aborted the cycle, if any
	Err error
}

func (r *CycleReport) Failed() bool {
	return r.Err != nil && !r.Skipped()
}

// Skipped reports whether cycle didn't run at all because another one was in progress.
func (r *CycleReport) Skipped() bool {
	return errors.Is(r.Err, ErrCycleInProgress)
}
