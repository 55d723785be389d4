package state

import (
	"time"

	"github.com/google/uuid"
)

func newLocalEnv(start time.Time) *LocalEnv {
	return &LocalEnv{RunID: newRunID(), start: start}
}

// newRunID returns time ordered identifier, so report archives and output
// names of consecutive runs sort chronologically.
func newRunID() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}
	// entropy source failed for v7, v4 still identifies the run
	return uuid.New()
}
