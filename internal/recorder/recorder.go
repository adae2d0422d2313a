package recorder

import "time"

// Outcome of one update run.
type Outcome string

const (
	OutcomeAppended Outcome = "APPENDED"
	OutcomeExists   Outcome = "EXISTS"
	OutcomeFailed   Outcome = "FAILED"
)

// RunEvent holds the data for one update run.
type RunEvent struct {
	Time        time.Time
	Symbol      string
	Month       string // empty when the run failed before an observation was known
	Closing     string
	Outcome     Outcome
	DatasetPath string
	Note        string
}

// Recorder persists the history of update runs.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	// History returns up to limit events, newest first.
	History(limit int) ([]RunEvent, error)
	Close() error
}
