package animation

import "fmt"

// RunStatus represents the state of a Tween.
//
// The status follows this state machine:
//
//	         To()             run finishes
//	Idle ──────────► Running ──────────────► Completed
//	                  │   ▲
//	    To() or Stop()│   │ To()
//	                  ▼   │
//	                 Aborted
//
// Completed and Aborted end a run; any of them accepts a new To call.
// A To call that supersedes an active run reports Aborted, then Running.
type RunStatus int

const (
	// StatusIdle means no run has been started yet.
	StatusIdle RunStatus = iota
	// StatusRunning means a run is in progress and may invoke callbacks.
	StatusRunning
	// StatusCompleted means the last run reached its target and called OnEnd.
	StatusCompleted
	// StatusAborted means the last run was superseded or stopped.
	StatusAborted
)

// String returns a human-readable representation of the run status.
func (s RunStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("RunStatus(%d)", int(s))
	}
}
