package session

import "fmt"

type State int

const (
	Idle State = iota
	Scanning
	AwaitingPathStyle
	Browsing
	Locked
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case AwaitingPathStyle:
		return "awaiting-path-style"
	case Browsing:
		return "browsing"
	case Locked:
		return "locked"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == Confirmed || s == Cancelled
}

// Picking reports whether the picker accepts selection changes.
func (s State) Picking() bool {
	return s == Browsing || s == Locked
}

// Outcome says how a session ended.
type Outcome int

const (
	OutcomeConfirmed Outcome = iota
	OutcomeCancelled
	// OutcomeSkipped means the path style prompt was dismissed. The caller
	// still writes the file, without imports.
	OutcomeSkipped
	// OutcomeNoCandidates means the scan found nothing to import.
	OutcomeNoCandidates
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNoCandidates:
		return "no-candidates"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
