package models

// Status is the single label rendered for a grid cell.
type Status int

const (
	StatusUnavailable Status = iota
	StatusAvailable
	StatusPreferred
	StatusScheduled
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusPreferred:
		return "preferred"
	case StatusScheduled:
		return "scheduled"
	default:
		return "unavailable"
	}
}

// CellSignals keeps every signal that applies to a (guest, date) cell so
// renderers can layer them. The single-label view is derived, not stored.
type CellSignals struct {
	Available bool
	Preferred bool
	Scheduled bool
}

// Label collapses the signals into one status with precedence
// scheduled > preferred > available > unavailable.
func (c CellSignals) Label() Status {
	switch {
	case c.Scheduled:
		return StatusScheduled
	case c.Preferred:
		return StatusPreferred
	case c.Available:
		return StatusAvailable
	default:
		return StatusUnavailable
	}
}
