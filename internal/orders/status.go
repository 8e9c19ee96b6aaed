package orders

import "errors"

// ErrInvalidTransition is returned by client-side guards before a doomed
// transition request is even sent.
var ErrInvalidTransition = errors.New("invalid status transition")

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// validNext is the full transition graph. The only backward edge is
// cancelled -> pending (reopen); completed is terminal.
var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusInProgress: true, StatusCancelled: true},
	StatusInProgress: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {StatusPending: true},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// Per-operation guards, one per transition endpoint. The server stays
// authoritative; these only decide whether the affordance is offered.
func CanStart(s Status) bool    { return CanTransition(s, StatusInProgress) }
func CanComplete(s Status) bool { return CanTransition(s, StatusCompleted) }
func CanCancel(s Status) bool   { return CanTransition(s, StatusCancelled) }
func CanReopen(s Status) bool   { return CanTransition(s, StatusPending) }

// IsTerminal reports whether no transition leads out of s.
func IsTerminal(s Status) bool {
	_, known := validNext[s]
	return known && len(validNext[s]) == 0
}

func ValidStatus(s Status) bool {
	_, ok := validNext[s]
	return ok
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
