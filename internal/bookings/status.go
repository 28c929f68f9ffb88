package bookings

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
)

// validTransitions lists every status reachable from a given status
var validTransitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusDeclined},
	StatusAccepted: {},
	StatusDeclined: {},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if moving from s to target is allowed
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// IsActive reports whether a booking in this status holds its dates
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusAccepted
}

// ActiveStatuses are the statuses that block a spot's calendar
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusAccepted}
}
