package domain

import "time"

// Proximity classifies how close a task's due date is to now.
type Proximity string

const (
	ProximityOverdue    Proximity = "OVERDUE"
	ProximityDueSoon    Proximity = "DUE_SOON"
	ProximityDueLater   Proximity = "DUE_LATER"
	ProximityNoDeadline Proximity = "NO_DEADLINE"
)

// ProximityInterval is the result of a timeline calculation: the
// classification plus the raw signed delta (due date minus now, so a
// negative delta means the task is overdue). Computed fresh per
// request, never persisted.
type ProximityInterval struct {
	Classification Proximity
	Delta          time.Duration
}

// Notification is the payload derived from a ProximityInterval.
// Ephemeral: built per request and returned to the caller.
type Notification struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
