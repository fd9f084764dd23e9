// Package timeline computes how close a task is to its due date and
// turns the result into a notification payload. Both halves are pure:
// no state, no side effects, a fresh result per call.
package timeline

import (
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"
	"github.com/AlliAyobami/myToDo/internal/problem"
)

// DefaultSoonThreshold is the window within which a task counts as
// DUE_SOON, when no other threshold is configured.
const DefaultSoonThreshold = 24 * time.Hour

// Engine classifies a task's due date relative to the injected clock.
type Engine struct {
	clock Clock
	soon  time.Duration
}

// NewEngine returns an Engine using the given clock and soon-threshold.
// A nil clock falls back to the system clock; a non-positive threshold
// falls back to DefaultSoonThreshold.
func NewEngine(clock Clock, soon time.Duration) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	if soon <= 0 {
		soon = DefaultSoonThreshold
	}
	return &Engine{clock: clock, soon: soon}
}

// Proximity computes the interval between now and the task's due date.
//
// A task without a due date classifies as NO_DEADLINE with a zero
// delta; that is never an error. Callers should not pass a nil task —
// that is validated at the handler boundary — but a nil task is
// rejected here rather than computing garbage.
func (e *Engine) Proximity(t *dom.Task) (dom.ProximityInterval, error) {
	if t == nil {
		return dom.ProximityInterval{}, problem.InvalidTask("timeline calculation requires a task")
	}
	if t.DueDate == nil {
		return dom.ProximityInterval{Classification: dom.ProximityNoDeadline}, nil
	}

	delta := t.DueDate.Sub(e.clock.Now())
	iv := dom.ProximityInterval{Delta: delta}
	switch {
	case delta < 0:
		iv.Classification = dom.ProximityOverdue
	case delta <= e.soon:
		iv.Classification = dom.ProximityDueSoon
	default:
		iv.Classification = dom.ProximityDueLater
	}
	return iv, nil
}
