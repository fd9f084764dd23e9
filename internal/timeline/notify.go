package timeline

import (
	"fmt"
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"
)

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
	SeverityInfo   = "info"
)

// BuildNotification maps a ProximityInterval to its notification
// payload. Total over all classifications: an unknown tag is a
// programming error and panics rather than returning an error.
func BuildNotification(iv dom.ProximityInterval) dom.Notification {
	switch iv.Classification {
	case dom.ProximityOverdue:
		return dom.Notification{
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("Task is overdue by %s", formatDelta(-iv.Delta)),
		}
	case dom.ProximityDueSoon:
		if iv.Delta < time.Second {
			return dom.Notification{Severity: SeverityMedium, Message: "Task is due now"}
		}
		return dom.Notification{
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("Task due in %s", formatDelta(iv.Delta)),
		}
	case dom.ProximityDueLater:
		return dom.Notification{
			Severity: SeverityLow,
			Message:  fmt.Sprintf("Task due in %s", formatDelta(iv.Delta)),
		}
	case dom.ProximityNoDeadline:
		return dom.Notification{Severity: SeverityInfo, Message: "Task has no deadline set"}
	}
	panic(fmt.Sprintf("timeline: unknown proximity classification %q", iv.Classification))
}

// formatDelta renders a positive duration in its largest whole unit:
// "2 days", "3 hours", "45 minutes", "30 seconds". Sub-second values
// round up so the message never reads "0 seconds".
func formatDelta(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	if d < time.Second {
		d = time.Second
	}
	switch {
	case d >= 24*time.Hour:
		return plural(int64(d/(24*time.Hour)), "day")
	case d >= time.Hour:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute:
		return plural(int64(d/time.Minute), "minute")
	default:
		return plural(int64(d/time.Second), "second")
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
