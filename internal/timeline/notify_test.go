package timeline

import (
	"testing"
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildNotificationMessages(t *testing.T) {
	tests := []struct {
		name     string
		iv       dom.ProximityInterval
		severity string
		message  string
	}{
		{
			"overdue by 2 days",
			dom.ProximityInterval{Classification: dom.ProximityOverdue, Delta: -48 * time.Hour},
			SeverityHigh, "Task is overdue by 2 days",
		},
		{
			"overdue by 1 hour",
			dom.ProximityInterval{Classification: dom.ProximityOverdue, Delta: -time.Hour},
			SeverityHigh, "Task is overdue by 1 hour",
		},
		{
			"due in 2 hours",
			dom.ProximityInterval{Classification: dom.ProximityDueSoon, Delta: 2 * time.Hour},
			SeverityMedium, "Task due in 2 hours",
		},
		{
			"due in 45 minutes",
			dom.ProximityInterval{Classification: dom.ProximityDueSoon, Delta: 45 * time.Minute},
			SeverityMedium, "Task due in 45 minutes",
		},
		{
			"due right now",
			dom.ProximityInterval{Classification: dom.ProximityDueSoon, Delta: 0},
			SeverityMedium, "Task is due now",
		},
		{
			"due in under a second",
			dom.ProximityInterval{Classification: dom.ProximityDueSoon, Delta: 500 * time.Millisecond},
			SeverityMedium, "Task is due now",
		},
		{
			"overdue by under a second",
			dom.ProximityInterval{Classification: dom.ProximityOverdue, Delta: -500 * time.Millisecond},
			SeverityHigh, "Task is overdue by 1 second",
		},
		{
			"due in 10 days",
			dom.ProximityInterval{Classification: dom.ProximityDueLater, Delta: 240 * time.Hour},
			SeverityLow, "Task due in 10 days",
		},
		{
			"no deadline",
			dom.ProximityInterval{Classification: dom.ProximityNoDeadline},
			SeverityInfo, "Task has no deadline set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := BuildNotification(tt.iv)
			assert.Equal(t, tt.severity, n.Severity)
			assert.Equal(t, tt.message, n.Message)
		})
	}
}

// Every classification maps to a non-empty payload; no tag falls
// through to an error path.
func TestBuildNotificationTotal(t *testing.T) {
	for _, cl := range []dom.Proximity{
		dom.ProximityOverdue,
		dom.ProximityDueSoon,
		dom.ProximityDueLater,
		dom.ProximityNoDeadline,
	} {
		n := BuildNotification(dom.ProximityInterval{Classification: cl, Delta: time.Hour})
		assert.NotEmpty(t, n.Severity, "severity for %s", cl)
		assert.NotEmpty(t, n.Message, "message for %s", cl)
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "1 second"}, // never "0 seconds"
		{30 * time.Second, "30 seconds"},
		{time.Second, "1 second"},
		{90 * time.Second, "1 minute"},
		{45 * time.Minute, "45 minutes"},
		{time.Hour, "1 hour"},
		{23 * time.Hour, "23 hours"},
		{24 * time.Hour, "1 day"},
		{-48 * time.Hour, "2 days"}, // sign is dropped, callers word the direction
		{240 * time.Hour, "10 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDelta(tt.d), "formatDelta(%s)", tt.d)
	}
}
