package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueDateUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{
			"date only becomes start of day UTC",
			`"2026-02-19"`,
			ptr(time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)),
		},
		{
			"rfc3339",
			`"2026-02-19T15:04:05Z"`,
			ptr(time.Date(2026, 2, 19, 15, 4, 5, 0, time.UTC)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DueDate
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			if tt.want == nil {
				assert.Nil(t, d.Ptr())
				return
			}
			require.NotNil(t, d.Ptr())
			assert.True(t, tt.want.Equal(*d.Ptr()), "got %v", d.Ptr())
		})
	}
}

func TestDueDateUnmarshalRejectsGarbage(t *testing.T) {
	var d DueDate
	err := json.Unmarshal([]byte(`"next tuesday"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "due_date")
}

func ptr(t time.Time) *time.Time { return &t }
