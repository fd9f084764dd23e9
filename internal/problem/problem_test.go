package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		p      *Problem
		status int
		typ    string
	}{
		{"not found", NotFound("Task", 42), 404, TypeNotFound},
		{"invalid", Invalid("bad input"), 422, TypeInvalid},
		{"invalid task", InvalidTask("no task"), 422, TypeInvalidTask},
		{"unauthorized", Unauthorized("no session"), 401, TypeUnauthorized},
		{"conflict", Conflict("taken"), 409, TypeConflict},
		{"internal", Internal("boom"), 500, TypeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.p.Status)
			assert.Equal(t, tt.typ, tt.p.Type)
			assert.NotEmpty(t, tt.p.Title)
			assert.NotEmpty(t, tt.p.Detail)
		})
	}
}

func TestNotFoundDetailNamesEntity(t *testing.T) {
	p := NotFound("Task", 42)
	assert.Equal(t, "Task not found", p.Title)
	assert.Contains(t, p.Detail, "42")
}

// Generic invalidity is not an authentication failure: 422, never the
// source system's 401.
func TestInvalidIsNot401(t *testing.T) {
	assert.NotEqual(t, 401, Invalid("x").Status)
	assert.NotEqual(t, 401, InvalidTask("x").Status)
}

func TestEnvelopeShape(t *testing.T) {
	b, err := json.Marshal(NotFound("Task", 7))
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"type", "title", "status", "detail"} {
		assert.Contains(t, m, k)
	}
	assert.Len(t, m, 4)
}

func TestFrom(t *testing.T) {
	p := Invalid("nope")
	assert.Equal(t, p, From(p))
	assert.Equal(t, p, From(fmt.Errorf("wrapped: %w", p)))
	assert.Nil(t, From(errors.New("plain")))
	assert.Nil(t, From(nil))
}
