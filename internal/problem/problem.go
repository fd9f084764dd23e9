// Package problem models domain errors as problem-details values:
// typed, HTTP-status-bearing, and serialized verbatim as the error
// response envelope so clients can pattern-match on the type tag.
package problem

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	TypeNotFound     = "todo/not-found"
	TypeInvalid      = "todo/invalid-request"
	TypeInvalidTask  = "todo/invalid-task"
	TypeUnauthorized = "todo/unauthorized"
	TypeConflict     = "todo/conflict"
	TypeInternal     = "todo/internal"
)

// Problem is a problem-details error envelope.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (p *Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.Title, p.Detail)
}

// NotFound signals that the referenced entity does not exist or is not
// visible to the caller. Soft-deleted entities behave identically to
// missing ones unless deleted records were explicitly requested.
func NotFound(entity string, id int64) *Problem {
	return &Problem{
		Type:   TypeNotFound,
		Title:  fmt.Sprintf("%s not found", entity),
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("The %s you are looking for does not exist: %d", entity, id),
	}
}

// Invalid signals a malformed or disallowed operation. Responds with
// 422: the source system answered 401 here, which belongs to
// authentication, not generic invalidity.
func Invalid(detail string) *Problem {
	return &Problem{
		Type:   TypeInvalid,
		Title:  "Invalid request",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
	}
}

// InvalidTask signals that a timeline calculation received no task.
func InvalidTask(detail string) *Problem {
	return &Problem{
		Type:   TypeInvalidTask,
		Title:  "Invalid task",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
	}
}

// Unauthorized signals a missing or invalid session.
func Unauthorized(detail string) *Problem {
	return &Problem{
		Type:   TypeUnauthorized,
		Title:  "Authorization required",
		Status: http.StatusUnauthorized,
		Detail: detail,
	}
}

// Conflict signals a uniqueness clash (e.g. username already taken).
func Conflict(detail string) *Problem {
	return &Problem{
		Type:   TypeConflict,
		Title:  "Conflict",
		Status: http.StatusConflict,
		Detail: detail,
	}
}

// Internal hides an unexpected failure behind the uniform envelope.
func Internal(detail string) *Problem {
	return &Problem{
		Type:   TypeInternal,
		Title:  "Internal error",
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}

// From extracts a *Problem from err, or nil if err carries none.
func From(err error) *Problem {
	var p *Problem
	if errors.As(err, &p) {
		return p
	}
	return nil
}
