package domain

import "time"

// ListStatus is the lifecycle state of a ToDoList.
type ListStatus string

const (
	StatusPending    ListStatus = "pending"
	StatusInProgress ListStatus = "in_progress"
	StatusCompleted  ListStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s ListStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ToDoList is the domain entity for a list of tasks. Every list has
// exactly one owning user; its tasks belong to it until reassigned.
type ToDoList struct {
	ID      int64
	Name    string
	DueDate *time.Time
	Status  ListStatus
	UserID  int64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
