package domain

import "time"

// Task is the domain entity for a single to-do item. A task belongs to
// exactly one ToDoList; its owner is derived through the list.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	ListID      int64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted reports whether the task is soft-deleted.
func (t Task) Deleted() bool { return t.DeletedAt != nil }
