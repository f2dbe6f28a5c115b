package task

import "time"

// Status represents the state of a task.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// IsValid reports whether s is one of the two allowed status values.
func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Task is the core domain entity representing a unit of work.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns a copy of the task. The repository hands out clones so
// callers never hold a mutable reference into stored records.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
