package gtasks

import "time"

// Task statuses as reported by the Google Tasks API.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// TaskList is a simplified Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// Task is a simplified Google Tasks item.
type Task struct {
	ID        string
	Title     string
	Notes     string
	Status    string
	Due       *time.Time // date only; the API discards the time of day
	Completed *time.Time
	Updated   *time.Time
}

// PatchTaskRequest carries the fields to change. ClearDue removes the due date.
type PatchTaskRequest struct {
	ListID   string
	TaskID   string
	Title    *string
	Notes    *string
	Status   *string
	Due      *time.Time
	ClearDue bool
}
