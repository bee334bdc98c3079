package reminder

import (
	"time"

	"nanoclaw-bridges/internal/model"
)

// Config tunes the bridge use case.
type Config struct {
	DefaultList   string        // list used by create when none is given
	AccessTimeout time.Duration // wait for the access grant
	FetchTimeout  time.Duration // wait for each fetch; a timeout yields no reminders
}

// Target selects a reminder by external id or by case-insensitive title substring.
type Target struct {
	ReminderID string
	TitleMatch string
}

// Empty reports whether neither selector is set.
func (t Target) Empty() bool {
	return t.ReminderID == "" && t.TitleMatch == ""
}

type ListListsOutput struct {
	Lists []model.ReminderList
}

type ListRemindersInput struct {
	ListName         string // empty means every list
	IncludeCompleted bool
}

type ListRemindersOutput struct {
	Reminders []model.Reminder
}

type CreateReminderInput struct {
	Title    string
	ListName string // empty falls back to Config.DefaultList
	DueDate  string // YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS; empty means none
	Notes    string
	Priority int
}

type CreateReminderOutput struct {
	Reminder model.Reminder
}

type CompleteReminderInput struct {
	Target
}

type CompleteReminderOutput struct {
	Reminder model.Reminder
}

// UpdateReminderInput carries only the fields present in the request.
// A nil pointer leaves the field untouched.
type UpdateReminderInput struct {
	Target

	Title    *string
	Notes    *string
	Priority *int
	ListName *string
	DueDate  *string // pointer to "" clears the due date
}

type UpdateReminderOutput struct {
	Reminder model.Reminder
}

// ListGroup is one entry of the snapshot's by-list grouping.
type ListGroup struct {
	Name      string
	Reminders []model.Reminder
}

type SnapshotOutput struct {
	Reminders []model.Reminder
	ByList    []ListGroup // in order of first appearance
	Timestamp time.Time
}
