package model

import (
	"time"

	"nanoclaw-bridges/pkg/duedate"
)

// ReminderList is a named container of reminders.
type ReminderList struct {
	ID   string
	Name string
}

// Reminder mirrors one item of the reminders store.
type Reminder struct {
	ID             string // external identifier, stable across stores and devices
	Title          string
	ListID         string
	ListName       string
	Completed      bool
	Due            *duedate.Components
	Priority       int
	Notes          string
	CreationDate   *time.Time
	CompletionDate *time.Time
}
