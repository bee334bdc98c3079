package repository

import (
	"time"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/pkg/duedate"
)

// ListRecord is the persisted form of a reminder list, shared by the file
// and redis stores.
type ListRecord struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ReminderRecord is the persisted form of a reminder. Due holds the
// duedate string form; CreatedAt is set once by the store.
type ReminderRecord struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	ListID      string     `json:"list_id" yaml:"list_id"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Due         string     `json:"due,omitempty" yaml:"due,omitempty"`
	Priority    int        `json:"priority" yaml:"priority"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

func (l ListRecord) ToModel() model.ReminderList {
	return model.ReminderList{ID: l.ID, Name: l.Name}
}

func NewReminderRecord(m model.Reminder) ReminderRecord {
	rec := ReminderRecord{
		ID:          m.ID,
		Title:       m.Title,
		ListID:      m.ListID,
		Completed:   m.Completed,
		Priority:    m.Priority,
		Notes:       m.Notes,
		CreatedAt:   m.CreationDate,
		CompletedAt: m.CompletionDate,
	}
	if m.Due != nil {
		rec.Due = m.Due.String()
	}
	return rec
}

// ToModel converts a stored reminder. An unparsable due date is dropped and
// reported alongside the otherwise complete reminder.
func (rec ReminderRecord) ToModel(listName string) (model.Reminder, error) {
	m := model.Reminder{
		ID:             rec.ID,
		Title:          rec.Title,
		ListID:         rec.ListID,
		ListName:       listName,
		Completed:      rec.Completed,
		Priority:       rec.Priority,
		Notes:          rec.Notes,
		CreationDate:   rec.CreatedAt,
		CompletionDate: rec.CompletedAt,
	}
	if rec.Due == "" {
		return m, nil
	}
	due, err := duedate.Parse(rec.Due)
	if err != nil {
		return m, err
	}
	m.Due = &due
	return m, nil
}
