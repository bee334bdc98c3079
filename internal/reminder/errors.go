package reminder

import (
	"errors"
	"fmt"
)

// Messages are part of the bridge's output contract.
var (
	ErrAccessDenied     = errors.New("Reminders access denied. Grant the bridge access to the configured reminders store.")
	ErrTitleRequired    = errors.New("title is required")
	ErrListNotFound     = errors.New("list not found")
	ErrTargetRequired   = errors.New("reminder_id or title_match required")
	ErrReminderNotFound = errors.New("Reminder not found")
	ErrInvalidDueDate   = errors.New("Invalid due_date format")
	ErrSaveFailed       = errors.New("Failed to save reminder")
	ErrCompleteFailed   = errors.New("Failed to complete reminder")
	ErrUpdateFailed     = errors.New("Failed to update reminder")
)

// ListNotFoundError names the list that could not be resolved.
type ListNotFoundError struct {
	Name string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("List %s not found", e.Name)
}

func (e *ListNotFoundError) Is(target error) bool {
	return target == ErrListNotFound
}
