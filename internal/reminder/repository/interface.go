package repository

import (
	"context"

	"nanoclaw-bridges/internal/model"
)

// Store is the reminders backend the bridge operates on.
type Store interface {
	// RequestAccess blocks until the store is usable or refuses access.
	RequestAccess(ctx context.Context) error

	// Lists returns every reminder list in store order.
	Lists(ctx context.Context) ([]model.ReminderList, error)

	// FetchReminders returns reminders matching opt in store order.
	FetchReminders(ctx context.Context, opt FetchOptions) ([]model.Reminder, error)

	// Save creates the reminder when its ID is empty and updates it otherwise.
	// The returned value reflects what was persisted.
	Save(ctx context.Context, r model.Reminder) (model.Reminder, error)
}
