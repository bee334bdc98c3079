package reminder

import "context"

// UseCase defines the operations the bridge exposes over stdin/stdout.
type UseCase interface {
	// RequestAccess waits for the store to grant access, bounded by the access timeout.
	RequestAccess(ctx context.Context) error

	ListLists(ctx context.Context) (ListListsOutput, error)
	ListReminders(ctx context.Context, input ListRemindersInput) (ListRemindersOutput, error)
	CreateReminder(ctx context.Context, input CreateReminderInput) (CreateReminderOutput, error)
	CompleteReminder(ctx context.Context, input CompleteReminderInput) (CompleteReminderOutput, error)
	UpdateReminder(ctx context.Context, input UpdateReminderInput) (UpdateReminderOutput, error)

	// Snapshot dumps every incomplete reminder, sorted and grouped by list.
	Snapshot(ctx context.Context) (SnapshotOutput, error)
}
