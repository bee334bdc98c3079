package reminder

// Operation names accepted on stdin, in the order they are advertised.
const (
	OpListLists        = "list_lists"
	OpListReminders    = "list_reminders"
	OpCreateReminder   = "create_reminder"
	OpCompleteReminder = "complete_reminder"
	OpUpdateReminder   = "update_reminder"
	OpSnapshot         = "snapshot"
)

// Operations lists every valid operation name.
var Operations = []string{
	OpListLists,
	OpListReminders,
	OpCreateReminder,
	OpCompleteReminder,
	OpUpdateReminder,
	OpSnapshot,
}
