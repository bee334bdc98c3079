package usecase

import (
	"context"

	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/internal/reminder/repository"
)

func (uc *implUseCase) Snapshot(ctx context.Context) (reminder.SnapshotOutput, error) {
	items := uc.fetch(ctx, repository.FetchOptions{})
	uc.sortReminders(items)

	var groups []reminder.ListGroup
	index := make(map[string]int)
	for _, r := range items {
		i, ok := index[r.ListName]
		if !ok {
			i = len(groups)
			index[r.ListName] = i
			groups = append(groups, reminder.ListGroup{Name: r.ListName})
		}
		groups[i].Reminders = append(groups[i].Reminders, r)
	}

	return reminder.SnapshotOutput{
		Reminders: items,
		ByList:    groups,
		Timestamp: uc.now(),
	}, nil
}
