package usecase

import (
	"context"

	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/internal/reminder/repository"
)

func (uc *implUseCase) ListLists(ctx context.Context) (reminder.ListListsOutput, error) {
	lists, err := uc.store.Lists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.ListLists: %v", err)
		return reminder.ListListsOutput{}, err
	}
	return reminder.ListListsOutput{Lists: lists}, nil
}

// ListReminders returns incomplete reminders of one list or all lists,
// completed ones appended on request, then sorted overdue-first.
func (uc *implUseCase) ListReminders(ctx context.Context, input reminder.ListRemindersInput) (reminder.ListRemindersOutput, error) {
	opt := repository.FetchOptions{}
	if input.ListName != "" {
		list, ok, err := uc.findList(ctx, input.ListName)
		if err != nil {
			uc.l.Errorf(ctx, "internal.reminder.usecase.ListReminders: %v", err)
			return reminder.ListRemindersOutput{}, err
		}
		if !ok {
			return reminder.ListRemindersOutput{}, &reminder.ListNotFoundError{Name: input.ListName}
		}
		opt.ListIDs = []string{list.ID}
	}

	items := uc.fetch(ctx, opt)
	if input.IncludeCompleted {
		opt.Completed = true
		items = append(items, uc.fetch(ctx, opt)...)
	}

	uc.sortReminders(items)
	return reminder.ListRemindersOutput{Reminders: items}, nil
}
