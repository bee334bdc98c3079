package usecase

import (
	"context"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder"
)

// CreateReminder validates the input before touching the store, then persists
// a new reminder.
func (uc *implUseCase) CreateReminder(ctx context.Context, input reminder.CreateReminderInput) (reminder.CreateReminderOutput, error) {
	if input.Title == "" {
		return reminder.CreateReminderOutput{}, reminder.ErrTitleRequired
	}

	listName := input.ListName
	if listName == "" {
		listName = uc.cfg.DefaultList
	}
	list, ok, err := uc.findList(ctx, listName)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.CreateReminder: %v", err)
		return reminder.CreateReminderOutput{}, err
	}
	if !ok {
		return reminder.CreateReminderOutput{}, &reminder.ListNotFoundError{Name: listName}
	}

	r := model.Reminder{
		Title:    input.Title,
		ListID:   list.ID,
		ListName: list.Name,
		Priority: input.Priority,
		Notes:    input.Notes,
	}
	if input.DueDate != "" {
		due, err := parseDueDate(input.DueDate)
		if err != nil {
			return reminder.CreateReminderOutput{}, err
		}
		r.Due = due
	}

	saved, err := uc.store.Save(ctx, r)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.CreateReminder.Save: %v", err)
		return reminder.CreateReminderOutput{}, reminder.ErrSaveFailed
	}
	return reminder.CreateReminderOutput{Reminder: saved}, nil
}
