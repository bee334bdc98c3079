package usecase

import (
	"context"

	"nanoclaw-bridges/internal/reminder"
)

// UpdateReminder applies only the fields present in input. A list name that
// resolves to no list is ignored.
func (uc *implUseCase) UpdateReminder(ctx context.Context, input reminder.UpdateReminderInput) (reminder.UpdateReminderOutput, error) {
	target, err := uc.findTarget(ctx, input.Target)
	if err != nil {
		return reminder.UpdateReminderOutput{}, err
	}

	if input.Title != nil {
		target.Title = *input.Title
	}
	if input.Notes != nil {
		target.Notes = *input.Notes
	}
	if input.Priority != nil {
		target.Priority = *input.Priority
	}
	if input.ListName != nil {
		list, ok, err := uc.findList(ctx, *input.ListName)
		if err != nil {
			uc.l.Errorf(ctx, "internal.reminder.usecase.UpdateReminder: %v", err)
			return reminder.UpdateReminderOutput{}, err
		}
		if ok {
			target.ListID = list.ID
			target.ListName = list.Name
		}
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			target.Due = nil
		} else {
			due, err := parseDueDate(*input.DueDate)
			if err != nil {
				return reminder.UpdateReminderOutput{}, err
			}
			target.Due = due
		}
	}

	saved, err := uc.store.Save(ctx, target)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.UpdateReminder.Save: %v", err)
		return reminder.UpdateReminderOutput{}, reminder.ErrUpdateFailed
	}
	return reminder.UpdateReminderOutput{Reminder: saved}, nil
}
