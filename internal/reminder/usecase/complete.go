package usecase

import (
	"context"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/internal/reminder/repository"
)

func (uc *implUseCase) CompleteReminder(ctx context.Context, input reminder.CompleteReminderInput) (reminder.CompleteReminderOutput, error) {
	target, err := uc.findTarget(ctx, input.Target)
	if err != nil {
		return reminder.CompleteReminderOutput{}, err
	}

	now := uc.now()
	target.Completed = true
	target.CompletionDate = &now

	saved, err := uc.store.Save(ctx, target)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.CompleteReminder.Save: %v", err)
		return reminder.CompleteReminderOutput{}, reminder.ErrCompleteFailed
	}
	return reminder.CompleteReminderOutput{Reminder: saved}, nil
}

// findTarget looks the target up among all incomplete reminders.
func (uc *implUseCase) findTarget(ctx context.Context, t reminder.Target) (model.Reminder, error) {
	if t.Empty() {
		return model.Reminder{}, reminder.ErrTargetRequired
	}
	r, ok := lookup(uc.fetch(ctx, repository.FetchOptions{}), t)
	if !ok {
		return model.Reminder{}, reminder.ErrReminderNotFound
	}
	return r, nil
}
