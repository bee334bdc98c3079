package usecase

import (
	"context"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/internal/reminder/repository"
)

// RequestAccess waits for the store's grant. Refusal, failure and timeout all
// read as denied.
func (uc *implUseCase) RequestAccess(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.AccessTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- uc.store.RequestAccess(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			uc.l.Errorf(ctx, "internal.reminder.usecase.RequestAccess: %v", err)
			return reminder.ErrAccessDenied
		}
		return nil
	case <-ctx.Done():
		uc.l.Errorf(ctx, "internal.reminder.usecase.RequestAccess: no grant after %s", uc.cfg.AccessTimeout)
		return reminder.ErrAccessDenied
	}
}

type fetchResult struct {
	items []model.Reminder
	err   error
}

// fetch runs one bounded fetch. A failed or timed-out fetch returns no
// reminders, the same as an empty store.
func (uc *implUseCase) fetch(ctx context.Context, opt repository.FetchOptions) []model.Reminder {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	done := make(chan fetchResult, 1)
	go func() {
		items, err := uc.store.FetchReminders(ctx, opt)
		done <- fetchResult{items: items, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			uc.l.Warnf(ctx, "internal.reminder.usecase.fetch: %v", res.err)
			return nil
		}
		return res.items
	case <-ctx.Done():
		uc.l.Warnf(ctx, "internal.reminder.usecase.fetch: timed out after %s", uc.cfg.FetchTimeout)
		return nil
	}
}
