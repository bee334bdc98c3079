package stdio

import (
	"context"
	"encoding/json"

	"nanoclaw-bridges/internal/reminder"
)

func (h *handler) listLists(ctx context.Context, _ map[string]json.RawMessage) (any, error) {
	out, err := h.uc.ListLists(ctx)
	if err != nil {
		return nil, err
	}
	return newListListsResp(out), nil
}

func (h *handler) listReminders(ctx context.Context, params map[string]json.RawMessage) (any, error) {
	var input reminder.ListRemindersInput
	if _, err := param(params, "list_name", &input.ListName); err != nil {
		return nil, err
	}
	if _, err := param(params, "include_completed", &input.IncludeCompleted); err != nil {
		return nil, err
	}

	out, err := h.uc.ListReminders(ctx, input)
	if err != nil {
		return nil, err
	}
	return newListRemindersResp(out), nil
}

func (h *handler) createReminder(ctx context.Context, params map[string]json.RawMessage) (any, error) {
	var input reminder.CreateReminderInput
	for _, f := range []struct {
		key string
		dst any
	}{
		{"title", &input.Title},
		{"list_name", &input.ListName},
		{"due_date", &input.DueDate},
		{"notes", &input.Notes},
		{"priority", &input.Priority},
	} {
		if _, err := param(params, f.key, f.dst); err != nil {
			return nil, err
		}
	}

	out, err := h.uc.CreateReminder(ctx, input)
	if err != nil {
		return nil, err
	}
	return createdResp{Created: toReminderResp(out.Reminder)}, nil
}

func (h *handler) completeReminder(ctx context.Context, params map[string]json.RawMessage) (any, error) {
	target, err := decodeTarget(params)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.CompleteReminder(ctx, reminder.CompleteReminderInput{Target: target})
	if err != nil {
		return nil, err
	}
	return completedResp{Completed: toReminderResp(out.Reminder)}, nil
}

func (h *handler) updateReminder(ctx context.Context, params map[string]json.RawMessage) (any, error) {
	target, err := decodeTarget(params)
	if err != nil {
		return nil, err
	}

	input := reminder.UpdateReminderInput{Target: target}
	if input.Title, err = optionalString(params, "title"); err != nil {
		return nil, err
	}
	if input.Notes, err = optionalString(params, "notes"); err != nil {
		return nil, err
	}
	if input.Priority, err = optionalInt(params, "priority"); err != nil {
		return nil, err
	}
	if input.ListName, err = optionalString(params, "list_name"); err != nil {
		return nil, err
	}
	if input.DueDate, err = optionalString(params, "due_date"); err != nil {
		return nil, err
	}

	out, err := h.uc.UpdateReminder(ctx, input)
	if err != nil {
		return nil, err
	}
	return updatedResp{Updated: toReminderResp(out.Reminder)}, nil
}

func (h *handler) snapshot(ctx context.Context, _ map[string]json.RawMessage) (any, error) {
	out, err := h.uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return newSnapshotResp(out), nil
}

func decodeTarget(params map[string]json.RawMessage) (reminder.Target, error) {
	var t reminder.Target
	if _, err := param(params, "reminder_id", &t.ReminderID); err != nil {
		return t, err
	}
	if _, err := param(params, "title_match", &t.TitleMatch); err != nil {
		return t, err
	}
	return t, nil
}
