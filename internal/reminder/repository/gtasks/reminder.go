package gtasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder/repository"
	"nanoclaw-bridges/pkg/duedate"
	"nanoclaw-bridges/pkg/gtasks"
)

var (
	ErrNoSuchList  = errors.New("no such list")
	ErrUnknownTask = errors.New("task was not fetched in this session")
)

func (r *implRepository) RequestAccess(ctx context.Context) error {
	return r.api.CheckAccess(ctx)
}

func (r *implRepository) Lists(ctx context.Context) ([]model.ReminderList, error) {
	taskLists, err := r.api.ListTaskLists(ctx)
	if err != nil {
		return nil, err
	}
	lists := make([]model.ReminderList, 0, len(taskLists))
	for _, tl := range taskLists {
		lists = append(lists, model.ReminderList{ID: tl.ID, Name: tl.Title})
	}
	return lists, nil
}

func (r *implRepository) FetchReminders(ctx context.Context, opt repository.FetchOptions) ([]model.Reminder, error) {
	lists, err := r.Lists(ctx)
	if err != nil {
		return nil, err
	}

	var out []model.Reminder
	for _, list := range lists {
		if !opt.IncludesList(list.ID) {
			continue
		}
		items, err := r.api.ListTasks(ctx, list.ID, opt.Completed)
		if err != nil {
			return nil, err
		}
		for _, t := range items {
			completed := t.Status == gtasks.StatusCompleted
			if completed != opt.Completed {
				continue
			}
			r.index.Add(t.ID, list.ID)
			out = append(out, toModel(t, list))
		}
	}
	return out, nil
}

// Save inserts new reminders and patches existing ones, moving them first
// when the list changed. Priority has no Google Tasks counterpart and is
// not persisted.
func (r *implRepository) Save(ctx context.Context, item model.Reminder) (model.Reminder, error) {
	list, err := r.findList(ctx, item.ListID)
	if err != nil {
		return model.Reminder{}, err
	}

	if item.ID == "" {
		created, err := r.api.InsertTask(ctx, list.ID, gtasks.Task{
			Title:  item.Title,
			Notes:  item.Notes,
			Status: status(item.Completed),
			Due:    dueTime(item.Due),
		})
		if err != nil {
			return model.Reminder{}, err
		}
		r.index.Add(created.ID, list.ID)
		return r.merge(item, *created, list), nil
	}

	current, ok := r.index.Get(item.ID)
	if !ok {
		return model.Reminder{}, fmt.Errorf("%w: %s", ErrUnknownTask, item.ID)
	}
	if current != list.ID {
		if _, err := r.api.MoveTask(ctx, current, item.ID, list.ID); err != nil {
			return model.Reminder{}, err
		}
		r.index.Add(item.ID, list.ID)
	}

	st := status(item.Completed)
	req := gtasks.PatchTaskRequest{
		ListID: list.ID,
		TaskID: item.ID,
		Title:  &item.Title,
		Notes:  &item.Notes,
		Status: &st,
	}
	if item.Due == nil {
		req.ClearDue = true
	} else {
		req.Due = dueTime(item.Due)
	}

	patched, err := r.api.PatchTask(ctx, req)
	if err != nil {
		return model.Reminder{}, err
	}
	return r.merge(item, *patched, list), nil
}

func (r *implRepository) findList(ctx context.Context, id string) (model.ReminderList, error) {
	lists, err := r.Lists(ctx)
	if err != nil {
		return model.ReminderList{}, err
	}
	for _, l := range lists {
		if l.ID == id {
			return l, nil
		}
	}
	return model.ReminderList{}, fmt.Errorf("%w: %s", ErrNoSuchList, id)
}

// merge reports what was saved. The caller's due time and priority are kept
// for the response since the API truncates the one and drops the other.
func (r *implRepository) merge(item model.Reminder, t gtasks.Task, list model.ReminderList) model.Reminder {
	saved := toModel(t, list)
	saved.Due = item.Due
	saved.Priority = item.Priority
	if saved.CompletionDate == nil {
		saved.CompletionDate = item.CompletionDate
	}
	return saved
}

func toModel(t gtasks.Task, list model.ReminderList) model.Reminder {
	m := model.Reminder{
		ID:             t.ID,
		Title:          t.Title,
		ListID:         list.ID,
		ListName:       list.Name,
		Completed:      t.Status == gtasks.StatusCompleted,
		Notes:          t.Notes,
		CompletionDate: t.Completed,
	}
	if t.Due != nil {
		due := duedate.FromTime(*t.Due, false)
		m.Due = &due
	}
	return m
}

func status(completed bool) string {
	if completed {
		return gtasks.StatusCompleted
	}
	return gtasks.StatusNeedsAction
}

func dueTime(c *duedate.Components) *time.Time {
	if c == nil {
		return nil
	}
	t := c.Time(time.UTC)
	return &t
}
