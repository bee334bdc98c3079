package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder/repository"
)

var (
	ErrNoSuchList     = errors.New("no such list")
	ErrNoSuchReminder = errors.New("no such reminder")
)

// RequestAccess creates the document, seeded with the default list, when it
// does not exist yet.
func (r *implRepository) RequestAccess(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists, err := r.load()
	if err != nil || exists {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	doc := document{Lists: []repository.ListRecord{{ID: r.newID(), Name: r.seed}}}
	if err := r.store(doc); err != nil {
		return err
	}
	r.l.Infof(ctx, "internal.reminder.repository.file: created %s with list %q", r.path, r.seed)
	return nil
}

func (r *implRepository) Lists(ctx context.Context) ([]model.ReminderList, error) {
	r.mu.Lock()
	doc, _, err := r.load()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	lists := make([]model.ReminderList, 0, len(doc.Lists))
	for _, l := range doc.Lists {
		lists = append(lists, l.ToModel())
	}
	return lists, nil
}

func (r *implRepository) FetchReminders(ctx context.Context, opt repository.FetchOptions) ([]model.Reminder, error) {
	r.mu.Lock()
	doc, _, err := r.load()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var out []model.Reminder
	for _, d := range doc.Reminders {
		if !opt.Matches(d.ListID, d.Completed) {
			continue
		}
		item, err := d.ToModel(doc.listName(d.ListID))
		if err != nil {
			r.l.Warnf(ctx, "internal.reminder.repository.file: reminder %s: %v", d.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *implRepository) Save(ctx context.Context, item model.Reminder) (model.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return model.Reminder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, _, err := r.load()
	if err != nil {
		return model.Reminder{}, err
	}
	listName := doc.listName(item.ListID)
	if listName == "" {
		return model.Reminder{}, fmt.Errorf("%w: %s", ErrNoSuchList, item.ListID)
	}

	if item.ID == "" {
		now := r.now()
		item.ID = r.newID()
		item.CreationDate = &now
		doc.Reminders = append(doc.Reminders, repository.NewReminderRecord(item))
	} else {
		i := doc.indexOf(item.ID)
		if i < 0 {
			return model.Reminder{}, fmt.Errorf("%w: %s", ErrNoSuchReminder, item.ID)
		}
		item.CreationDate = doc.Reminders[i].CreatedAt
		doc.Reminders[i] = repository.NewReminderRecord(item)
	}

	if err := r.store(doc); err != nil {
		return model.Reminder{}, err
	}
	item.ListName = listName
	return item, nil
}

func (doc document) indexOf(id string) int {
	for i, d := range doc.Reminders {
		if d.ID == id {
			return i
		}
	}
	return -1
}
