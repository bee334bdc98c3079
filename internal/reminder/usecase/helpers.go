package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/pkg/duedate"
)

// findList resolves a list by case-insensitive name; the first match wins.
func (uc *implUseCase) findList(ctx context.Context, name string) (model.ReminderList, bool, error) {
	lists, err := uc.store.Lists(ctx)
	if err != nil {
		return model.ReminderList{}, false, fmt.Errorf("store.Lists: %w", err)
	}
	for _, l := range lists {
		if strings.EqualFold(l.Name, name) {
			return l, true, nil
		}
	}
	return model.ReminderList{}, false, nil
}

// sortReminders orders overdue first, then dated, then undated, each tier by
// ascending due date. Equal keys keep store order.
func (uc *implUseCase) sortReminders(items []model.Reminder) {
	today := uc.now().Format(duedate.DateLayout)

	type key struct {
		tier int
		due  string
	}
	keyOf := func(r model.Reminder) key {
		if r.Due == nil {
			return key{tier: 2, due: "9999"}
		}
		due := r.Due.String()
		if due[:10] < today {
			return key{tier: 0, due: due}
		}
		return key{tier: 1, due: due}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := keyOf(items[i]), keyOf(items[j])
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		return a.due < b.due
	})
}

// lookup scans reminders once in order. Per item the id is checked before the
// title, and the first hit wins.
func lookup(items []model.Reminder, t reminder.Target) (model.Reminder, bool) {
	match := strings.ToLower(t.TitleMatch)
	for _, r := range items {
		if t.ReminderID != "" && r.ID == t.ReminderID {
			return r, true
		}
		if t.TitleMatch != "" && strings.Contains(strings.ToLower(r.Title), match) {
			return r, true
		}
	}
	return model.Reminder{}, false
}

func parseDueDate(s string) (*duedate.Components, error) {
	c, err := duedate.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reminder.ErrInvalidDueDate, err)
	}
	return &c, nil
}
