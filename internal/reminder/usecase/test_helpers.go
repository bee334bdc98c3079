package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeStore is an in-memory store keeping insertion order.
type fakeStore struct {
	mu        sync.Mutex
	lists     []model.ReminderList
	reminders []model.Reminder
	nextID    int
	saves     int

	accessErr   error
	accessDelay time.Duration
	fetchErr    error
	fetchDelay  time.Duration
	saveErr     error
}

func newFakeStore(lists ...string) *fakeStore {
	s := &fakeStore{}
	for i, name := range lists {
		s.lists = append(s.lists, model.ReminderList{ID: fmt.Sprintf("list-%d", i+1), Name: name})
	}
	return s
}

func (s *fakeStore) add(r model.Reminder) model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		s.nextID++
		r.ID = fmt.Sprintf("r-%d", s.nextID)
	}
	for _, l := range s.lists {
		if l.ID == r.ListID || (r.ListID == "" && l.Name == r.ListName) {
			r.ListID, r.ListName = l.ID, l.Name
		}
	}
	s.reminders = append(s.reminders, r)
	return r
}

func (s *fakeStore) RequestAccess(ctx context.Context) error {
	if s.accessDelay > 0 {
		select {
		case <-time.After(s.accessDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.accessErr
}

func (s *fakeStore) Lists(ctx context.Context) ([]model.ReminderList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ReminderList(nil), s.lists...), nil
}

func (s *fakeStore) FetchReminders(ctx context.Context, opt repository.FetchOptions) ([]model.Reminder, error) {
	if s.fetchDelay > 0 {
		time.Sleep(s.fetchDelay)
	}
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Reminder
	for _, r := range s.reminders {
		if opt.Matches(r.ListID, r.Completed) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) Save(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	if s.saveErr != nil {
		return model.Reminder{}, s.saveErr
	}
	s.mu.Lock()
	s.saves++
	if r.ID != "" {
		for i := range s.reminders {
			if s.reminders[i].ID == r.ID {
				s.reminders[i] = r
				s.mu.Unlock()
				return r, nil
			}
		}
		s.mu.Unlock()
		return model.Reminder{}, errors.New("no such reminder")
	}
	s.mu.Unlock()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.CreationDate = &now
	return s.add(r), nil
}

func (s *fakeStore) get(id string) (model.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reminders {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reminder{}, false
}
