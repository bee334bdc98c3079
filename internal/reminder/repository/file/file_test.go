package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder/repository"
	"nanoclaw-bridges/pkg/duedate"
	pkgLog "nanoclaw-bridges/pkg/log"
)

func newTestRepo(t *testing.T) (*implRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "reminders.yaml")
	r := New(pkgLog.NewNop(), Options{Path: path}).(*implRepository)

	n := 0
	r.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	r.now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }
	return r, path
}

func TestRequestAccessSeedsInbox(t *testing.T) {
	r, path := newTestRepo(t)
	ctx := context.Background()

	if err := r.RequestAccess(ctx); err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file not created: %v", err)
	}

	lists, err := r.Lists(ctx)
	if err != nil {
		t.Fatalf("Lists: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Inbox" || lists[0].ID != "id-1" {
		t.Errorf("unexpected lists %+v", lists)
	}

	// A second grant must not reseed.
	if err := r.RequestAccess(ctx); err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if lists, _ := r.Lists(ctx); len(lists) != 1 {
		t.Errorf("expected 1 list, got %d", len(lists))
	}
}

func TestRequestAccessCorruptFile(t *testing.T) {
	r, path := newTestRepo(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("lists: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := r.RequestAccess(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveAndFetch(t *testing.T) {
	r, path := newTestRepo(t)
	ctx := context.Background()
	if err := r.RequestAccess(ctx); err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}

	d := duedate.DateTime(2026, 3, 1, 9, 30)
	created, err := r.Save(ctx, model.Reminder{Title: "Pay rent", ListID: "id-1", Priority: 1, Due: &d, Notes: "n"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if created.ID != "id-2" || created.ListName != "Inbox" || created.CreationDate == nil {
		t.Errorf("unexpected created reminder %+v", created)
	}
	if _, err := r.Save(ctx, model.Reminder{Title: "Walk dog", ListID: "id-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	items, err := r.FetchReminders(ctx, repository.FetchOptions{})
	if err != nil {
		t.Fatalf("FetchReminders: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Pay rent" || items[1].Title != "Walk dog" {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].Due == nil || items[0].Due.String() != "2026-03-01T09:30:00" {
		t.Errorf("due date not round-tripped: %v", items[0].Due)
	}
	if items[0].CreationDate == nil || !items[0].CreationDate.Equal(*created.CreationDate) {
		t.Errorf("creation date not round-tripped")
	}

	// Complete the first one; it leaves the incomplete set.
	done := items[0]
	done.Completed = true
	if _, err := r.Save(ctx, done); err != nil {
		t.Fatalf("Save: %v", err)
	}
	incomplete, _ := r.FetchReminders(ctx, repository.FetchOptions{})
	completed, _ := r.FetchReminders(ctx, repository.FetchOptions{Completed: true})
	if len(incomplete) != 1 || len(completed) != 1 || completed[0].ID != "id-2" {
		t.Errorf("unexpected split: %d incomplete, %d completed", len(incomplete), len(completed))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "title: Pay rent") {
		t.Errorf("expected YAML document, got:\n%s", raw)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestSaveErrors(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	if err := r.RequestAccess(ctx); err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}

	if _, err := r.Save(ctx, model.Reminder{Title: "x", ListID: "missing"}); !errors.Is(err, ErrNoSuchList) {
		t.Errorf("expected ErrNoSuchList, got %v", err)
	}
	if _, err := r.Save(ctx, model.Reminder{ID: "ghost", Title: "x", ListID: "id-1"}); !errors.Is(err, ErrNoSuchReminder) {
		t.Errorf("expected ErrNoSuchReminder, got %v", err)
	}
}

func TestFetchFilterByList(t *testing.T) {
	r, path := newTestRepo(t)
	ctx := context.Background()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	doc := `lists:
  - {id: a, name: Inbox}
  - {id: b, name: Work}
reminders:
  - {id: "1", title: one, list_id: a, completed: false, priority: 0}
  - {id: "2", title: two, list_id: b, completed: false, priority: 0, due: "2026-01-05"}
  - {id: "3", title: three, list_id: b, completed: false, priority: 0, due: "garbage"}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	items, err := r.FetchReminders(ctx, repository.FetchOptions{ListIDs: []string{"b"}})
	if err != nil {
		t.Fatalf("FetchReminders: %v", err)
	}
	if len(items) != 2 || items[0].ListName != "Work" {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].Due == nil || items[0].Due.HasTime() {
		t.Errorf("expected date-only due, got %v", items[0].Due)
	}
	if items[1].Due != nil {
		t.Errorf("unparsable due should be dropped, got %v", items[1].Due)
	}
}
