package gtasks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder/repository"
	"nanoclaw-bridges/pkg/duedate"
	"nanoclaw-bridges/pkg/gtasks"
	pkgLog "nanoclaw-bridges/pkg/log"
)

type fakeAPI struct {
	accessErr error
	lists     []gtasks.TaskList
	tasks     map[string][]gtasks.Task // by list id
	nextID    int

	moves   []string
	patches []gtasks.PatchTaskRequest
}

func (f *fakeAPI) CheckAccess(ctx context.Context) error { return f.accessErr }

func (f *fakeAPI) ListTaskLists(ctx context.Context) ([]gtasks.TaskList, error) {
	return f.lists, nil
}

func (f *fakeAPI) ListTasks(ctx context.Context, listID string, showCompleted bool) ([]gtasks.Task, error) {
	var out []gtasks.Task
	for _, t := range f.tasks[listID] {
		if showCompleted || t.Status != gtasks.StatusCompleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeAPI) InsertTask(ctx context.Context, listID string, t gtasks.Task) (*gtasks.Task, error) {
	f.nextID++
	t.ID = fmt.Sprintf("t%d", f.nextID)
	f.tasks[listID] = append(f.tasks[listID], t)
	return &t, nil
}

func (f *fakeAPI) PatchTask(ctx context.Context, req gtasks.PatchTaskRequest) (*gtasks.Task, error) {
	f.patches = append(f.patches, req)
	for i, t := range f.tasks[req.ListID] {
		if t.ID != req.TaskID {
			continue
		}
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
		if req.Status != nil {
			t.Status = *req.Status
		}
		if req.ClearDue {
			t.Due = nil
		} else if req.Due != nil {
			t.Due = req.Due
		}
		f.tasks[req.ListID][i] = t
		return &t, nil
	}
	return nil, errors.New("404")
}

func (f *fakeAPI) MoveTask(ctx context.Context, listID, taskID, destListID string) (*gtasks.Task, error) {
	f.moves = append(f.moves, listID+"->"+destListID)
	for i, t := range f.tasks[listID] {
		if t.ID == taskID {
			f.tasks[listID] = append(f.tasks[listID][:i], f.tasks[listID][i+1:]...)
			f.tasks[destListID] = append(f.tasks[destListID], t)
			return &t, nil
		}
	}
	return nil, errors.New("404")
}

func newFake() *fakeAPI {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return &fakeAPI{
		lists: []gtasks.TaskList{{ID: "L1", Title: "Inbox"}, {ID: "L2", Title: "Work"}},
		tasks: map[string][]gtasks.Task{
			"L1": {
				{ID: "a", Title: "Pay rent", Status: gtasks.StatusNeedsAction, Due: &due},
				{ID: "b", Title: "Old", Status: gtasks.StatusCompleted},
			},
			"L2": {
				{ID: "c", Title: "Ship", Status: gtasks.StatusNeedsAction},
			},
		},
	}
}

func newTestRepo(t *testing.T, api tasksAPI) *implRepository {
	t.Helper()
	r, err := newRepository(pkgLog.NewNop(), api)
	if err != nil {
		t.Fatalf("newRepository: %v", err)
	}
	return r
}

func TestFetchReminders(t *testing.T) {
	r := newTestRepo(t, newFake())
	ctx := context.Background()

	items, err := r.FetchReminders(ctx, repository.FetchOptions{})
	if err != nil {
		t.Fatalf("FetchReminders: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ListName != "Work" {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].Due == nil || items[0].Due.String() != "2026-04-01" || items[0].Due.HasTime() {
		t.Errorf("expected date-only due, got %v", items[0].Due)
	}
	if items[0].Priority != 0 {
		t.Errorf("priority should read as 0")
	}

	done, err := r.FetchReminders(ctx, repository.FetchOptions{Completed: true, ListIDs: []string{"L1"}})
	if err != nil {
		t.Fatalf("FetchReminders: %v", err)
	}
	if len(done) != 1 || done[0].ID != "b" || !done[0].Completed {
		t.Errorf("unexpected completed items %+v", done)
	}
}

func TestSaveInsert(t *testing.T) {
	api := newFake()
	r := newTestRepo(t, api)

	d := duedate.DateTime(2026, 5, 2, 14, 30)
	saved, err := r.Save(context.Background(), model.Reminder{Title: "New", ListID: "L2", Priority: 5, Due: &d})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != "t1" || saved.ListName != "Work" || saved.Priority != 5 {
		t.Errorf("unexpected saved %+v", saved)
	}
	if saved.Due == nil || saved.Due.String() != "2026-05-02T14:30:00" {
		t.Errorf("response should keep the requested due, got %v", saved.Due)
	}
	stored := api.tasks["L2"][1]
	if stored.Status != gtasks.StatusNeedsAction || stored.Due == nil || stored.Due.Day() != 2 {
		t.Errorf("unexpected stored task %+v", stored)
	}

	if _, err := r.Save(context.Background(), model.Reminder{Title: "x", ListID: "nope"}); !errors.Is(err, ErrNoSuchList) {
		t.Errorf("expected ErrNoSuchList, got %v", err)
	}
}

func TestSaveUpdate(t *testing.T) {
	api := newFake()
	r := newTestRepo(t, api)
	ctx := context.Background()

	if _, err := r.Save(ctx, model.Reminder{ID: "a", Title: "x", ListID: "L1"}); !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask before fetch, got %v", err)
	}

	items, _ := r.FetchReminders(ctx, repository.FetchOptions{})
	target := items[0]
	target.Completed = true
	target.Due = nil
	target.ListID = "L2"

	saved, err := r.Save(ctx, target)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(api.moves) != 1 || api.moves[0] != "L1->L2" {
		t.Errorf("expected a move to L2, got %v", api.moves)
	}
	req := api.patches[0]
	if req.ListID != "L2" || !req.ClearDue || *req.Status != gtasks.StatusCompleted {
		t.Errorf("unexpected patch %+v", req)
	}
	if !saved.Completed || saved.ListName != "Work" || saved.Due != nil {
		t.Errorf("unexpected saved %+v", saved)
	}
}

func TestRequestAccess(t *testing.T) {
	api := newFake()
	api.accessErr = errors.New("401")
	r := newTestRepo(t, api)
	if err := r.RequestAccess(context.Background()); err == nil {
		t.Fatal("expected access error")
	}
}
