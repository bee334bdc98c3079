package gtasks

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"nanoclaw-bridges/internal/reminder/repository"
	"nanoclaw-bridges/pkg/gtasks"
	pkgLog "nanoclaw-bridges/pkg/log"
)

const indexSize = 4096

// tasksAPI is the subset of the Google Tasks client the store needs.
type tasksAPI interface {
	CheckAccess(ctx context.Context) error
	ListTaskLists(ctx context.Context) ([]gtasks.TaskList, error)
	ListTasks(ctx context.Context, listID string, showCompleted bool) ([]gtasks.Task, error)
	InsertTask(ctx context.Context, listID string, t gtasks.Task) (*gtasks.Task, error)
	PatchTask(ctx context.Context, req gtasks.PatchTaskRequest) (*gtasks.Task, error)
	MoveTask(ctx context.Context, listID, taskID, destListID string) (*gtasks.Task, error)
}

type implRepository struct {
	api tasksAPI
	l   pkgLog.Logger

	// index maps task id to the list it was last seen in. Tasks are addressed
	// per list, so a save needs the list the task currently lives in.
	index *lru.Cache[string, string]
}

// New creates a store backed by Google Tasks. Task lists are reminder lists.
func New(l pkgLog.Logger, api *gtasks.Client) (repository.Store, error) {
	r, err := newRepository(l, api)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newRepository(l pkgLog.Logger, api tasksAPI) (*implRepository, error) {
	index, err := lru.New[string, string](indexSize)
	if err != nil {
		return nil, err
	}
	return &implRepository{
		api:   api,
		l:     l,
		index: index,
	}, nil
}
