package file

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nanoclaw-bridges/internal/reminder/repository"
	pkgLog "nanoclaw-bridges/pkg/log"
)

const defaultListName = "Inbox"

// Options configures the YAML file store.
type Options struct {
	Path        string // YAML document holding lists and reminders
	DefaultList string // list seeded into a new document
}

type implRepository struct {
	mu    sync.Mutex
	path  string
	seed  string
	l     pkgLog.Logger
	newID func() string
	now   func() time.Time
}

// New creates a store backed by a single YAML file.
func New(l pkgLog.Logger, opt Options) repository.Store {
	seed := opt.DefaultList
	if seed == "" {
		seed = defaultListName
	}
	return &implRepository{
		path:  opt.Path,
		seed:  seed,
		l:     l,
		newID: func() string { return uuid.NewString() },
		now:   time.Now,
	}
}
