package usecase

import (
	"time"

	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/internal/reminder/repository"
	pkgLog "nanoclaw-bridges/pkg/log"
)

const (
	defaultAccessTimeout = 10 * time.Second
	defaultFetchTimeout  = 30 * time.Second
	defaultListName      = "Inbox"
)

type implUseCase struct {
	l     pkgLog.Logger
	store repository.Store
	cfg   reminder.Config
	now   func() time.Time
}

// New creates a new reminders bridge UseCase instance.
func New(l pkgLog.Logger, store repository.Store, cfg reminder.Config) reminder.UseCase {
	if cfg.AccessTimeout <= 0 {
		cfg.AccessTimeout = defaultAccessTimeout
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.DefaultList == "" {
		cfg.DefaultList = defaultListName
	}
	return &implUseCase{
		l:     l,
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}
