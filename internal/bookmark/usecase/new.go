package usecase

import (
	"nanoclaw-bridges/internal/bookmark"
	pkgLog "nanoclaw-bridges/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	sandbox bookmark.Sandbox
	cfg     bookmark.Config
}

// New creates a new bookmark relay UseCase instance.
func New(l pkgLog.Logger, sandbox bookmark.Sandbox, cfg bookmark.Config) bookmark.UseCase {
	return &implUseCase{
		l:       l,
		sandbox: sandbox,
		cfg:     cfg,
	}
}
