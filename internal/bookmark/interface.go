package bookmark

import (
	"context"
	"encoding/json"
)

// UseCase defines the relay operations in front of the bookmark extractor sandbox.
type UseCase interface {
	// Health proxies the extractor's /health endpoint.
	Health(ctx context.Context) (json.RawMessage, error)

	// Recent proxies the extractor's /recent endpoint.
	Recent(ctx context.Context) (json.RawMessage, error)

	// Intake forwards a bookmark to the extractor and pulls the created file back.
	Intake(ctx context.Context, input IntakeInput) (IntakeOutput, error)
}

// Sandbox runs commands and reads files inside the remote execution environment.
type Sandbox interface {
	Exec(ctx context.Context, cmd string) (string, error)
	Cat(ctx context.Context, remotePath string) (string, error)
}
