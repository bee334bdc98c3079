package usecase

import (
	"context"
	"encoding/json"
	"fmt"
)

func (uc *implUseCase) Health(ctx context.Context) (json.RawMessage, error) {
	return uc.proxyGet(ctx, "/health")
}

func (uc *implUseCase) Recent(ctx context.Context) (json.RawMessage, error) {
	return uc.proxyGet(ctx, "/recent")
}

// proxyGet runs curl against the extractor inside the sandbox and returns its
// JSON body as-is.
func (uc *implUseCase) proxyGet(ctx context.Context, route string) (json.RawMessage, error) {
	out, err := uc.sandbox.Exec(ctx, fmt.Sprintf("curl -s %s%s", uc.cfg.ExtractorURL, route))
	if err != nil {
		uc.l.Warnf(ctx, "internal.bookmark.usecase.proxyGet: %s failed: %v", route, err)
		return nil, err
	}
	if !json.Valid([]byte(out)) {
		return nil, fmt.Errorf("extractor %s returned invalid JSON: %q", route, truncate(out, 200))
	}
	return json.RawMessage(out), nil
}
