package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"nanoclaw-bridges/internal/bookmark"
)

func (uc *implUseCase) Intake(ctx context.Context, input bookmark.IntakeInput) (bookmark.IntakeOutput, error) {
	body := input.Body
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := validateIntakeBody(body); err != nil {
		return bookmark.IntakeOutput{}, err
	}

	out, err := uc.sandbox.Exec(ctx, intakeCommand(uc.cfg.ExtractorURL, body))
	if err != nil {
		uc.l.Errorf(ctx, "internal.bookmark.usecase.Intake: forward failed: %v", err)
		return bookmark.IntakeOutput{}, err
	}

	result, err := decodeObject([]byte(out))
	if err != nil {
		return bookmark.IntakeOutput{}, fmt.Errorf("extractor returned invalid JSON: %w", err)
	}

	status, _ := result[bookmark.KeyStatus].(string)
	filePath, _ := result[bookmark.KeyFilePath].(string)
	if status == bookmark.StatusCreated && filePath != "" {
		if err := uc.pullExtraction(ctx, filePath); err != nil {
			uc.l.Warnf(ctx, "internal.bookmark.usecase.Intake: pull-back failed: %v", err)
			result[bookmark.KeySynced] = false
			result[bookmark.KeySyncError] = err.Error()
		} else {
			result[bookmark.KeySynced] = true
		}
	}

	return bookmark.IntakeOutput{Result: result}, nil
}

// validateIntakeBody requires a JSON document with a top-level url key.
func validateIntakeBody(body []byte) error {
	if !json.Valid(body) {
		return bookmark.ErrInvalidJSON
	}
	payload, err := decodeObject(body)
	if err != nil {
		return bookmark.ErrMissingURL
	}
	if _, ok := payload["url"]; !ok {
		return bookmark.ErrMissingURL
	}
	return nil
}
