package usecase

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"nanoclaw-bridges/internal/bookmark"
)

// pullExtraction copies an extraction file from the sandbox vault into the
// intake directory. The .meta sidecar is copied when present; its failures
// are ignored.
func (uc *implUseCase) pullExtraction(ctx context.Context, filePath string) error {
	filename := path.Base(filePath)
	if filename == "." || filename == "/" || filename == ".." {
		return fmt.Errorf("%w: %q", bookmark.ErrInvalidFilePath, filePath)
	}

	content, err := uc.sandbox.Cat(ctx, uc.cfg.VaultRoot+"/"+strings.TrimPrefix(filePath, "/"))
	if err != nil {
		return err
	}

	localPath := filepath.Join(uc.cfg.IntakeDir, filename)
	if err := os.WriteFile(localPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}
	uc.l.Infof(ctx, "Pulled %s -> %s (%d bytes)", filename, localPath, len(content))

	stem := strings.TrimSuffix(filename, path.Ext(filename))
	if stem == "" {
		stem = filename
	}
	metaRemote := fmt.Sprintf("%s/%s/%s.json", uc.cfg.VaultRoot, uc.cfg.MetaDir, stem)
	meta, err := uc.sandbox.Cat(ctx, metaRemote)
	if err != nil {
		uc.l.Debugf(ctx, "internal.bookmark.usecase.pullExtraction: no metadata for %s: %v", stem, err)
		return nil
	}

	metaDir := filepath.Join(uc.cfg.IntakeDir, ".meta")
	if err := os.MkdirAll(metaDir, 0755); err != nil {
		uc.l.Debugf(ctx, "internal.bookmark.usecase.pullExtraction: %v", err)
		return nil
	}
	if err := os.WriteFile(filepath.Join(metaDir, stem+".json"), []byte(meta), 0644); err != nil {
		uc.l.Debugf(ctx, "internal.bookmark.usecase.pullExtraction: %v", err)
	}
	return nil
}
