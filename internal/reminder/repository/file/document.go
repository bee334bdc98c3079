package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"nanoclaw-bridges/internal/reminder/repository"
)

// document is the on-disk layout. Slice order is store order.
type document struct {
	Lists     []repository.ListRecord     `yaml:"lists"`
	Reminders []repository.ReminderRecord `yaml:"reminders"`
}

// load reads the document; a missing file reads as empty.
func (r *implRepository) load() (document, bool, error) {
	var doc document
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, fmt.Errorf("read %s: %w", r.path, err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return doc, true, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return doc, true, nil
}

// store writes the document atomically through a temp file in the same directory.
func (r *implRepository) store(doc document) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".reminders-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("rename %s: %w", r.path, err)
	}
	return nil
}

func (doc document) listName(id string) string {
	for _, l := range doc.Lists {
		if l.ID == id {
			return l.Name
		}
	}
	return ""
}
