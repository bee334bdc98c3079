package repository

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/pkg/duedate"
)

func TestReminderRecordModel(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	due, err := duedate.Parse("2026-03-05T14:30:00")
	if err != nil {
		t.Fatalf("parse due: %v", err)
	}
	in := model.Reminder{
		ID:           "r1",
		Title:        "Call",
		ListID:       "l1",
		ListName:     "ignored",
		Priority:     1,
		Notes:        "n",
		Due:          &due,
		CreationDate: &created,
	}

	rec := NewReminderRecord(in)
	if rec.Due != "2026-03-05T14:30:00" {
		t.Errorf("unexpected due %q", rec.Due)
	}

	out, err := rec.ToModel("Inbox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ListName != "Inbox" || out.Title != "Call" || out.Priority != 1 {
		t.Errorf("unexpected reminder %+v", out)
	}
	if out.Due == nil || out.Due.String() != due.String() {
		t.Errorf("due not carried: %+v", out.Due)
	}
	if out.CreationDate == nil || !out.CreationDate.Equal(created) {
		t.Errorf("creation date not carried: %v", out.CreationDate)
	}
}

func TestReminderRecordBadDue(t *testing.T) {
	out, err := ReminderRecord{ID: "r1", Title: "x", Due: "soon"}.ToModel("Inbox")
	if err == nil {
		t.Fatal("expected due parse error")
	}
	if out.ID != "r1" || out.Due != nil {
		t.Errorf("expected reminder without due, got %+v", out)
	}
}

func TestReminderRecordEncodingsAgree(t *testing.T) {
	rec := ReminderRecord{ID: "r1", Title: "x", ListID: "l1", Due: "2026-03-05", Priority: 5}

	rawJSON, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	rawYAML, err := yaml.Marshal(rec)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}

	var fromJSON, fromYAML map[string]any
	if err := json.Unmarshal(rawJSON, &fromJSON); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if err := yaml.Unmarshal(rawYAML, &fromYAML); err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if len(fromJSON) != len(fromYAML) {
		t.Fatalf("key sets differ: %v vs %v", fromJSON, fromYAML)
	}
	for k := range fromJSON {
		if _, ok := fromYAML[k]; !ok {
			t.Errorf("yaml missing key %q", k)
		}
	}
}
