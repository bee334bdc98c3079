package stdio

import (
	"context"
	"encoding/json"
	"io"

	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/pkg/log"
)

// Handler runs one bridge invocation: one request on in, one JSON line on out.
type Handler interface {
	Serve(ctx context.Context, in io.Reader, out io.Writer) error
}

type operationFunc func(ctx context.Context, params map[string]json.RawMessage) (any, error)

type handler struct {
	l   log.Logger
	uc  reminder.UseCase
	ops map[string]operationFunc
}

// New creates a new stdio handler for the reminders bridge.
func New(l log.Logger, uc reminder.UseCase) Handler {
	h := &handler{
		l:  l,
		uc: uc,
	}
	h.ops = map[string]operationFunc{
		reminder.OpListLists:        h.listLists,
		reminder.OpListReminders:    h.listReminders,
		reminder.OpCreateReminder:   h.createReminder,
		reminder.OpCompleteReminder: h.completeReminder,
		reminder.OpUpdateReminder:   h.updateReminder,
		reminder.OpSnapshot:         h.snapshot,
	}
	return h
}
