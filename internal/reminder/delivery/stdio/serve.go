package stdio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Serve runs AwaitAccess, AwaitInput, Dispatch and Respond once. Every path
// writes exactly one JSON line to out; any error object yields an *ExitError.
func (h *handler) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := h.uc.RequestAccess(ctx); err != nil {
		return h.fail(ctx, out, err)
	}

	req, err := readRequest(in)
	if err != nil {
		return h.fail(ctx, out, err)
	}

	op, ok := h.ops[req.Operation]
	if !ok {
		return h.fail(ctx, out, &UnknownOperationError{Name: req.Operation})
	}

	h.l.Debugf(ctx, "internal.reminder.delivery.stdio.Serve: operation=%s", req.Operation)
	resp, err := h.dispatch(ctx, op, req.Params)
	if err != nil {
		return h.fail(ctx, out, err)
	}

	if err := write(out, resp); err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// dispatch turns a panic inside an operation into an error.
func (h *handler) dispatch(ctx context.Context, op operationFunc, params map[string]json.RawMessage) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "internal.reminder.delivery.stdio.dispatch: panic: %v", r)
			err = fmt.Errorf("%v", r)
		}
	}()
	return op(ctx, params)
}

func (h *handler) fail(ctx context.Context, out io.Writer, err error) error {
	h.l.Debugf(ctx, "internal.reminder.delivery.stdio.Serve: %v", err)
	return WriteError(out, err)
}

// WriteError writes err as the single {"error": ...} line and returns the
// matching *ExitError.
func WriteError(out io.Writer, err error) error {
	// Nothing else can be reported if stdout itself is broken.
	_ = write(out, errorResp{Error: err.Error()})
	return &ExitError{Code: 1, Err: err}
}

func write(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
