package stdio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type request struct {
	Operation string
	Params    map[string]json.RawMessage
}

// readRequest reads all of in and decodes the operation envelope.
func readRequest(in io.Reader) (request, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return request{}, fmt.Errorf("read stdin: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return request{}, ErrNoInput
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return request{}, fmt.Errorf("Invalid JSON: %v", err)
	}

	// A missing or null operation is reported as "null".
	req := request{Operation: "null", Params: map[string]json.RawMessage{}}
	if op, ok := envelope["operation"]; ok && !isNull(op) {
		if err := json.Unmarshal(op, &req.Operation); err != nil {
			// Non-string names are reported as written.
			req.Operation = string(op)
		}
	}
	if params, ok := envelope["params"]; ok && !isNull(params) {
		if err := json.Unmarshal(params, &req.Params); err != nil {
			return request{}, ErrParamsNotObject
		}
	}
	return req, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// param decodes params[key] into dst. present is true when the key exists,
// even if its value is null; a null value leaves dst untouched.
func param(params map[string]json.RawMessage, key string, dst any) (present bool, err error) {
	raw, ok := params[key]
	if !ok {
		return false, nil
	}
	if isNull(raw) {
		return true, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("invalid %s: %v", key, err)
	}
	return true, nil
}

// optionalString returns a pointer to the value when key is present; null
// reads as "".
func optionalString(params map[string]json.RawMessage, key string) (*string, error) {
	var s string
	present, err := param(params, key, &s)
	if err != nil || !present {
		return nil, err
	}
	return &s, nil
}

func optionalInt(params map[string]json.RawMessage, key string) (*int, error) {
	var n int
	present, err := param(params, key, &n)
	if err != nil || !present {
		return nil, err
	}
	return &n, nil
}
