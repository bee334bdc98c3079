package usecase

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// intakeCommand pipes body through base64 so it reaches curl byte-for-byte
// regardless of shell quoting.
func intakeCommand(extractorURL string, body []byte) string {
	b64 := base64.StdEncoding.EncodeToString(body)
	return fmt.Sprintf(
		"echo %s | base64 -d | curl -s -X POST %s/intake -H 'Content-Type: application/json' -d @-",
		b64, extractorURL,
	)
}

// decodeObject decodes a JSON object keeping numbers exact.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	return obj, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
