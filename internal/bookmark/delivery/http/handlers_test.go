package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nanoclaw-bridges/internal/bookmark"
	bookmarkHTTP "nanoclaw-bridges/internal/bookmark/delivery/http"
	pkgLog "nanoclaw-bridges/pkg/log"
)

type mockUseCase struct {
	healthOut json.RawMessage
	err       error
	intakeErr error
	gotBody   []byte
}

func (m *mockUseCase) Health(ctx context.Context) (json.RawMessage, error) {
	return m.healthOut, m.err
}

func (m *mockUseCase) Recent(ctx context.Context) (json.RawMessage, error) {
	return m.healthOut, m.err
}

func (m *mockUseCase) Intake(ctx context.Context, input bookmark.IntakeInput) (bookmark.IntakeOutput, error) {
	m.gotBody = input.Body
	if m.intakeErr != nil {
		return bookmark.IntakeOutput{}, m.intakeErr
	}
	return bookmark.IntakeOutput{Result: map[string]any{"status": "created", bookmark.KeySynced: true}}, nil
}

func newRouter(uc bookmark.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	bookmarkHTTP.RegisterRoutes(r, bookmarkHTTP.New(pkgLog.NewNop(), uc))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestProxyRoutes(t *testing.T) {
	uc := &mockUseCase{healthOut: json.RawMessage(`{"status":"ok","uptime":3}`)}
	r := newRouter(uc)

	for _, path := range []string{"/health", "/recent"} {
		w := do(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Body.String() != `{"status":"ok","uptime":3}` {
			t.Errorf("%s: body should pass through, got %s", path, w.Body.String())
		}
	}

	uc.err = errors.New("sprite exec timed out after 2m0s")
	w := do(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
	if w.Body.String() != `{"error":"sprite exec timed out after 2m0s"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestIntakeRoute(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"Success", nil, http.StatusOK, `{"status":"created","synced_to_jibrain":true}`},
		{"Invalid JSON", bookmark.ErrInvalidJSON, http.StatusBadRequest, `{"error":"invalid JSON"}`},
		{"Missing url", bookmark.ErrMissingURL, http.StatusBadRequest, `{"error":"missing url field"}`},
		{"Sandbox failure", fmt.Errorf("extractor returned invalid JSON: %w", errors.New("eof")), http.StatusBadGateway, `{"error":"extractor returned invalid JSON: eof"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{intakeErr: tt.err}
			r := newRouter(uc)

			body := `{"url": "https://example.com", "x": 1}`
			w := do(r, http.MethodPost, "/intake", body)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("unexpected body %s", w.Body.String())
			}
			if string(uc.gotBody) != body {
				t.Errorf("handler must pass raw body, got %q", uc.gotBody)
			}
		})
	}
}
