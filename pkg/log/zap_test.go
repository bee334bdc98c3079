package log_test

import (
	"context"
	"testing"

	"nanoclaw-bridges/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus", Mode: "", Encoding: ""},
	}

	for _, cfg := range configs {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		ctx := log.WithRequestID(context.Background(), "abc")
		l.Debugf(ctx, "debug %d", 1)
		l.Info(ctx, "info")
		l.Warnf(ctx, "warn %s", "x")
	}
}
