package log_test

import (
	"context"
	"testing"

	"timetracker/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-42")
	if got := log.RequestID(ctx); got != "req-42" {
		t.Fatalf("expected req-42, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	tests := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	}
	for _, cfg := range tests {
		l := log.Init(cfg)
		l.Debugf(context.Background(), "level=%s", cfg.Level)
		l.Info(log.WithRequestID(context.Background(), "abc"), "hello")
	}
	log.NewNop().Warn(context.Background(), "dropped")
}
