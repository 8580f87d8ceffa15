package reqctx

import (
	"context"
	"testing"
	"time"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "req-123",
		ClientIP:    "10.0.0.1",
		UserAgent:   "test-agent",
		RequestedAt: time.Now(),
	}

	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok {
		t.Fatal("expected RequestMeta to be present")
	}
	if got.RequestID != "req-123" {
		t.Errorf("unexpected request id %q", got.RequestID)
	}

	if id := RequestIDFromContext(ctx); id != "req-123" {
		t.Errorf("RequestIDFromContext = %q", id)
	}
}

func TestRequestMetaMissing(t *testing.T) {
	if _, ok := RequestMetaFromContext(context.Background()); ok {
		t.Error("expected no RequestMeta on empty context")
	}
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty request id, got %q", id)
	}
}
