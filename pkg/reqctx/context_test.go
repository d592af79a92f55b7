package reqctx

import (
	"context"
	"testing"
	"time"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestMetaFromContext(ctx); ok {
		t.Fatal("empty context should carry no metadata")
	}
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("RequestIDFromContext() = %q, want empty", got)
	}

	meta := &RequestMeta{RequestID: "abc-123", ClientIP: "10.0.0.1", RequestedAt: time.Now()}
	ctx = WithRequestMeta(ctx, meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok || got != meta {
		t.Fatalf("RequestMetaFromContext() = %v, %v", got, ok)
	}
	if rid := RequestIDFromContext(ctx); rid != "abc-123" {
		t.Errorf("RequestIDFromContext() = %q, want abc-123", rid)
	}
}

func TestNilMetaIsAbsent(t *testing.T) {
	ctx := WithRequestMeta(context.Background(), nil)
	if _, ok := RequestMetaFromContext(ctx); ok {
		t.Error("nil metadata should be reported as absent")
	}
}
