package net

import (
	"context"
	"testing"
)

func TestWithRequest(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := RequestID(WithRequest(context.Background(), "")); got != "" {
		t.Fatalf("empty id should not be stored, got %q", got)
	}
}

func TestWithUpdate(t *testing.T) {
	if _, ok := UpdateID(context.Background()); ok {
		t.Fatalf("expected no update id")
	}
	id, ok := UpdateID(WithUpdate(context.Background(), 991))
	if !ok || id != 991 {
		t.Fatalf("UpdateID = %d,%v", id, ok)
	}
}
