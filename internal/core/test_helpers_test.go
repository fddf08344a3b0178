package core

import (
	"testing"
	"time"
)

func mustEvent[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("expected event not received")
	}
	var zero T
	return zero
}

func mustNoEvent[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("unexpected extra event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func strPtr(s string) *string {
	return &s
}
