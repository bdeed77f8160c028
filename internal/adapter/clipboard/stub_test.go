//go:build !darwin

package clipboard

import (
	"context"
	"errors"
	"testing"
)

func TestUnsupportedWatcher(t *testing.T) {
	w := New(0)

	if _, err := w.ReadText(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	ch, err := w.Watch(context.Background())
	if !errors.Is(err, ErrUnsupported) || ch != nil {
		t.Fatalf("expected ErrUnsupported and nil channel, got %v", err)
	}
}
