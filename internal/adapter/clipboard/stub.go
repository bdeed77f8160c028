//go:build !darwin

package clipboard

import (
	"context"
	"time"
)

type UnsupportedWatcher struct{}

// New returns the clipboard watcher for this OS.
func New(interval time.Duration) Watcher {
	_ = interval
	return NewUnsupportedWatcher()
}

func NewUnsupportedWatcher() *UnsupportedWatcher { return &UnsupportedWatcher{} }

func (w *UnsupportedWatcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	_ = ctx
	return nil, ErrUnsupported
}

func (w *UnsupportedWatcher) ReadText() (string, error) {
	return "", ErrUnsupported
}
