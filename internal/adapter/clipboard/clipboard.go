package clipboard

import (
	"context"
	"errors"
)

var ErrUnsupported = errors.New("clipboard access not implemented for this OS yet")

// Watcher emits a signal when the clipboard text *may* have changed.
// Implementations can poll or subscribe to OS events.
type Watcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
	ReadText() (string, error)
}
