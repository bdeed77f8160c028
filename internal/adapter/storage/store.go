package storage

import (
	"context"
	"errors"

	"github.com/its-jojoo/kontakclip/internal/core"
)

var ErrNotFound = errors.New("contact not found")

// Store holds the single batch of contacts of a session, in parse order.
type Store interface {
	// Replace swaps the whole batch atomically. A nil batch clears the store.
	Replace(ctx context.Context, batch []core.Contact) error
	List(ctx context.Context) ([]core.Contact, error)

	Get(ctx context.Context, id string) (core.Contact, error)
	// Put overwrites an existing contact in place, keeping its position.
	Put(ctx context.Context, c core.Contact) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
}
