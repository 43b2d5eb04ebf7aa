package repository

import (
	"context"
	"time"
)

// SessionStore is a keyed string store with a per-entry time-to-live,
// scoped by the caller to a client session. Concurrent writers for the same
// key race on last-write-wins.
type SessionStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string) error
}
