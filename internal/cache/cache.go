// Package cache stores rendered page views keyed by locale and path so
// repeat requests skip aggregation. The content is static within a process
// lifetime, so entries only need a modest TTL.
package cache

import (
	"context"
	"time"
)

// Store is the page-view cache contract. Get reports a miss with ok=false;
// cache failures are recoverable by recomputing, never fatal.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}
