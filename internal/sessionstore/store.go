package sessionstore

import (
	"context"
	"time"
)

// Store records revoked token ids until the tokens would have expired anyway.
// The memory implementation serves single-instance deployments; the Redis one
// shares revocations across replicas.
type Store interface {
	// Revoke marks a token id as revoked for ttl. A non-positive ttl is a no-op.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether a token id has been revoked and not yet expired.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases background resources.
	Close() error
}
