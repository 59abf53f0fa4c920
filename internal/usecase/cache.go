package usecase

import (
	"context"
	"time"
)

// ListingCache fronts the public job listing. Implementations must treat
// an unavailable backend as a miss, never as a request failure.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
