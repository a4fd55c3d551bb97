package cache

import (
	"context"

	"github.com/zanyar-dev/botarium/domains/identity"
)

// Store is the backend for the read-through query cache. Entries are
// JSON payloads keyed by resource + parameters; invalidation drops a
// whole resource namespace at once.
type Store interface {
	// Get returns the payload for key, or ok=false on a miss or an
	// expired entry.
	Get(ctx context.Context, key string) (data []byte, ok bool)
	Set(ctx context.Context, key string, data []byte)
	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	Stats(ctx context.Context) (Stats, error)
}

type Stats struct {
	Entries   int    `json:"entries"`
	TotalSize int64  `json:"total_size"`
	HumanSize string `json:"human_size"`
}

// ICacheUsecase exposes cache administration to the dashboard. Clear
// drops every entry and is gated by the authorization policy.
type ICacheUsecase interface {
	GetStats(ctx context.Context) (Stats, error)
	Clear(ctx context.Context, caller identity.Identity) error
}
