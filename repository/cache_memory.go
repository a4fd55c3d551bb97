package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/zanyar-dev/botarium/domains/cache"
)

type memoryCacheEntry struct {
	data    []byte
	expires time.Time
}

// MemoryCacheStore is the in-process cache.Store used when Valkey is
// disabled. Entries expire after the staleness window.
type MemoryCacheStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]memoryCacheEntry
}

func NewMemoryCacheStore(ttl time.Duration) *MemoryCacheStore {
	return &MemoryCacheStore{
		ttl: ttl,
		m:   make(map[string]memoryCacheEntry),
	}
}

func (s *MemoryCacheStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	entry, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		s.mu.Lock()
		delete(s.m, key)
		s.mu.Unlock()
		return nil, false
	}
	return entry.data, true
}

func (s *MemoryCacheStore) Set(_ context.Context, key string, data []byte) {
	s.mu.Lock()
	s.m[key] = memoryCacheEntry{data: data, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

func (s *MemoryCacheStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	for key := range s.m {
		if strings.HasPrefix(key, prefix) {
			delete(s.m, key)
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryCacheStore) Stats(_ context.Context) (cache.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var size int64
	for _, entry := range s.m {
		size += int64(len(entry.data))
	}
	return cache.Stats{
		Entries:   len(s.m),
		TotalSize: size,
		HumanSize: humanize.Bytes(uint64(size)),
	}, nil
}
