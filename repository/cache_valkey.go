package repository

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/zanyar-dev/botarium/domains/cache"
	"github.com/zanyar-dev/botarium/infrastructure/valkey"
)

// ValkeyCacheStore implements cache.Store on top of a shared Valkey
// instance so multiple replicas see the same cached reads and the same
// invalidations.
type ValkeyCacheStore struct {
	client *valkey.Client
	ttl    time.Duration
}

func NewValkeyCacheStore(client *valkey.Client, ttl time.Duration) *ValkeyCacheStore {
	return &ValkeyCacheStore{client: client, ttl: ttl}
}

func (s *ValkeyCacheStore) fullKey(key string) string {
	return s.client.Key("cache", key)
}

func (s *ValkeyCacheStore) Get(ctx context.Context, key string) ([]byte, bool) {
	inner := s.client.Inner()
	data, err := inner.Do(ctx, inner.B().Get().Key(s.fullKey(key)).Build()).AsBytes()
	if err != nil {
		if !valkey.IsNil(err) {
			logrus.WithError(err).Warn("[CACHE] valkey get failed")
		}
		return nil, false
	}
	return data, true
}

func (s *ValkeyCacheStore) Set(ctx context.Context, key string, data []byte) {
	inner := s.client.Inner()
	cmd := inner.B().Set().
		Key(s.fullKey(key)).
		Value(string(data)).
		Ex(s.ttl).
		Build()
	if err := inner.Do(ctx, cmd).Error(); err != nil {
		logrus.WithError(err).Warn("[CACHE] valkey set failed")
	}
}

func (s *ValkeyCacheStore) DeletePrefix(ctx context.Context, prefix string) error {
	keys, err := s.scan(ctx, s.fullKey(prefix)+"*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	inner := s.client.Inner()
	return inner.Do(ctx, inner.B().Del().Key(keys...).Build()).Error()
}

func (s *ValkeyCacheStore) Stats(ctx context.Context) (cache.Stats, error) {
	keys, err := s.scan(ctx, s.fullKey("")+"*")
	if err != nil {
		return cache.Stats{}, err
	}

	inner := s.client.Inner()
	var size int64
	for _, key := range keys {
		n, err := inner.Do(ctx, inner.B().Strlen().Key(key).Build()).AsInt64()
		if err != nil {
			continue
		}
		size += n
	}

	return cache.Stats{
		Entries:   len(keys),
		TotalSize: size,
		HumanSize: humanize.Bytes(uint64(size)),
	}, nil
}

func (s *ValkeyCacheStore) scan(ctx context.Context, match string) ([]string, error) {
	inner := s.client.Inner()
	var keys []string
	var cursor uint64
	for {
		entry, err := inner.Do(ctx, inner.B().Scan().Cursor(cursor).Match(match).Count(200).Build()).AsScanEntry()
		if err != nil {
			return nil, err
		}
		keys = append(keys, entry.Elements...)
		cursor = entry.Cursor
		if cursor == 0 {
			return keys, nil
		}
	}
}
