package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	domainCache "github.com/zanyar-dev/botarium/domains/cache"
	"github.com/zanyar-dev/botarium/domains/identity"
)

// botsNamespace prefixes every cached bot read. Mutations drop the
// whole namespace (coarse invalidation) rather than chasing individual
// keys; the next read re-fetches.
const botsNamespace = "bots:"

// cachedBotService is a read-through cache in front of IBotUsecase.
// Reads are keyed by resource + parameters and served from the store
// until the staleness window expires or a mutation invalidates them.
// Mutations never write the cache themselves.
type cachedBotService struct {
	inner domainBot.IBotUsecase
	store domainCache.Store
}

func NewCachedBotService(inner domainBot.IBotUsecase, store domainCache.Store) domainBot.IBotUsecase {
	return &cachedBotService{inner: inner, store: store}
}

func listKey(locale domainBot.Locale, f domainBot.BotFilter) string {
	return fmt.Sprintf("%slist:%s:%s:%s:%d:%d", botsNamespace, locale, f.Status, f.Search, f.Page, f.Limit)
}

func homeKey(locale domainBot.Locale) string {
	return fmt.Sprintf("%shome:%s", botsNamespace, locale)
}

func oneKey(locale domainBot.Locale, id string) string {
	return fmt.Sprintf("%sone:%s:%s", botsNamespace, locale, id)
}

// readThrough serves key from the cache, falling back to fetch and
// populating the cache on a miss. Fetch errors are never cached.
func readThrough[T any](ctx context.Context, store domainCache.Store, key string, fetch func() (T, error)) (T, error) {
	if data, ok := store.Get(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// Unreadable entry; fall through to a fresh fetch.
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	if data, err := json.Marshal(value); err == nil {
		store.Set(ctx, key, data)
	}
	return value, nil
}

func (s *cachedBotService) invalidate(ctx context.Context) {
	if err := s.store.DeletePrefix(ctx, botsNamespace); err != nil {
		logrus.WithError(err).Warn("[CACHE] failed to invalidate bots namespace")
	}
}

func (s *cachedBotService) List(ctx context.Context, locale domainBot.Locale, filter domainBot.BotFilter) (domainBot.PaginatedBots, error) {
	return readThrough(ctx, s.store, listKey(locale, filter), func() (domainBot.PaginatedBots, error) {
		return s.inner.List(ctx, locale, filter)
	})
}

func (s *cachedBotService) Home(ctx context.Context, locale domainBot.Locale) ([]domainBot.Bot, error) {
	return readThrough(ctx, s.store, homeKey(locale), func() ([]domainBot.Bot, error) {
		return s.inner.Home(ctx, locale)
	})
}

func (s *cachedBotService) GetByID(ctx context.Context, locale domainBot.Locale, id string) (domainBot.Bot, error) {
	return readThrough(ctx, s.store, oneKey(locale, id), func() (domainBot.Bot, error) {
		return s.inner.GetByID(ctx, locale, id)
	})
}

func (s *cachedBotService) Create(ctx context.Context, caller identity.Identity, req domainBot.CreateBotRequest) (domainBot.Bot, error) {
	created, err := s.inner.Create(ctx, caller, req)
	if err != nil {
		return domainBot.Bot{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *cachedBotService) Update(ctx context.Context, caller identity.Identity, id string, req domainBot.UpdateBotRequest) (domainBot.Bot, error) {
	updated, err := s.inner.Update(ctx, caller, id, req)
	if err != nil {
		return domainBot.Bot{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *cachedBotService) Delete(ctx context.Context, caller identity.Identity, id string) error {
	if err := s.inner.Delete(ctx, caller, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *cachedBotService) ToggleStatus(ctx context.Context, caller identity.Identity, id string, currentStatus domainBot.Status) (domainBot.Bot, error) {
	toggled, err := s.inner.ToggleStatus(ctx, caller, id, currentStatus)
	if err != nil {
		return domainBot.Bot{}, err
	}
	s.invalidate(ctx)
	return toggled, nil
}
