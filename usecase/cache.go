package usecase

import (
	"context"

	domainCache "github.com/zanyar-dev/botarium/domains/cache"
	"github.com/zanyar-dev/botarium/domains/identity"
	pkgError "github.com/zanyar-dev/botarium/pkg/error"
)

type cacheService struct {
	store  domainCache.Store
	policy identity.Policy
}

func NewCacheService(store domainCache.Store, policy identity.Policy) domainCache.ICacheUsecase {
	return &cacheService{store: store, policy: policy}
}

func (s *cacheService) GetStats(ctx context.Context) (domainCache.Stats, error) {
	return s.store.Stats(ctx)
}

func (s *cacheService) Clear(ctx context.Context, caller identity.Identity) error {
	if !s.policy.IsAuthorized(caller, identity.ActionClearCache) {
		return pkgError.UnauthorizedError("you are not authorized to perform this operation")
	}
	return s.store.DeletePrefix(ctx, "")
}
