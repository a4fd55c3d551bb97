package usecase

import (
	"context"
	"errors"

	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	"github.com/zanyar-dev/botarium/domains/identity"
	domainMedia "github.com/zanyar-dev/botarium/domains/media"
	pkgError "github.com/zanyar-dev/botarium/pkg/error"
	"github.com/zanyar-dev/botarium/validations"
)

type botService struct {
	repo         domainBot.Repository
	policy       identity.Policy
	media        domainMedia.IMediaUsecase
	homePageSize int
	defaultLimit int
}

func NewBotService(repo domainBot.Repository, policy identity.Policy, media domainMedia.IMediaUsecase, homePageSize, defaultLimit int) domainBot.IBotUsecase {
	if homePageSize <= 0 {
		homePageSize = 10
	}
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &botService{
		repo:         repo,
		policy:       policy,
		media:        media,
		homePageSize: homePageSize,
		defaultLimit: defaultLimit,
	}
}

func (s *botService) authorize(caller identity.Identity, action identity.Action) error {
	if !s.policy.IsAuthorized(caller, action) {
		return pkgError.UnauthorizedError("you are not authorized to perform this operation")
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, domainBot.ErrBotNotFound) {
		return pkgError.NotFoundError(err.Error())
	}
	return err
}

func (s *botService) List(ctx context.Context, locale domainBot.Locale, filter domainBot.BotFilter) (domainBot.PaginatedBots, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.defaultLimit
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return domainBot.PaginatedBots{}, err
	}

	result.Data = domainBot.LocalizeAll(result.Data, locale)
	return result, nil
}

func (s *botService) Home(ctx context.Context, locale domainBot.Locale) ([]domainBot.Bot, error) {
	bots, err := s.repo.ListActive(ctx, s.homePageSize)
	if err != nil {
		return nil, err
	}
	return domainBot.LocalizeAll(bots, locale), nil
}

func (s *botService) GetByID(ctx context.Context, locale domainBot.Locale, id string) (domainBot.Bot, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainBot.Bot{}, mapNotFound(err)
	}
	return domainBot.Localize(b, locale), nil
}

func (s *botService) Create(ctx context.Context, caller identity.Identity, req domainBot.CreateBotRequest) (domainBot.Bot, error) {
	if err := s.authorize(caller, identity.ActionCreateBot); err != nil {
		return domainBot.Bot{}, err
	}
	if err := validations.ValidateCreateBot(ctx, req); err != nil {
		return domainBot.Bot{}, err
	}

	b := domainBot.Bot{
		EnName:    req.EnName,
		ArName:    req.ArName,
		CkbName:   req.CkbName,
		EnDesc:    req.EnDesc,
		ArDesc:    req.ArDesc,
		CkbDesc:   req.CkbDesc,
		Image:     req.Image,
		IconImage: req.IconImage,
		Link:      req.Link,
		RepoLink:  req.RepoLink,
		Status:    req.Status,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return domainBot.Bot{}, err
	}
	return b, nil
}

func (s *botService) Update(ctx context.Context, caller identity.Identity, id string, req domainBot.UpdateBotRequest) (domainBot.Bot, error) {
	if err := s.authorize(caller, identity.ActionUpdateBot); err != nil {
		return domainBot.Bot{}, err
	}
	if err := validations.ValidateUpdateBot(ctx, req); err != nil {
		return domainBot.Bot{}, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return domainBot.Bot{}, mapNotFound(err)
	}
	return updated, nil
}

// Delete removes the record first and then cleans up the associated
// media objects. Media cleanup never rolls back the deletion.
func (s *botService) Delete(ctx context.Context, caller identity.Identity, id string) error {
	if err := s.authorize(caller, identity.ActionDeleteBot); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}

	s.media.DeleteByURLs(ctx, []string{deleted.Image, deleted.IconImage})
	return nil
}

func (s *botService) ToggleStatus(ctx context.Context, caller identity.Identity, id string, currentStatus domainBot.Status) (domainBot.Bot, error) {
	if err := s.authorize(caller, identity.ActionToggleBot); err != nil {
		return domainBot.Bot{}, err
	}
	if err := validations.ValidateToggleStatus(ctx, currentStatus); err != nil {
		return domainBot.Bot{}, err
	}

	// The flip is derived inside the store, not from currentStatus, so
	// a stale client value cannot cause a lost update.
	toggled, err := s.repo.ToggleStatus(ctx, id)
	if err != nil {
		return domainBot.Bot{}, mapNotFound(err)
	}
	return toggled, nil
}
