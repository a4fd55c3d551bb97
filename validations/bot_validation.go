package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	pkgError "github.com/zanyar-dev/botarium/pkg/error"
)

// ValidateCreateBot enforces the creation constraints: all three locale
// variants of name (1-100) and description (10-500), valid URLs for the
// link fields, and image URLs that are either set or the empty
// upload-pending placeholder.
func ValidateCreateBot(ctx context.Context, request domainBot.CreateBotRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.EnName, validation.Required, validation.Length(1, 100)),
		validation.Field(&request.ArName, validation.Required, validation.Length(1, 100)),
		validation.Field(&request.CkbName, validation.Required, validation.Length(1, 100)),
		validation.Field(&request.EnDesc, validation.Required, validation.Length(10, 500)),
		validation.Field(&request.ArDesc, validation.Required, validation.Length(10, 500)),
		validation.Field(&request.CkbDesc, validation.Required, validation.Length(10, 500)),
		validation.Field(&request.Image, is.URL),
		validation.Field(&request.IconImage, is.URL),
		validation.Field(&request.Link, validation.Required, is.URL),
		validation.Field(&request.RepoLink, validation.Required, is.URL),
		validation.Field(&request.Status, validation.In(domainBot.StatusActive, domainBot.StatusDown)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

// ValidateUpdateBot checks only the fields present in the partial
// request; nil fields are left alone by the merge and skipped here.
func ValidateUpdateBot(ctx context.Context, request domainBot.UpdateBotRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.EnName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&request.ArName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&request.CkbName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&request.EnDesc, validation.NilOrNotEmpty, validation.Length(10, 500)),
		validation.Field(&request.ArDesc, validation.NilOrNotEmpty, validation.Length(10, 500)),
		validation.Field(&request.CkbDesc, validation.NilOrNotEmpty, validation.Length(10, 500)),
		validation.Field(&request.Image, is.URL),
		validation.Field(&request.IconImage, is.URL),
		validation.Field(&request.Link, validation.NilOrNotEmpty, is.URL),
		validation.Field(&request.RepoLink, validation.NilOrNotEmpty, is.URL),
		// NilOrNotEmpty keeps a present-but-empty status from slipping
		// past In, which skips empty values.
		validation.Field(&request.Status, validation.NilOrNotEmpty, validation.In(domainBot.StatusActive, domainBot.StatusDown)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

// ValidateToggleStatus checks the caller-asserted current status. The
// flip itself is derived in the store, so a stale assertion cannot
// corrupt the record, but an arbitrary third value is still rejected.
func ValidateToggleStatus(_ context.Context, currentStatus domainBot.Status) error {
	if !currentStatus.Valid() {
		return pkgError.ValidationError("currentStatus: must be either active or down")
	}
	return nil
}
