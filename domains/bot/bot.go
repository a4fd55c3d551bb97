package bot

import (
	"context"
	"time"

	"github.com/zanyar-dev/botarium/domains/identity"
)

type Status string

const (
	StatusActive Status = "active"
	StatusDown   Status = "down"
)

// Toggle returns the flipped status. The state machine has exactly two
// states and one bidirectional transition.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusDown
	}
	return StatusActive
}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusDown
}

// Bot is a catalog listing: multilingual text, media links and an
// active/down status. Name and Description are display projections
// filled in by Localize, never stored.
type Bot struct {
	ID        string    `json:"id"`
	EnName    string    `json:"enName"`
	ArName    string    `json:"arName"`
	CkbName   string    `json:"ckbName"`
	EnDesc    string    `json:"enDesc"`
	ArDesc    string    `json:"arDesc"`
	CkbDesc   string    `json:"ckbDesc"`
	Image     string    `json:"image"`
	IconImage string    `json:"iconImage"`
	Link      string    `json:"link"`
	RepoLink  string    `json:"repoLink"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreateBotRequest struct {
	EnName    string `json:"enName"`
	ArName    string `json:"arName"`
	CkbName   string `json:"ckbName"`
	EnDesc    string `json:"enDesc"`
	ArDesc    string `json:"arDesc"`
	CkbDesc   string `json:"ckbDesc"`
	Image     string `json:"image"`
	IconImage string `json:"iconImage"`
	Link      string `json:"link"`
	RepoLink  string `json:"repoLink"`
	Status    Status `json:"status"`
}

// UpdateBotRequest is a partial merge: nil fields are left untouched.
type UpdateBotRequest struct {
	EnName    *string `json:"enName"`
	ArName    *string `json:"arName"`
	CkbName   *string `json:"ckbName"`
	EnDesc    *string `json:"enDesc"`
	ArDesc    *string `json:"arDesc"`
	CkbDesc   *string `json:"ckbDesc"`
	Image     *string `json:"image"`
	IconImage *string `json:"iconImage"`
	Link      *string `json:"link"`
	RepoLink  *string `json:"repoLink"`
	Status    *Status `json:"status"`
}

// StatusFilterAll disables the status predicate.
const StatusFilterAll = "all"

// BotFilter defines the criteria for listing bots.
type BotFilter struct {
	// Status is "active", "down" or "all"; "all" and empty mean no predicate.
	Status string
	// Search is matched case-insensitively against all six localized
	// name and description columns.
	Search string
	// Page is 1-based.
	Page  int
	Limit int
}

// PaginatedBots is the listing payload.
type PaginatedBots struct {
	Data       []Bot `json:"data"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

type IBotUsecase interface {
	List(ctx context.Context, locale Locale, filter BotFilter) (PaginatedBots, error)
	Home(ctx context.Context, locale Locale) ([]Bot, error)
	GetByID(ctx context.Context, locale Locale, id string) (Bot, error)

	Create(ctx context.Context, caller identity.Identity, req CreateBotRequest) (Bot, error)
	Update(ctx context.Context, caller identity.Identity, id string, req UpdateBotRequest) (Bot, error)
	Delete(ctx context.Context, caller identity.Identity, id string) error
	ToggleStatus(ctx context.Context, caller identity.Identity, id string, currentStatus Status) (Bot, error)
}
