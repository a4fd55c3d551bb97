package bot

import "context"

// Repository defines the persistence operations for bots.
type Repository interface {
	Create(ctx context.Context, b *Bot) error
	GetByID(ctx context.Context, id string) (Bot, error)
	// Update applies a partial merge and refreshes updated_at.
	Update(ctx context.Context, id string, req UpdateBotRequest) (Bot, error)
	// Delete removes the record and returns it so callers can clean up
	// associated media.
	Delete(ctx context.Context, id string) (Bot, error)
	// ToggleStatus flips active<->down atomically in the store.
	ToggleStatus(ctx context.Context, id string) (Bot, error)
	// List runs the paginated fetch and the total count under the same
	// predicate set.
	List(ctx context.Context, filter BotFilter) (PaginatedBots, error)
	// ListActive returns the newest active bots up to limit.
	ListActive(ctx context.Context, limit int) ([]Bot, error)
}
