package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zanyar-dev/botarium/domains/bot"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// --- Persistence Model ---

type botModel struct {
	ID        string `gorm:"primaryKey"`
	EnName    string `gorm:"column:en_name;not null"`
	ArName    string `gorm:"column:ar_name;not null"`
	CkbName   string `gorm:"column:ckb_name;not null"`
	EnDesc    string `gorm:"column:en_desc;not null"`
	ArDesc    string `gorm:"column:ar_desc;not null"`
	CkbDesc   string `gorm:"column:ckb_desc;not null"`
	Image     string `gorm:"not null"`
	IconImage string `gorm:"column:icon_image;not null"`
	Link      string `gorm:"not null"`
	RepoLink  string `gorm:"column:repo_link;not null"`
	Status    string `gorm:"index:idx_bots_status;default:'active';not null"`
	CreatedAt time.Time `gorm:"index:idx_bots_created_at;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (botModel) TableName() string {
	return "bots"
}

func toBotModel(b *bot.Bot) botModel {
	return botModel{
		ID:        b.ID,
		EnName:    b.EnName,
		ArName:    b.ArName,
		CkbName:   b.CkbName,
		EnDesc:    b.EnDesc,
		ArDesc:    b.ArDesc,
		CkbDesc:   b.CkbDesc,
		Image:     b.Image,
		IconImage: b.IconImage,
		Link:      b.Link,
		RepoLink:  b.RepoLink,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func fromBotModel(m botModel) bot.Bot {
	return bot.Bot{
		ID:        m.ID,
		EnName:    m.EnName,
		ArName:    m.ArName,
		CkbName:   m.CkbName,
		EnDesc:    m.EnDesc,
		ArDesc:    m.ArDesc,
		CkbDesc:   m.CkbDesc,
		Image:     m.Image,
		IconImage: m.IconImage,
		Link:      m.Link,
		RepoLink:  m.RepoLink,
		Status:    bot.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// --- Repository Implementation ---

type BotGormRepository struct {
	db *gorm.DB
}

func NewBotGormRepository(db *gorm.DB) *BotGormRepository {
	return &BotGormRepository{db: db}
}

func (r *BotGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&botModel{})
}

func (r *BotGormRepository) Create(ctx context.Context, b *bot.Bot) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = bot.StatusActive
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	model := toBotModel(b)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	*b = fromBotModel(model)
	return nil
}

func (r *BotGormRepository) GetByID(ctx context.Context, id string) (bot.Bot, error) {
	var m botModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bot.Bot{}, bot.ErrBotNotFound
		}
		return bot.Bot{}, err
	}
	return fromBotModel(m), nil
}

func (r *BotGormRepository) Update(ctx context.Context, id string, req bot.UpdateBotRequest) (bot.Bot, error) {
	fields := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setString("en_name", req.EnName)
	setString("ar_name", req.ArName)
	setString("ckb_name", req.CkbName)
	setString("en_desc", req.EnDesc)
	setString("ar_desc", req.ArDesc)
	setString("ckb_desc", req.CkbDesc)
	setString("image", req.Image)
	setString("icon_image", req.IconImage)
	setString("link", req.Link)
	setString("repo_link", req.RepoLink)
	if req.Status != nil {
		fields["status"] = string(*req.Status)
	}

	result := r.db.WithContext(ctx).Model(&botModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return bot.Bot{}, result.Error
	}
	if result.RowsAffected == 0 {
		return bot.Bot{}, bot.ErrBotNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BotGormRepository) Delete(ctx context.Context, id string) (bot.Bot, error) {
	deleted, err := r.GetByID(ctx, id)
	if err != nil {
		return bot.Bot{}, err
	}
	result := r.db.WithContext(ctx).Delete(&botModel{}, "id = ?", id)
	if result.Error != nil {
		return bot.Bot{}, result.Error
	}
	if result.RowsAffected == 0 {
		return bot.Bot{}, bot.ErrBotNotFound
	}
	return deleted, nil
}

// ToggleStatus flips the status in a single statement so two concurrent
// toggles cannot both apply the same stale flip.
func (r *BotGormRepository) ToggleStatus(ctx context.Context, id string) (bot.Bot, error) {
	result := r.db.WithContext(ctx).Model(&botModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     gorm.Expr("CASE WHEN status = ? THEN ? ELSE ? END", bot.StatusActive, bot.StatusDown, bot.StatusActive),
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return bot.Bot{}, result.Error
	}
	if result.RowsAffected == 0 {
		return bot.Bot{}, bot.ErrBotNotFound
	}
	return r.GetByID(ctx, id)
}

// filtered builds a fresh query chain carrying the filter predicates:
// status equality when filtered, and a parenthesized OR group matching
// the search term against all six localized text columns.
func (r *BotGormRepository) filtered(ctx context.Context, filter bot.BotFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&botModel{})

	if filter.Status != "" && filter.Status != bot.StatusFilterAll {
		query = query.Where("status = ?", filter.Status)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(en_name) LIKE ? OR LOWER(ar_name) LIKE ? OR LOWER(ckb_name) LIKE ?"+
				" OR LOWER(en_desc) LIKE ? OR LOWER(ar_desc) LIKE ? OR LOWER(ckb_desc) LIKE ?)",
			pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}

	return query
}

// List runs the paginated fetch and the total count concurrently under
// the same predicate set. No transaction wraps the two reads; under
// concurrent writes the count and the page can rarely disagree, which
// is acceptable for a catalog listing.
func (r *BotGormRepository) List(ctx context.Context, filter bot.BotFilter) (bot.PaginatedBots, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var (
		models []botModel
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&models).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return bot.PaginatedBots{}, err
	}

	data := make([]bot.Bot, len(models))
	for i, m := range models {
		data[i] = fromBotModel(m)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return bot.PaginatedBots{
		Data:       data,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    int64(offset+len(data)) < total,
	}, nil
}

func (r *BotGormRepository) ListActive(ctx context.Context, limit int) ([]bot.Bot, error) {
	var models []botModel
	err := r.db.WithContext(ctx).
		Where("status = ?", bot.StatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	bots := make([]bot.Bot, len(models))
	for i, m := range models {
		bots[i] = fromBotModel(m)
	}
	return bots, nil
}
