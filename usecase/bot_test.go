package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	"github.com/zanyar-dev/botarium/domains/identity"
	pkgError "github.com/zanyar-dev/botarium/pkg/error"
)

const adminID = identity.Identity("user_admin")

// fakeBotRepo records calls so tests can assert which operations the
// service actually reached the store with.
type fakeBotRepo struct {
	bots map[string]domainBot.Bot

	createCalls int
	updateCalls int
	deleteCalls int
	toggleCalls int
	listCalls   int

	err error
}

func newFakeBotRepo(bots ...domainBot.Bot) *fakeBotRepo {
	m := make(map[string]domainBot.Bot)
	for _, b := range bots {
		m[b.ID] = b
	}
	return &fakeBotRepo{bots: m}
}

func (r *fakeBotRepo) Create(_ context.Context, b *domainBot.Bot) error {
	r.createCalls++
	if r.err != nil {
		return r.err
	}
	b.ID = "generated-id"
	if b.Status == "" {
		b.Status = domainBot.StatusActive
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	r.bots[b.ID] = *b
	return nil
}

func (r *fakeBotRepo) GetByID(_ context.Context, id string) (domainBot.Bot, error) {
	if r.err != nil {
		return domainBot.Bot{}, r.err
	}
	b, ok := r.bots[id]
	if !ok {
		return domainBot.Bot{}, domainBot.ErrBotNotFound
	}
	return b, nil
}

func (r *fakeBotRepo) Update(_ context.Context, id string, req domainBot.UpdateBotRequest) (domainBot.Bot, error) {
	r.updateCalls++
	if r.err != nil {
		return domainBot.Bot{}, r.err
	}
	b, ok := r.bots[id]
	if !ok {
		return domainBot.Bot{}, domainBot.ErrBotNotFound
	}
	if req.EnName != nil {
		b.EnName = *req.EnName
	}
	b.UpdatedAt = time.Now().UTC()
	r.bots[id] = b
	return b, nil
}

func (r *fakeBotRepo) Delete(_ context.Context, id string) (domainBot.Bot, error) {
	r.deleteCalls++
	if r.err != nil {
		return domainBot.Bot{}, r.err
	}
	b, ok := r.bots[id]
	if !ok {
		return domainBot.Bot{}, domainBot.ErrBotNotFound
	}
	delete(r.bots, id)
	return b, nil
}

func (r *fakeBotRepo) ToggleStatus(_ context.Context, id string) (domainBot.Bot, error) {
	r.toggleCalls++
	if r.err != nil {
		return domainBot.Bot{}, r.err
	}
	b, ok := r.bots[id]
	if !ok {
		return domainBot.Bot{}, domainBot.ErrBotNotFound
	}
	b.Status = b.Status.Toggle()
	r.bots[id] = b
	return b, nil
}

func (r *fakeBotRepo) List(_ context.Context, filter domainBot.BotFilter) (domainBot.PaginatedBots, error) {
	r.listCalls++
	if r.err != nil {
		return domainBot.PaginatedBots{}, r.err
	}
	var data []domainBot.Bot
	for _, b := range r.bots {
		data = append(data, b)
	}
	return domainBot.PaginatedBots{Data: data, Total: int64(len(data)), TotalPages: 1}, nil
}

func (r *fakeBotRepo) ListActive(_ context.Context, limit int) ([]domainBot.Bot, error) {
	if r.err != nil {
		return nil, r.err
	}
	var active []domainBot.Bot
	for _, b := range r.bots {
		if b.Status == domainBot.StatusActive && len(active) < limit {
			active = append(active, b)
		}
	}
	return active, nil
}

type fakeMedia struct {
	calls [][]string
}

func (m *fakeMedia) DeleteByURLs(_ context.Context, urls []string) {
	m.calls = append(m.calls, urls)
}

func validCreateRequest() domainBot.CreateBotRequest {
	return domainBot.CreateBotRequest{
		EnName:  "Weather Bot",
		ArName:  "بوت الطقس",
		CkbName: "بۆتی کەشوهەوا",
		EnDesc:  "tells you the current weather",
		ArDesc:  "يخبرك بحالة الطقس الحالية",
		CkbDesc: "کەشوهەوای ئێستات پێ دەڵێت",
		Link:     "https://t.me/weatherbot",
		RepoLink: "https://github.com/example/weatherbot",
	}
}

func sampleBot(id string) domainBot.Bot {
	return domainBot.Bot{
		ID:        id,
		EnName:    "Sample",
		EnDesc:    "a sample bot",
		Image:     "https://utfs.io/f/img-" + id,
		IconImage: "https://utfs.io/f/icon-" + id,
		Status:    domainBot.StatusActive,
	}
}

func newService(repo *fakeBotRepo, media *fakeMedia) domainBot.IBotUsecase {
	return NewBotService(repo, identity.NewSingleAdminPolicy(string(adminID)), media, 10, 10)
}

func assertStatusCode(t *testing.T, err error, want int) {
	t.Helper()
	var genericErr pkgError.GenericError
	if !errors.As(err, &genericErr) {
		t.Fatalf("expected a typed error, got %v", err)
	}
	if genericErr.StatusCode() != want {
		t.Fatalf("status code = %d, want %d (err: %v)", genericErr.StatusCode(), want, err)
	}
}

func TestBotService_Create(t *testing.T) {
	repo := newFakeBotRepo()
	service := newService(repo, &fakeMedia{})

	created, err := service.Create(context.Background(), adminID, validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("created bot should carry a generated id")
	}
	if created.Status != domainBot.StatusActive {
		t.Errorf("status = %q, want active", created.Status)
	}
}

func TestBotService_Create_Unauthorized(t *testing.T) {
	repo := newFakeBotRepo()
	service := newService(repo, &fakeMedia{})

	for _, caller := range []identity.Identity{"", "user_other"} {
		_, err := service.Create(context.Background(), caller, validCreateRequest())
		assertStatusCode(t, err, 401)
	}
	if repo.createCalls != 0 {
		t.Errorf("unauthorized create must never reach the store, got %d calls", repo.createCalls)
	}
}

func TestBotService_Create_InvalidRequest(t *testing.T) {
	repo := newFakeBotRepo()
	service := newService(repo, &fakeMedia{})

	req := validCreateRequest()
	req.EnName = ""
	_, err := service.Create(context.Background(), adminID, req)
	assertStatusCode(t, err, 400)

	if repo.createCalls != 0 {
		t.Errorf("invalid create must never reach the store, got %d calls", repo.createCalls)
	}
}

func TestBotService_Update_Unauthorized(t *testing.T) {
	repo := newFakeBotRepo(sampleBot("b1"))
	service := newService(repo, &fakeMedia{})

	name := "renamed"
	_, err := service.Update(context.Background(), "user_other", "b1", domainBot.UpdateBotRequest{EnName: &name})
	assertStatusCode(t, err, 401)

	if repo.updateCalls != 0 {
		t.Error("unauthorized update must never reach the store")
	}
	if got := repo.bots["b1"].EnName; got != "Sample" {
		t.Errorf("record changed to %q despite rejection", got)
	}
}

func TestBotService_Update_NotFound(t *testing.T) {
	repo := newFakeBotRepo()
	service := newService(repo, &fakeMedia{})

	name := "renamed"
	_, err := service.Update(context.Background(), adminID, "missing", domainBot.UpdateBotRequest{EnName: &name})
	assertStatusCode(t, err, 404)
}

func TestBotService_Delete_CleansUpMedia(t *testing.T) {
	repo := newFakeBotRepo(sampleBot("b1"))
	media := &fakeMedia{}
	service := newService(repo, media)

	if err := service.Delete(context.Background(), adminID, "b1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(media.calls) != 1 {
		t.Fatalf("media cleanup calls = %d, want 1", len(media.calls))
	}
	want := []string{"https://utfs.io/f/img-b1", "https://utfs.io/f/icon-b1"}
	if media.calls[0][0] != want[0] || media.calls[0][1] != want[1] {
		t.Errorf("cleanup urls = %v, want %v", media.calls[0], want)
	}
}

func TestBotService_Delete_NotFoundSkipsMedia(t *testing.T) {
	repo := newFakeBotRepo()
	media := &fakeMedia{}
	service := newService(repo, media)

	err := service.Delete(context.Background(), adminID, "missing")
	assertStatusCode(t, err, 404)
	if len(media.calls) != 0 {
		t.Error("failed delete must not trigger media cleanup")
	}
}

func TestBotService_ToggleStatus_IgnoresStaleClientStatus(t *testing.T) {
	repo := newFakeBotRepo(sampleBot("b1"))
	service := newService(repo, &fakeMedia{})

	// The client claims "down" but the store holds "active"; the flip is
	// derived from the stored value.
	toggled, err := service.ToggleStatus(context.Background(), adminID, "b1", domainBot.StatusDown)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Status != domainBot.StatusDown {
		t.Errorf("status = %q, want down", toggled.Status)
	}
}

func TestBotService_ToggleStatus_InvalidStatus(t *testing.T) {
	repo := newFakeBotRepo(sampleBot("b1"))
	service := newService(repo, &fakeMedia{})

	_, err := service.ToggleStatus(context.Background(), adminID, "b1", domainBot.Status("paused"))
	assertStatusCode(t, err, 400)
	if repo.toggleCalls != 0 {
		t.Error("invalid toggle must never reach the store")
	}
}

func TestBotService_GetByID_Localizes(t *testing.T) {
	b := sampleBot("b1")
	b.ArName = "عينة"
	b.ArDesc = "بوت تجريبي"
	repo := newFakeBotRepo(b)
	service := newService(repo, &fakeMedia{})

	got, err := service.GetByID(context.Background(), domainBot.LocaleAr, "b1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "عينة" || got.Description != "بوت تجريبي" {
		t.Errorf("localized projection = (%q, %q)", got.Name, got.Description)
	}
}

func TestBotService_GetByID_NotFound(t *testing.T) {
	service := newService(newFakeBotRepo(), &fakeMedia{})

	_, err := service.GetByID(context.Background(), domainBot.DefaultLocale, "missing")
	assertStatusCode(t, err, 404)
}

func TestBotService_List_DefaultsAndLocalizes(t *testing.T) {
	repo := newFakeBotRepo(sampleBot("b1"))
	service := newService(repo, &fakeMedia{})

	result, err := service.List(context.Background(), domainBot.LocaleEn, domainBot.BotFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 1 {
		t.Fatalf("len = %d", len(result.Data))
	}
	if result.Data[0].Name != "Sample" {
		t.Errorf("name projection = %q", result.Data[0].Name)
	}
}
