package validations

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	pkgError "github.com/zanyar-dev/botarium/pkg/error"
)

func validCreate() domainBot.CreateBotRequest {
	return domainBot.CreateBotRequest{
		EnName:    "Weather Bot",
		ArName:    "بوت الطقس",
		CkbName:   "بۆتی کەشوهەوا",
		EnDesc:    "tells you the current weather",
		ArDesc:    "يخبرك بحالة الطقس الحالية",
		CkbDesc:   "کەشوهەوای ئێستات پێ دەڵێت",
		Image:     "https://utfs.io/f/img-key",
		IconImage: "https://utfs.io/f/icon-key",
		Link:      "https://t.me/weatherbot",
		RepoLink:  "https://github.com/example/weatherbot",
		Status:    domainBot.StatusActive,
	}
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a validation error on %s", field)
	}
	var genericErr pkgError.GenericError
	if !errors.As(err, &genericErr) || genericErr.StatusCode() != 400 {
		t.Fatalf("expected a 400 validation error, got %v", err)
	}
	if field != "" && !strings.Contains(err.Error(), field) {
		t.Errorf("error %q does not mention field %s", err.Error(), field)
	}
}

func TestValidateCreateBot_Valid(t *testing.T) {
	if err := ValidateCreateBot(context.Background(), validCreate()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidateCreateBot_ImagesOptional(t *testing.T) {
	req := validCreate()
	req.Image = ""
	req.IconImage = ""
	if err := ValidateCreateBot(context.Background(), req); err != nil {
		t.Fatalf("empty image urls should be accepted (upload pending): %v", err)
	}
}

func TestValidateCreateBot_StatusOptional(t *testing.T) {
	req := validCreate()
	req.Status = ""
	if err := ValidateCreateBot(context.Background(), req); err != nil {
		t.Fatalf("empty status should be accepted and defaulted later: %v", err)
	}
}

func TestValidateCreateBot_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domainBot.CreateBotRequest)
		field  string
	}{
		{"missing en name", func(r *domainBot.CreateBotRequest) { r.EnName = "" }, "enName"},
		{"missing ar name", func(r *domainBot.CreateBotRequest) { r.ArName = "" }, "arName"},
		{"missing ckb name", func(r *domainBot.CreateBotRequest) { r.CkbName = "" }, "ckbName"},
		{"name too long", func(r *domainBot.CreateBotRequest) { r.EnName = strings.Repeat("x", 101) }, "enName"},
		{"desc too short", func(r *domainBot.CreateBotRequest) { r.EnDesc = "short" }, "enDesc"},
		{"desc too long", func(r *domainBot.CreateBotRequest) { r.ArDesc = strings.Repeat("y", 501) }, "arDesc"},
		{"missing link", func(r *domainBot.CreateBotRequest) { r.Link = "" }, "link"},
		{"malformed repo link", func(r *domainBot.CreateBotRequest) { r.RepoLink = "not a url" }, "repoLink"},
		{"malformed image", func(r *domainBot.CreateBotRequest) { r.Image = "::bad::" }, "image"},
		{"unknown status", func(r *domainBot.CreateBotRequest) { r.Status = "paused" }, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreate()
			c.mutate(&req)
			assertValidationError(t, ValidateCreateBot(context.Background(), req), c.field)
		})
	}
}

func TestValidateUpdateBot_NilFieldsSkipped(t *testing.T) {
	name := "Renamed Bot"
	err := ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{EnName: &name})
	if err != nil {
		t.Fatalf("partial update with one valid field rejected: %v", err)
	}

	if err := ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{}); err != nil {
		t.Fatalf("empty partial update rejected: %v", err)
	}
}

func TestValidateUpdateBot_PresentFieldsChecked(t *testing.T) {
	empty := ""
	assertValidationError(t,
		ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{EnName: &empty}), "enName")

	short := "short"
	assertValidationError(t,
		ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{CkbDesc: &short}), "ckbDesc")

	bad := "not a url"
	assertValidationError(t,
		ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{Link: &bad}), "link")

	paused := domainBot.Status("paused")
	assertValidationError(t,
		ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{Status: &paused}), "status")

	// A present-but-empty status would otherwise be merged into the
	// store verbatim, leaving the record neither active nor down.
	emptyStatus := domainBot.Status("")
	assertValidationError(t,
		ValidateUpdateBot(context.Background(), domainBot.UpdateBotRequest{Status: &emptyStatus}), "status")
}

func TestValidateToggleStatus(t *testing.T) {
	ctx := context.Background()
	if err := ValidateToggleStatus(ctx, domainBot.StatusActive); err != nil {
		t.Errorf("active rejected: %v", err)
	}
	if err := ValidateToggleStatus(ctx, domainBot.StatusDown); err != nil {
		t.Errorf("down rejected: %v", err)
	}
	assertValidationError(t, ValidateToggleStatus(ctx, domainBot.Status("paused")), "currentStatus")
	assertValidationError(t, ValidateToggleStatus(ctx, domainBot.Status("")), "currentStatus")
}
