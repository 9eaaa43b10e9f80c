package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	pagescmd "github.com/goliatone/go-pagetree/internal/commands/pages"
	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	internalrender "github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/render"
)

type apiFixture struct {
	repo    *internalpages.MemoryPageRepository
	service pages.Service
	mux     *http.ServeMux
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	repo := internalpages.NewMemoryPageRepository()
	service := internalpages.NewService(repo)
	urlBuilder := urls.NewBuilder()

	publicEngine := internalrender.NewPublicEngine(service, urlBuilder)
	adminEngine := internalrender.NewAdminEngine(service, urlBuilder)

	saver := pagescmd.NewSavePageHandler(service, nil)
	updater := pagescmd.NewUpdatePageHandler(service, nil)
	deleter := pagescmd.NewDeletePageHandler(service, nil)

	mux := http.NewServeMux()
	adminAPI := NewAdminAPI(service, adminEngine, urlBuilder, saver, updater, deleter)
	if err := adminAPI.Register(mux); err != nil {
		t.Fatalf("register admin: %v", err)
	}
	publicAPI := NewPublicAPI(service, publicEngine, urlBuilder)
	if err := publicAPI.Register(mux); err != nil {
		t.Fatalf("register public: %v", err)
	}

	f := &apiFixture{repo: repo, service: service, mux: mux}
	f.save(t, pages.SavePageInput{
		Code:      pages.RootCode,
		CaptionUA: "Головна",
		CaptionEN: "Home",
	})
	return f
}

func (f *apiFixture) save(t *testing.T, input pages.SavePageInput) {
	t.Helper()
	if _, err := f.service.Save(context.Background(), input); err != nil {
		t.Fatalf("save %s: %v", input.Code, err)
	}
}

func (f *apiFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (f *apiFixture) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func orderNumPtr(v int) *int { return &v }

func childSaveInput(code string, orderNum int) pages.SavePageInput {
	return pages.SavePageInput{
		Code:       code,
		CaptionUA:  "Сторінка " + code,
		CaptionEN:  "Page " + code,
		ParentCode: pages.RootCode,
		OrderNum:   orderNumPtr(orderNum),
	}
}

func decodeRendered(t *testing.T, rec *httptest.ResponseRecorder) render.RenderedPage {
	t.Helper()
	var out render.RenderedPage
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestPublicServesRootPerLanguage(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.get(t, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeRendered(t, rec)
	if !strings.Contains(out.Title, "Головна") {
		t.Fatalf("expected ua title, got %q", out.Title)
	}

	rec = f.get(t, "/en")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	out = decodeRendered(t, rec)
	if !strings.Contains(out.Title, "Home") {
		t.Fatalf("expected en title, got %q", out.Title)
	}
}

func TestPublicServesPageByCode(t *testing.T) {
	f := newAPIFixture(t)
	f.save(t, childSaveInput("about", 1))

	rec := f.get(t, "/en/about")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeRendered(t, rec)
	if !strings.Contains(out.Title, "Page about") {
		t.Fatalf("unexpected title %q", out.Title)
	}
}

func TestPublicUnknownPageIs404(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.get(t, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPublicAliasRedirectsToCanonical(t *testing.T) {
	f := newAPIFixture(t)
	f.save(t, childSaveInput("about", 1))

	alias := childSaveInput("about-us", 2)
	alias.AliasOf = "about"
	f.save(t, alias)

	rec := f.get(t, "/en/about-us")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/en/about" {
		t.Fatalf("expected canonical location, got %q", got)
	}
}

func TestPublicNormalizesSloppyCodes(t *testing.T) {
	f := newAPIFixture(t)
	f.save(t, childSaveInput("about", 1))

	rec := f.get(t, "/About")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/about" {
		t.Fatalf("expected normalized location, got %q", got)
	}
}

func TestAdminIndexRendersListing(t *testing.T) {
	f := newAPIFixture(t)
	f.save(t, childSaveInput("docs", 1))

	rec := f.get(t, "/admin/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "docs") {
		t.Fatalf("expected child row, got %s", rec.Body.String())
	}
}

func TestAdminSaveFollowsPostRedirectGet(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.postForm(t, "/admin/pages", url.Values{
		"code":        {"team"},
		"caption_ua":  {"Команда"},
		"caption_en":  {"Team"},
		"parent_code": {pages.RootCode},
		"order_num":   {"1"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	location := rec.Header().Get("Location")
	if !strings.Contains(location, "saved=true") || !strings.Contains(location, "parentCode=root") {
		t.Fatalf("unexpected redirect target %q", location)
	}

	stored, err := f.repo.GetByCode(context.Background(), "team")
	if err != nil {
		t.Fatalf("expected page stored, got %v", err)
	}
	if stored.CaptionEN != "Team" {
		t.Fatalf("unexpected caption %q", stored.CaptionEN)
	}
}

func TestAdminSaveValidationFailureIs400(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.postForm(t, "/admin/pages", url.Values{
		"code":        {"team"},
		"parent_code": {pages.RootCode},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminUpdateViaMethodOverride(t *testing.T) {
	f := newAPIFixture(t)
	f.save(t, childSaveInput("team", 1))

	rec := f.postForm(t, "/admin/pages/team", url.Values{
		"_method":     {"put"},
		"caption_ua":  {"Наша команда"},
		"caption_en":  {"Our team"},
		"parent_code": {pages.RootCode},
		"order_num":   {"2"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "updated=true") {
		t.Fatalf("unexpected redirect target %q", location)
	}

	stored, err := f.repo.GetByCode(context.Background(), "team")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.CaptionEN != "Our team" {
		t.Fatalf("unexpected caption %q", stored.CaptionEN)
	}
}

func TestAdminDeleteViaMethodOverride(t *testing.T) {
	f := newAPIFixture(t)
	f.save(t, childSaveInput("team", 1))

	rec := f.postForm(t, "/admin/pages/team", url.Values{
		"_method": {"delete"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "deleted=true") {
		t.Fatalf("unexpected redirect target %q", location)
	}
	if _, err := f.repo.GetByCode(context.Background(), "team"); !pages.IsNotFound(err) {
		t.Fatalf("expected page removed, got %v", err)
	}
}

func TestAdminRoutesBeatPublicWildcard(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.get(t, "/admin/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin listing, got %d", rec.Code)
	}
	// The public wildcard must not swallow the admin prefix.
	if !strings.Contains(rec.Body.String(), "table") {
		t.Fatalf("expected tabular admin panel, got %s", rec.Body.String())
	}
}
