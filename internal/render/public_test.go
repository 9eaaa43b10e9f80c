package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/i18n"
	"github.com/goliatone/go-pagetree/internal/identity"
	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
)

type fixture struct {
	repo   *internalpages.MemoryPageRepository
	public *PublicEngine
	admin  *AdminEngine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := internalpages.NewMemoryPageRepository()
	service := internalpages.NewService(repo)
	builder := urls.NewBuilder()
	return &fixture{
		repo:   repo,
		public: NewPublicEngine(service, builder),
		admin:  NewAdminEngine(service, builder),
	}
}

func (f *fixture) seed(t *testing.T, page *pages.Page) *pages.Page {
	t.Helper()
	if page.ID == uuid.Nil {
		page.ID = identity.PageUUID(page.Code)
	}
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if page.CreatedAt.IsZero() {
		page.CreatedAt = base
	}
	if page.UpdatedAt.IsZero() {
		page.UpdatedAt = base
	}
	created, err := f.repo.Create(context.Background(), page)
	if err != nil {
		t.Fatalf("seed %s: %v", page.Code, err)
	}
	return created
}

func (f *fixture) seedRoot(t *testing.T) *pages.Page {
	t.Helper()
	return f.seed(t, &pages.Page{
		Code:      pages.RootCode,
		CaptionUA: "Головна",
		CaptionEN: "Home",
	})
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func containerPtr(v domain.ContainerType) *domain.ContainerType { return &v }

func TestRenderRootHasEmptySubheader(t *testing.T) {
	f := newFixture(t)
	f.seedRoot(t)

	for _, lang := range []domain.Language{domain.LanguageUA, domain.LanguageEN} {
		out, err := f.public.Render(context.Background(), lang, pages.RootCode)
		if err != nil {
			t.Fatalf("render root (%s): %v", lang, err)
		}
		if out.Subheader != "" {
			t.Fatalf("expected empty subheader for root (%s), got %q", lang, out.Subheader)
		}
	}
}

func TestRenderSubheaderSimplifiesRootToHomePath(t *testing.T) {
	f := newFixture(t)
	f.seedRoot(t)
	f.seed(t, &pages.Page{
		Code:       "about",
		CaptionUA:  "Про нас",
		CaptionEN:  "About",
		ParentCode: strPtr(pages.RootCode),
	})

	out, err := f.public.Render(context.Background(), domain.LanguageEN, "about")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.Subheader, `href="/en"`) {
		t.Fatalf("expected home path link, got %q", out.Subheader)
	}
	if strings.Contains(out.Subheader, "root") {
		t.Fatalf("expected root code hidden from URL, got %q", out.Subheader)
	}
	if !strings.Contains(out.Subheader, "Home") {
		t.Fatalf("expected root caption as link text, got %q", out.Subheader)
	}

	uaOut, err := f.public.Render(context.Background(), domain.LanguageUA, "about")
	if err != nil {
		t.Fatalf("render ua: %v", err)
	}
	if !strings.Contains(uaOut.Subheader, `href="/"`) {
		t.Fatalf("expected ua home path link, got %q", uaOut.Subheader)
	}
}

func TestRenderNoContainerWithoutContainerType(t *testing.T) {
	f := newFixture(t)
	f.seedRoot(t)
	f.seed(t, &pages.Page{
		Code:       "leafy",
		CaptionUA:  "Лист",
		CaptionEN:  "Leaf",
		ContentEN:  "<p>Body</p>",
		ParentCode: strPtr(pages.RootCode),
	})
	f.seed(t, &pages.Page{
		Code:       "hidden-child",
		CaptionUA:  "x",
		CaptionEN:  "x",
		ParentCode: strPtr("leafy"),
	})

	out, err := f.public.Render(context.Background(), domain.LanguageEN, "leafy")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Content != "<p>Body</p>" {
		t.Fatalf("expected body only, got %q", out.Content)
	}
}

func TestRenderEmptyContainerRendersWrapper(t *testing.T) {
	f := newFixture(t)
	f.seedRoot(t)
	f.seed(t, &pages.Page{
		Code:          "gallery",
		CaptionUA:     "Галерея",
		CaptionEN:     "Gallery",
		ParentCode:    strPtr(pages.RootCode),
		ContainerType: containerPtr(domain.ContainerGrid),
	})

	out, err := f.public.Render(context.Background(), domain.LanguageEN, "gallery")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.Content, `<div class="children"></div>`) {
		t.Fatalf("expected empty container wrapper, got %q", out.Content)
	}
}

func TestRenderGridOrdersChildrenAndFillsFragments(t *testing.T) {
	f := newFixture(t)
	root := f.seed(t, &pages.Page{
		Code:          pages.RootCode,
		CaptionUA:     "Головна",
		CaptionEN:     "Home",
		IntroEN:       "Welcome",
		ImageURL:      "/img/root.png",
		ContentEN:     "<p>Intro</p>",
		ContainerType: containerPtr(domain.ContainerGrid),
	})
	f.seed(t, &pages.Page{
		Code:       "b-page",
		CaptionUA:  "Б",
		CaptionEN:  "B",
		ParentCode: strPtr(root.Code),
		OrderNum:   intPtr(2),
	})
	f.seed(t, &pages.Page{
		Code:       "a-page",
		CaptionUA:  "А",
		CaptionEN:  "A",
		ParentCode: strPtr(root.Code),
		OrderNum:   intPtr(1),
	})

	out, err := f.public.Render(context.Background(), domain.LanguageUA, pages.RootCode)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if out.Subheader != "" {
		t.Fatalf("expected empty subheader, got %q", out.Subheader)
	}
	if out.Title != "Головна" {
		t.Fatalf("expected localized title, got %q", out.Title)
	}
	if out.ImageURL != "/img/root.png" {
		t.Fatalf("expected image url, got %q", out.ImageURL)
	}
	if !strings.Contains(out.Meta, "<title>Головна</title>") {
		t.Fatalf("expected meta title, got %q", out.Meta)
	}
	if !strings.Contains(out.Footer, i18n.Text(i18n.KeyFooterCopyright, domain.LanguageUA)) {
		t.Fatalf("expected localized footer, got %q", out.Footer)
	}

	aIdx := strings.Index(out.Content, `href="/a-page"`)
	bIdx := strings.Index(out.Content, `href="/b-page"`)
	if aIdx < 0 || bIdx < 0 {
		t.Fatalf("expected both child links, got %q", out.Content)
	}
	if aIdx > bIdx {
		t.Fatalf("expected a-page card before b-page card")
	}

	if !strings.Contains(out.Content, i18n.Text(i18n.KeyOpen, domain.LanguageUA)) {
		t.Fatalf("expected full open phrase for grid container, got %q", out.Content)
	}
	if strings.Contains(out.Content, "card card-list") {
		t.Fatalf("expected bare card wrapper for grid container")
	}
}

func TestRenderListUsesShortGlyphAndListClass(t *testing.T) {
	f := newFixture(t)
	f.seedRoot(t)
	f.seed(t, &pages.Page{
		Code:          "archive",
		CaptionUA:     "Архів",
		CaptionEN:     "Archive",
		ParentCode:    strPtr(pages.RootCode),
		ContainerType: containerPtr(domain.ContainerList),
	})
	f.seed(t, &pages.Page{
		Code:       "entry",
		CaptionUA:  "Запис",
		CaptionEN:  "Entry",
		ParentCode: strPtr("archive"),
		OrderNum:   intPtr(1),
	})

	out, err := f.public.Render(context.Background(), domain.LanguageEN, "archive")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.Content, "card card-list") {
		t.Fatalf("expected list wrapper class, got %q", out.Content)
	}
	if !strings.Contains(out.Content, i18n.OpenShortened) {
		t.Fatalf("expected shortened open glyph, got %q", out.Content)
	}
}

func TestRenderMissingPage(t *testing.T) {
	f := newFixture(t)
	f.seedRoot(t)

	_, err := f.public.Render(context.Background(), domain.LanguageUA, "ghost")
	if !pages.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
