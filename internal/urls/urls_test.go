package urls

import (
	"strings"
	"testing"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/pages"
)

func mustBuild(t *testing.T) func(path string, err error) string {
	return func(path string, err error) string {
		t.Helper()
		if err != nil {
			t.Fatalf("build url: %v", err)
		}
		return path
	}
}

func TestPagePathPerLanguage(t *testing.T) {
	b := NewBuilder()

	if got := mustBuild(t)(b.PagePath(domain.LanguageUA, "about")); got != "/about" {
		t.Fatalf("expected /about, got %q", got)
	}
	if got := mustBuild(t)(b.PagePath(domain.LanguageEN, "about")); got != "/en/about" {
		t.Fatalf("expected /en/about, got %q", got)
	}
}

func TestPagePathSimplifiesRoot(t *testing.T) {
	b := NewBuilder()

	if got := mustBuild(t)(b.PagePath(domain.LanguageUA, pages.RootCode)); got != "/" {
		t.Fatalf("expected /, got %q", got)
	}
	if got := mustBuild(t)(b.PagePath(domain.LanguageEN, pages.RootCode)); got != "/en" {
		t.Fatalf("expected /en, got %q", got)
	}
	if got := mustBuild(t)(b.PagePath(domain.LanguageUA, "")); got != "/" {
		t.Fatalf("expected empty code to map to home, got %q", got)
	}
}

func TestAdminPaths(t *testing.T) {
	b := NewBuilder()

	index := mustBuild(t)(b.AdminIndex(domain.LanguageUA, "docs"))
	if !strings.HasPrefix(index, "/admin/pages") || !strings.Contains(index, "parentCode=docs") {
		t.Fatalf("unexpected admin index path %q", index)
	}

	enIndex := mustBuild(t)(b.AdminIndex(domain.LanguageEN, ""))
	if !strings.HasPrefix(enIndex, "/en/admin/pages") {
		t.Fatalf("expected /en prefix, got %q", enIndex)
	}
	if strings.Contains(enIndex, "parentCode") {
		t.Fatalf("expected no parent query, got %q", enIndex)
	}

	if got := mustBuild(t)(b.AdminShow(domain.LanguageUA, "docs")); got != "/admin/pages/docs" {
		t.Fatalf("expected show path, got %q", got)
	}
	if got := mustBuild(t)(b.AdminEdit(domain.LanguageEN, "docs")); got != "/en/admin/pages/docs/edit" {
		t.Fatalf("expected edit path, got %q", got)
	}

	create := mustBuild(t)(b.AdminCreate(domain.LanguageUA, "docs"))
	if !strings.HasPrefix(create, "/admin/pages/create") || !strings.Contains(create, "parentCode=docs") {
		t.Fatalf("unexpected create path %q", create)
	}
}

func TestAdminIndexFlaggedCarriesMessageFlag(t *testing.T) {
	b := NewBuilder()

	flagged := mustBuild(t)(b.AdminIndexFlagged(domain.LanguageUA, "", domain.MessageDeleted))
	if !strings.Contains(flagged, "deleted=true") {
		t.Fatalf("expected deleted flag, got %q", flagged)
	}

	plain := mustBuild(t)(b.AdminIndexFlagged(domain.LanguageUA, "", domain.MessageNone))
	if strings.Contains(plain, "=true") {
		t.Fatalf("expected no flag, got %q", plain)
	}
}

func TestCustomAdminBasePath(t *testing.T) {
	b := NewBuilderWithAdminPath("/manage/tree/")

	if got := mustBuild(t)(b.AdminShow(domain.LanguageUA, "docs")); got != "/manage/tree/docs" {
		t.Fatalf("expected custom base path, got %q", got)
	}
}
