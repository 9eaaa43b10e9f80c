package pages

import (
	"testing"
	"time"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/pages"
)

func intPtr(v int) *int { return &v }

func testPage(code string, orderNum int, created, updated time.Time) *pages.Page {
	return &pages.Page{
		Code:      code,
		OrderNum:  intPtr(orderNum),
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func codes(siblings []*pages.Page) []string {
	out := make([]string, 0, len(siblings))
	for _, p := range siblings {
		out = append(out, p.Code)
	}
	return out
}

func assertOrder(t *testing.T, siblings []*pages.Page, want ...string) {
	t.Helper()
	got := codes(siblings)
	if len(got) != len(want) {
		t.Fatalf("expected %d pages, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSortSiblingsByCreationDate(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	siblings := []*pages.Page{
		testPage("late", 1, base.Add(2*time.Hour), base),
		testPage("early", 2, base, base),
		testPage("middle", 3, base.Add(time.Hour), base),
	}

	SortSiblings(siblings, domain.OrderByCreationDate)
	assertOrder(t, siblings, "early", "middle", "late")
}

func TestSortSiblingsByUpdateDate(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	siblings := []*pages.Page{
		testPage("b", 1, base, base.Add(time.Hour)),
		testPage("a", 2, base, base),
	}

	SortSiblings(siblings, domain.OrderByUpdateDate)
	assertOrder(t, siblings, "a", "b")
}

func TestSortSiblingsDefaultUsesOrderNum(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	siblings := []*pages.Page{
		testPage("third", 30, base, base),
		testPage("first", 10, base.Add(time.Hour), base),
		testPage("second", 20, base.Add(2*time.Hour), base),
	}

	SortSiblings(siblings, domain.OrderDefault)
	assertOrder(t, siblings, "first", "second", "third")
}

func TestSortSiblingsIsIdempotent(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	siblings := []*pages.Page{
		testPage("c", 3, base, base),
		testPage("a", 1, base, base),
		testPage("b", 2, base, base),
	}

	SortSiblings(siblings, domain.OrderDefault)
	first := codes(siblings)

	SortSiblings(siblings, domain.OrderDefault)
	second := codes(siblings)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sorting twice changed the order: %v vs %v", first, second)
		}
	}
}

func TestSortSiblingsMissingOrderNumSortsFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	unnumbered := &pages.Page{Code: "unnumbered", CreatedAt: base, UpdatedAt: base}
	siblings := []*pages.Page{
		testPage("numbered", 5, base, base),
		unnumbered,
	}

	SortSiblings(siblings, domain.OrderDefault)
	assertOrder(t, siblings, "unnumbered", "numbered")
}
