package render

import (
	"strings"
	"testing"
)

func TestTagRendersAttributesInOrder(t *testing.T) {
	got := Tag("div", []Attr{A("class", "card"), A("id", "main")}, Text("hello")).String()
	want := `<div class="card" id="main">hello</div>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTextEscapesMarkup(t *testing.T) {
	got := Text(`<script>alert("x")</script>`).String()
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected escaped markup, got %q", got)
	}
}

func TestRawPassesThrough(t *testing.T) {
	body := `<p>Trusted <strong>body</strong></p>`
	if got := Raw(body).String(); got != body {
		t.Fatalf("expected verbatim body, got %q", got)
	}
}

func TestAnchorEscapesHrefAndText(t *testing.T) {
	got := Anchor(`/a?b="c"`, "link", `<b>`).String()
	if strings.Contains(got, `"c"`) || strings.Contains(got, "<b>") {
		t.Fatalf("expected escaped anchor, got %q", got)
	}
}

func TestEllipsizeShortStringsUntouched(t *testing.T) {
	for _, s := range []string{"", "a", "exactly9!"} {
		if got := ellipsize(s, 9); got != s {
			t.Fatalf("expected %q untouched, got %q", s, got)
		}
	}
}

func TestEllipsizeTruncatesWithSuffix(t *testing.T) {
	got := ellipsize("a very long caption", 9)
	if got != "a very..." {
		t.Fatalf("expected %q, got %q", "a very...", got)
	}
	if len([]rune(got)) > 9 {
		t.Fatalf("expected result within width, got %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestEllipsizeCountsRunes(t *testing.T) {
	got := ellipsize("Дуже довгий заголовок", 9)
	if len([]rune(got)) > 9 {
		t.Fatalf("expected 9 runes max, got %d (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
