package render

import (
	"html"
	"strings"
)

// Fragment is a piece of composed HTML. Fragments are assembled by the
// engines and embedded by the host shell; they never carry outer document
// structure.
type Fragment string

// String returns the fragment markup.
func (f Fragment) String() string {
	return string(f)
}

// Attr is an ordered attribute pair. Attributes render in declaration order
// so fragment output stays deterministic.
type Attr struct {
	Key   string
	Value string
}

// A constructs an attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Text escapes the string for safe embedding in markup.
func Text(s string) Fragment {
	return Fragment(html.EscapeString(s))
}

// Raw embeds the string verbatim. Page body fields are stored as pre-escaped
// HTML fragments and must pass through untouched.
func Raw(s string) Fragment {
	return Fragment(s)
}

// Join concatenates fragments in order.
func Join(fragments ...Fragment) Fragment {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(string(f))
	}
	return Fragment(b.String())
}

// Tag renders an element with the given attributes and children.
func Tag(name string, attrs []Attr, children ...Fragment) Fragment {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	writeAttrs(&b, attrs)
	b.WriteString(">")
	for _, child := range children {
		b.WriteString(string(child))
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
	return Fragment(b.String())
}

// Void renders a self-closing element such as img or input.
func Void(name string, attrs []Attr) Fragment {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	writeAttrs(&b, attrs)
	b.WriteString("/>")
	return Fragment(b.String())
}

// Anchor renders a link with escaped text content.
func Anchor(href, class, text string) Fragment {
	attrs := []Attr{A("href", href)}
	if class != "" {
		attrs = append(attrs, A("class", class))
	}
	return Tag("a", attrs, Text(text))
}

func writeAttrs(b *strings.Builder, attrs []Attr) {
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Value))
		b.WriteString(`"`)
	}
}

// ellipsize cuts text exceeding width to width-3 runes plus "...". Text at or
// under the width passes through untouched, so the result never exceeds width.
func ellipsize(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
