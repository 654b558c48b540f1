package convert

import (
	"strings"
	"testing"
)

func TestSanitizer_StripsAttackVectors(t *testing.T) {
	s := NewSanitizer()

	out := s.Sanitize(`<p onclick="evil()">hi</p><script>steal()</script>`)
	if strings.Contains(out, "script") || strings.Contains(out, "onclick") {
		t.Errorf("attack vectors survived: %q", out)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("safe content lost: %q", out)
	}
}

func TestStrictSanitizer_StripsAllTags(t *testing.T) {
	s := NewStrictSanitizer()

	out := s.Sanitize(`<b>bold</b> and <a href="https://x.test">a link</a>`)
	if strings.Contains(out, "<") {
		t.Errorf("tags survived strict policy: %q", out)
	}
	if !strings.Contains(out, "bold") || !strings.Contains(out, "a link") {
		t.Errorf("text content lost: %q", out)
	}
}

func TestHTMLConverter_Markdown(t *testing.T) {
	c := NewHTMLConverter()

	got, err := c.Markdown("<p>Hello <strong>world</strong></p>")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if got != "Hello **world**" {
		t.Errorf("conversion = %q", got)
	}
}

func TestHTMLConverter_SanitizesFirst(t *testing.T) {
	c := NewHTMLConverter()

	got, err := c.Markdown(`<p>ok</p><script>alert(1)</script>`)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if strings.Contains(got, "alert") {
		t.Errorf("script content survived: %q", got)
	}
}
