package convert

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// HTMLConverter turns platform HTML fragments into Markdown comment
// content. Two stages: sanitize first (XSS vectors removed), then convert
// the surviving markup to Markdown.
type HTMLConverter struct {
	sanitizer *Sanitizer
	converter *md.Converter
}

// NewHTMLConverter creates a converter with the UGC sanitizer policy.
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{
		sanitizer: NewSanitizer(),
		converter: md.NewConverter("", true, nil),
	}
}

// Markdown converts an HTML fragment to trimmed Markdown.
func (c *HTMLConverter) Markdown(input string) (string, error) {
	sanitized := c.sanitizer.Sanitize(input)
	markdown, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("convert html to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
