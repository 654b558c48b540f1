package discussion

import (
	"fmt"
	"log/slog"
	"strings"

	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
)

type rendererService struct {
	logger *slog.Logger
}

// NewRendererService creates a new text renderer for minified threads.
func NewRendererService(logger *slog.Logger) discussionSvc.Renderer {
	return &rendererService{logger: logger}
}

// Render flattens minified threads into one human/LLM-readable text block.
// Replies are emitted depth-first immediately after their parent, indented
// two spaces per level.
//
// Example output:
//
//	# Test Thread
//
//	Author: someone
//	Platform: github
//
//	**User1**: Hello (score: 5)
//	  **User2**: a reply
func (s *rendererService) Render(threads []*discussion.MinifiedThread) string {
	var b strings.Builder
	for i, t := range threads {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		b.WriteString("# " + t.Title + "\n")
		if t.Description != nil && *t.Description != "" {
			b.WriteString("\n" + *t.Description + "\n")
		}
		b.WriteString("\nAuthor: " + t.Author + "\n")
		b.WriteString("Platform: " + t.Platform + "\n")
		if len(t.Comments) == 0 {
			b.WriteString("\nNo comments.\n")
			continue
		}
		b.WriteString("\n")
		for _, c := range t.Comments {
			writeComment(&b, c, 0)
		}
	}
	s.logger.Debug("rendered threads", "count", len(threads), "bytes", b.Len())
	return b.String()
}

func writeComment(b *strings.Builder, c *discussion.MinifiedComment, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("**" + c.Author + "**: " + c.Content)
	if c.Score != nil {
		b.WriteString(fmt.Sprintf(" (score: %d)", *c.Score))
	}
	b.WriteString("\n")
	for _, child := range c.Children {
		writeComment(b, child, depth+1)
	}
}
