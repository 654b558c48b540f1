package discussion

import (
	"log/slog"

	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
)

type minifierService struct {
	logger *slog.Logger
}

// NewMinifierService creates a new thread minifier.
func NewMinifierService(logger *slog.Logger) discussionSvc.Minifier {
	return &minifierService{logger: logger}
}

// Minify projects a thread onto its reduced form: ids, parent references,
// URLs and metadata are dropped, structure and order are kept exactly.
func (s *minifierService) Minify(t *discussion.Thread) *discussion.MinifiedThread {
	return &discussion.MinifiedThread{
		Title:       t.Title,
		Description: t.Description,
		Author:      t.Author,
		CreatedAt:   t.CreatedAt,
		Platform:    string(t.SourceType),
		Comments:    minifyComments(t.RootComments),
	}
}

func (s *minifierService) MinifyAll(ts []*discussion.Thread) []*discussion.MinifiedThread {
	out := make([]*discussion.MinifiedThread, 0, len(ts))
	for _, t := range ts {
		out = append(out, s.Minify(t))
	}
	s.logger.Debug("minified threads", "count", len(out))
	return out
}

func minifyComments(nodes []*discussion.CommentNode) []*discussion.MinifiedComment {
	out := make([]*discussion.MinifiedComment, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &discussion.MinifiedComment{
			Author:    n.Author,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			Score:     n.Score,
			Children:  minifyComments(n.Children),
		})
	}
	return out
}
