package platforms

import (
	"fmt"
	"log/slog"
	"time"

	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
)

// GitHub GraphQL shapes as produced by the issue/PR comment fetchers. Flat
// supply mode: review comments carry an explicit (possibly dangling)
// replyTo reference, issue comments have none.

// GitHubActor is the author field of GraphQL nodes.
type GitHubActor struct {
	Login string `json:"login"`
}

// GitHubCommentRef is a reference to another comment, e.g. replyTo.
type GitHubCommentRef struct {
	ID string `json:"id"`
}

// GitHubReactions carries the aggregate reaction count of a node.
type GitHubReactions struct {
	TotalCount int `json:"totalCount"`
}

// GitHubComment is one issue or review comment node.
type GitHubComment struct {
	ID        string            `json:"id"`
	Author    GitHubActor       `json:"author"`
	Body      string            `json:"body"`
	CreatedAt time.Time         `json:"createdAt"`
	URL       string            `json:"url"`
	ReplyTo   *GitHubCommentRef `json:"replyTo,omitempty"`
	Reactions GitHubReactions   `json:"reactions"`
}

// GitHubIssue is the thread-level node (issue or pull request) with its
// already-paged comment list.
type GitHubIssue struct {
	ID        string          `json:"id"`
	Number    int             `json:"number"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Author    GitHubActor     `json:"author"`
	CreatedAt time.Time       `json:"createdAt"`
	URL       string          `json:"url"`
	Comments  []GitHubComment `json:"comments"`
}

// GitHubAdapter normalizes GraphQL issue/PR payloads.
type GitHubAdapter struct {
	logger *slog.Logger
}

// NewGitHubAdapter creates a new GitHub adapter.
func NewGitHubAdapter(logger *slog.Logger) *GitHubAdapter {
	return &GitHubAdapter{logger: logger}
}

// Thread normalizes one issue into thread metadata plus flat comment
// records for the assembler. Dangling replyTo references are passed through
// untouched; the assembler's orphan policy handles them.
func (a *GitHubAdapter) Thread(issue *GitHubIssue) (discussionSvc.ThreadInput, []discussion.NodeRecord, error) {
	in := discussionSvc.ThreadInput{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: strPtr(issue.Body),
		Author:      issue.Author.Login,
		CreatedAt:   issue.CreatedAt,
		Source:      discussion.SourceGitHub,
		URL:         strPtr(issue.URL),
		Metadata:    map[string]any{"number": issue.Number},
	}
	if err := validateThreadInput(&in); err != nil {
		return discussionSvc.ThreadInput{}, nil, fmt.Errorf("github issue %d: %w", issue.Number, err)
	}

	records := make([]discussion.NodeRecord, 0, len(issue.Comments))
	for i := range issue.Comments {
		c := &issue.Comments[i]
		rec := discussion.NodeRecord{
			ID:        c.ID,
			Author:    c.Author.Login,
			Content:   c.Body,
			CreatedAt: c.CreatedAt,
			URL:       strPtr(c.URL),
		}
		if c.ReplyTo != nil && c.ReplyTo.ID != "" {
			rec.ParentID = &c.ReplyTo.ID
		}
		if c.Reactions.TotalCount > 0 {
			rec.Score = intPtr(c.Reactions.TotalCount)
		}
		if err := validateRecord(&rec); err != nil {
			return discussionSvc.ThreadInput{}, nil, fmt.Errorf("github comment %d: %w", i, err)
		}
		records = append(records, rec)
	}

	a.logger.Debug("normalized github issue", "number", issue.Number, "comments", len(records))
	return in, records, nil
}
