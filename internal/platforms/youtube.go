package platforms

import (
	"fmt"
	"html"
	"log/slog"
	"time"

	"colloquy/internal/domain"
	"colloquy/internal/domain/models/discussion"
	"colloquy/internal/platforms/convert"
)

// YouTube Data API commentThreads shapes. YouTube nests replies directly
// under each top-level comment, so this adapter uses the pre-nested supply
// mode: it composes the comment forest itself and bypasses the assembler,
// owning its own placement decisions.

// YouTubeCommentThreadList is the items page of a commentThreads.list call.
type YouTubeCommentThreadList struct {
	Items []YouTubeCommentThread `json:"items"`
}

// YouTubeCommentThread is one top-level comment with its replies.
type YouTubeCommentThread struct {
	ID      string               `json:"id"`
	Snippet YouTubeThreadSnippet `json:"snippet"`
	Replies *YouTubeReplyList    `json:"replies,omitempty"`
}

// YouTubeThreadSnippet wraps the top-level comment resource.
type YouTubeThreadSnippet struct {
	TopLevelComment YouTubeComment `json:"topLevelComment"`
	TotalReplyCount int            `json:"totalReplyCount"`
}

// YouTubeReplyList holds the (possibly partial) replies of a thread.
type YouTubeReplyList struct {
	Comments []YouTubeComment `json:"comments"`
}

// YouTubeComment is one comment resource.
type YouTubeComment struct {
	ID      string                `json:"id"`
	Snippet YouTubeCommentSnippet `json:"snippet"`
}

// YouTubeCommentSnippet carries the comment fields; textDisplay is HTML.
type YouTubeCommentSnippet struct {
	AuthorDisplayName string    `json:"authorDisplayName"`
	TextDisplay       string    `json:"textDisplay"`
	LikeCount         int       `json:"likeCount"`
	PublishedAt       time.Time `json:"publishedAt"`
}

// YouTubeVideo is the thread-level metadata source.
type YouTubeVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channelTitle"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// YouTubeAdapter composes pre-nested threads from commentThreads pages.
type YouTubeAdapter struct {
	sanitizer *convert.Sanitizer
	logger    *slog.Logger
}

// NewYouTubeAdapter creates a new YouTube adapter. Comment text is stripped
// to plain text: textDisplay arrives as HTML.
func NewYouTubeAdapter(logger *slog.Logger) *YouTubeAdapter {
	return &YouTubeAdapter{sanitizer: convert.NewStrictSanitizer(), logger: logger}
}

// Thread composes the full thread directly from the API nesting. Replies
// appear as children of their top-level comment in API order.
func (a *YouTubeAdapter) Thread(video *YouTubeVideo, list *YouTubeCommentThreadList) (*discussion.Thread, error) {
	if video.ID == "" {
		return nil, fmt.Errorf("%w: youtube video missing id", domain.ErrValidation)
	}

	thread := &discussion.Thread{
		ID:          video.ID,
		Title:       video.Title,
		Description: strPtr(video.Description),
		Author:      video.ChannelTitle,
		CreatedAt:   video.PublishedAt,
		SourceType:  discussion.SourceYouTube,
		URL:         strPtr("https://www.youtube.com/watch?v=" + video.ID),
	}

	if list == nil {
		thread.RootComments = []*discussion.CommentNode{}
		return thread, nil
	}

	roots := make([]*discussion.CommentNode, 0, len(list.Items))
	total := 0
	for i := range list.Items {
		item := &list.Items[i]
		root := a.node(video.ID, &item.Snippet.TopLevelComment)
		if item.Snippet.TotalReplyCount > 0 {
			root.Metadata = map[string]any{"total_reply_count": item.Snippet.TotalReplyCount}
		}
		total++
		if item.Replies != nil {
			for j := range item.Replies.Comments {
				root.Children = append(root.Children, a.node(video.ID, &item.Replies.Comments[j]))
				total++
			}
		}
		roots = append(roots, root)
	}
	thread.RootComments = roots

	a.logger.Debug("composed youtube thread", "video_id", video.ID, "comments", total)
	return thread, nil
}

func (a *YouTubeAdapter) node(videoID string, c *YouTubeComment) *discussion.CommentNode {
	// Strip HTML, then unescape what bluemonday re-encoded so plain text
	// like apostrophes survives intact.
	text := html.UnescapeString(a.sanitizer.Sanitize(c.Snippet.TextDisplay))

	node := &discussion.CommentNode{
		ID:        c.ID,
		Author:    c.Snippet.AuthorDisplayName,
		Content:   text,
		CreatedAt: c.Snippet.PublishedAt,
		URL:       strPtr("https://www.youtube.com/watch?v=" + videoID + "&lc=" + c.ID),
	}
	if c.Snippet.LikeCount > 0 {
		node.Score = intPtr(c.Snippet.LikeCount)
	}
	return node
}
