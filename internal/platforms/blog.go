package platforms

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
	"colloquy/internal/platforms/convert"
)

// RSS comment-feed shapes (WordPress-style per-post comment feeds). Flat
// supply mode: threaded feeds reference parents through thr:in-reply-to.

// BlogFeed is a decoded RSS comment feed for one post.
type BlogFeed struct {
	XMLName xml.Name    `xml:"rss"`
	Channel BlogChannel `xml:"channel"`
}

// BlogChannel carries the post-level feed metadata and the comment items.
type BlogChannel struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	Items       []BlogItem `xml:"item"`
}

// BlogItem is one comment entry. Description holds the comment HTML.
type BlogItem struct {
	GUID        string        `xml:"guid"`
	Link        string        `xml:"link"`
	Creator     string        `xml:"creator"` // dc:creator
	Author      string        `xml:"author"`
	Description string        `xml:"description"`
	PubDate     string        `xml:"pubDate"`
	InReplyTo   *BlogReplyRef `xml:"in-reply-to"` // thr:in-reply-to
}

// BlogReplyRef is the thr:in-reply-to element; Ref names the parent guid.
type BlogReplyRef struct {
	Ref string `xml:"ref,attr"`
}

// ParseBlogFeed decodes raw RSS bytes into a BlogFeed.
func ParseBlogFeed(data []byte) (*BlogFeed, error) {
	var feed BlogFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parse blog comment feed: %w", err)
	}
	return &feed, nil
}

// BlogAdapter normalizes RSS comment feeds.
type BlogAdapter struct {
	conv   *convert.HTMLConverter
	logger *slog.Logger
}

// NewBlogAdapter creates a new blog/RSS adapter.
func NewBlogAdapter(logger *slog.Logger) *BlogAdapter {
	return &BlogAdapter{conv: convert.NewHTMLConverter(), logger: logger}
}

// Thread normalizes one comment feed. Items without a guid get a generated
// UUID: the comment itself is conserved, and any replies pointing at the
// missing guid surface as orphans instead of vanishing. Comment HTML is
// converted to Markdown.
func (a *BlogAdapter) Thread(feed *BlogFeed) (discussionSvc.ThreadInput, []discussion.NodeRecord, error) {
	ch := &feed.Channel

	threadID := ch.Link
	if threadID == "" {
		threadID = uuid.New().String()
	}
	in := discussionSvc.ThreadInput{
		ID:          threadID,
		Title:       ch.Title,
		Description: strPtr(ch.Description),
		Source:      discussion.SourceBlog,
		URL:         strPtr(ch.Link),
	}
	if err := validateThreadInput(&in); err != nil {
		return discussionSvc.ThreadInput{}, nil, fmt.Errorf("blog feed: %w", err)
	}

	records := make([]discussion.NodeRecord, 0, len(ch.Items))
	for i := range ch.Items {
		item := &ch.Items[i]

		id := item.GUID
		if id == "" {
			id = uuid.New().String()
			a.logger.Debug("feed item has no guid, generated id", "id", id)
		}

		author := item.Creator
		if author == "" {
			author = item.Author
		}

		content := item.Description
		if content != "" {
			markdown, err := a.conv.Markdown(content)
			if err != nil {
				a.logger.Warn("comment html conversion failed", "id", id, "error", err)
			} else {
				content = markdown
			}
		}

		rec := discussion.NodeRecord{
			ID:        id,
			Author:    author,
			Content:   content,
			CreatedAt: parsePubDate(item.PubDate),
			URL:       strPtr(item.Link),
		}
		if item.InReplyTo != nil && item.InReplyTo.Ref != "" {
			rec.ParentID = &item.InReplyTo.Ref
		}
		records = append(records, rec)
	}

	a.logger.Debug("normalized blog feed", "link", ch.Link, "comments", len(records))
	return in, records, nil
}

// parsePubDate tries the date formats RSS feeds use in the wild.
func parsePubDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
