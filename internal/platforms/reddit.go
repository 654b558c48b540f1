package platforms

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
	"colloquy/internal/platforms/convert"
)

// Reddit listing shapes as returned by the comments endpoint. Reddit
// delivers comments pre-nested (each comment carries a replies listing),
// but parent references are explicit fullnames, so the adapter flattens
// everything into flat supply mode and lets the assembler re-link.

// RedditListing is a kind/data envelope of children.
type RedditListing struct {
	Kind string            `json:"kind"`
	Data RedditListingData `json:"data"`
}

// RedditListingData holds the children of a listing.
type RedditListingData struct {
	Children []RedditThing `json:"children"`
}

// RedditThing is one envelope in a listing: t1 = comment, t3 = link.
type RedditThing struct {
	Kind string        `json:"kind"`
	Data RedditComment `json:"data"`
}

// RedditComment is the data of a t1 thing. Replies is raw because Reddit
// encodes "no replies" as an empty string instead of an empty listing.
type RedditComment struct {
	ID         string          `json:"id"`
	ParentID   string          `json:"parent_id"` // fullname: t1_xxx or t3_xxx
	Author     string          `json:"author"`
	Body       string          `json:"body"`
	BodyHTML   string          `json:"body_html"`
	CreatedUTC float64         `json:"created_utc"`
	Score      int             `json:"score"`
	Permalink  string          `json:"permalink"`
	Replies    json.RawMessage `json:"replies,omitempty"`
}

// RedditPost is the t3 data the thread metadata comes from.
type RedditPost struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
	Subreddit  string  `json:"subreddit_name_prefixed"`
	Score      int     `json:"score"`
}

// RedditAdapter normalizes Reddit comment listings.
type RedditAdapter struct {
	conv   *convert.HTMLConverter
	logger *slog.Logger
}

// NewRedditAdapter creates a new Reddit adapter.
func NewRedditAdapter(logger *slog.Logger) *RedditAdapter {
	return &RedditAdapter{conv: convert.NewHTMLConverter(), logger: logger}
}

// Thread normalizes a post and its comment listing. Nested replies listings
// are walked depth-first into one flat record sequence; parent fullnames
// with a t3_ prefix mark top-level comments, t1_ prefixes are stripped to
// bare comment ids. Unrecognized prefixes are kept verbatim and degrade to
// orphans downstream.
func (a *RedditAdapter) Thread(post *RedditPost, listing *RedditListing) (discussionSvc.ThreadInput, []discussion.NodeRecord, error) {
	in := discussionSvc.ThreadInput{
		ID:          post.ID,
		Title:       post.Title,
		Description: strPtr(post.SelfText),
		Author:      post.Author,
		CreatedAt:   epochTime(post.CreatedUTC),
		Source:      discussion.SourceReddit,
		URL:         strPtr(redditURL(post.Permalink)),
		Metadata:    map[string]any{"subreddit": post.Subreddit, "score": post.Score},
	}
	if err := validateThreadInput(&in); err != nil {
		return discussionSvc.ThreadInput{}, nil, fmt.Errorf("reddit post: %w", err)
	}

	var records []discussion.NodeRecord
	if listing != nil {
		var err error
		records, err = a.flatten(listing, records)
		if err != nil {
			return discussionSvc.ThreadInput{}, nil, err
		}
	}

	a.logger.Debug("normalized reddit post", "id", post.ID, "comments", len(records))
	return in, records, nil
}

func (a *RedditAdapter) flatten(listing *RedditListing, records []discussion.NodeRecord) ([]discussion.NodeRecord, error) {
	for i := range listing.Data.Children {
		thing := &listing.Data.Children[i]
		if thing.Kind != "t1" {
			// "more" stubs and anything else carry no comment data.
			continue
		}
		c := &thing.Data

		content := c.Body
		if content == "" && c.BodyHTML != "" {
			markdown, err := a.conv.Markdown(c.BodyHTML)
			if err != nil {
				a.logger.Warn("body_html conversion failed", "id", c.ID, "error", err)
			} else {
				content = markdown
			}
		}

		rec := discussion.NodeRecord{
			ID:        c.ID,
			ParentID:  redditParent(c.ParentID),
			Author:    c.Author,
			Content:   content,
			CreatedAt: epochTime(c.CreatedUTC),
			URL:       strPtr(redditURL(c.Permalink)),
			Score:     intPtr(c.Score),
		}
		if err := validateRecord(&rec); err != nil {
			return nil, fmt.Errorf("reddit comment: %w", err)
		}
		records = append(records, rec)

		if replies := decodeReplies(c.Replies); replies != nil {
			var err error
			records, err = a.flatten(replies, records)
			if err != nil {
				return nil, err
			}
		}
	}
	return records, nil
}

// redditParent maps a parent fullname to an assembler parent reference:
// t3_ (the post itself) means top level, t1_ prefixes are stripped.
func redditParent(fullname string) *string {
	if fullname == "" || strings.HasPrefix(fullname, "t3_") {
		return nil
	}
	if id, ok := strings.CutPrefix(fullname, "t1_"); ok {
		return &id
	}
	return &fullname
}

func decodeReplies(raw json.RawMessage) *RedditListing {
	if len(raw) == 0 || string(raw) == `""` || string(raw) == "null" {
		return nil
	}
	var listing RedditListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil
	}
	return &listing
}

func epochTime(seconds float64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return time.Unix(int64(seconds), 0).UTC()
}

func redditURL(permalink string) string {
	if permalink == "" {
		return ""
	}
	return "https://www.reddit.com" + permalink
}
