package discussion

import "time"

// SourceType identifies the platform a thread was aggregated from.
type SourceType string

const (
	SourceGitHub  SourceType = "github"
	SourceReddit  SourceType = "reddit"
	SourceYouTube SourceType = "youtube"
	SourceBlog    SourceType = "blog"
	SourceForum   SourceType = "forum"
)

// OrphanContentMarker prefixes the content of a comment whose declared
// parent could not be found within its thread. The literal text is part of
// the adapter contract and must not change.
const OrphanContentMarker = "[Reply to unavailable comment]"

// CommentNode represents one post in a discussion.
// ParentID is a back-reference used only during assembly; once the tree is
// built, navigation happens exclusively through Children.
type CommentNode struct {
	ID        string         `json:"id"`
	ParentID  *string        `json:"parent_id,omitempty"`
	Author    string         `json:"author"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	URL       *string        `json:"url,omitempty"`
	Score     *int           `json:"score,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Children  []*CommentNode `json:"children,omitempty"`
}

// Thread is the aggregate root for one discussion (an issue, video, post,
// or article). RootComments holds the comment forest: true roots plus any
// promoted orphans, in original input order.
type Thread struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	Author       string         `json:"author"`
	CreatedAt    time.Time      `json:"created_at"`
	SourceType   SourceType     `json:"source_type"`
	URL          *string        `json:"url,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	RootComments []*CommentNode `json:"root_comments"`
}
