package discussion

import "time"

// MinifiedComment is the reduced comment shape for size-constrained
// consumers. IDs, parent references, URLs and metadata are dropped, which
// makes the projection one-way: a minified tree cannot be re-flattened and
// re-assembled.
type MinifiedComment struct {
	Author    string             `json:"author"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	Score     *int               `json:"score,omitempty"`
	Children  []*MinifiedComment `json:"children,omitempty"`
}

// MinifiedThread is the reduced thread shape. The source type tag is
// carried under the generic Platform label.
type MinifiedThread struct {
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Author      string             `json:"author"`
	CreatedAt   time.Time          `json:"created_at"`
	Platform    string             `json:"platform"`
	Comments    []*MinifiedComment `json:"comments"`
}
