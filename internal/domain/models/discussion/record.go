package discussion

import "time"

// NodeRecord is the flat supply shape adapters hand to the assembler: one
// record per comment, unordered beyond original platform order, with an
// optional (possibly dangling) parent reference.
type NodeRecord struct {
	ID        string
	ParentID  *string
	Author    string
	Content   string
	CreatedAt time.Time
	URL       *string
	Score     *int
	Metadata  map[string]any
}
