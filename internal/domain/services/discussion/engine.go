package discussion

import (
	"time"

	"colloquy/internal/domain/models/discussion"
)

// Assembler reconstructs a comment forest from the flat records supplied by
// platform adapters. It never returns an error: unresolvable parent
// references degrade to root-level orphans so a single bad record from a
// flaky upstream fetch cannot drop data or abort the pipeline.
type Assembler interface {
	// Assemble builds the comment forest for one thread. Input order is
	// preserved among siblings and among roots.
	Assemble(records []discussion.NodeRecord) []*discussion.CommentNode

	// AssembleThread builds the full thread aggregate from its metadata and
	// flat comment records.
	AssembleThread(in ThreadInput, records []discussion.NodeRecord) *discussion.Thread
}

// Minifier produces the lossy, one-way projection of threads for
// size-constrained consumers such as LLM context windows.
type Minifier interface {
	Minify(t *discussion.Thread) *discussion.MinifiedThread

	// MinifyAll minifies each thread, preserving list order.
	MinifyAll(ts []*discussion.Thread) []*discussion.MinifiedThread
}

// Renderer turns minified threads into a single flat text block.
type Renderer interface {
	Render(threads []*discussion.MinifiedThread) string
}

// ThreadInput carries the thread-level metadata an adapter extracted from a
// platform payload.
type ThreadInput struct {
	ID          string
	Title       string
	Description *string
	Author      string
	CreatedAt   time.Time
	Source      discussion.SourceType
	URL         *string
	Metadata    map[string]any
}
