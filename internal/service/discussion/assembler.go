package discussion

import (
	"log/slog"

	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
)

type assemblerService struct {
	logger *slog.Logger
}

// NewAssemblerService creates a new tree assembler.
func NewAssemblerService(logger *slog.Logger) discussionSvc.Assembler {
	return &assemblerService{logger: logger}
}

// Assemble reconstructs the comment forest in O(n) time: one pass to index
// every record by id, one pass to link. Because the index is complete before
// any linking happens, a child may precede its parent in the input and still
// attach correctly.
func (s *assemblerService) Assemble(records []discussion.NodeRecord) []*discussion.CommentNode {
	nodes := make([]*discussion.CommentNode, len(records))
	index := make(map[string]*discussion.CommentNode, len(records))
	for i, rec := range records {
		node := &discussion.CommentNode{
			ID:        rec.ID,
			ParentID:  rec.ParentID,
			Author:    rec.Author,
			Content:   rec.Content,
			CreatedAt: rec.CreatedAt,
			URL:       rec.URL,
			Score:     rec.Score,
			Metadata:  rec.Metadata,
		}
		nodes[i] = node
		// On duplicate ids the later record wins the index slot; every
		// record still produces exactly one node in the output.
		index[rec.ID] = node
	}

	roots := make([]*discussion.CommentNode, 0, len(nodes))
	// Parent back-pointers for the cycle recovery sweep below.
	attachedTo := make(map[*discussion.CommentNode]*discussion.CommentNode)
	for _, node := range nodes {
		if node.ParentID == nil || *node.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[*node.ParentID]
		if !ok || *node.ParentID == node.ID {
			// Dangling or self-referencing parent: promote to root with the
			// literal marker so no data is dropped.
			node.Content = discussion.OrphanContentMarker + " " + node.Content
			roots = append(roots, node)
			s.logger.Debug("promoted orphan comment", "id", node.ID, "parent_id", *node.ParentID)
			continue
		}
		parent.Children = append(parent.Children, node)
		attachedTo[node] = parent
	}

	return s.recoverCycles(nodes, roots, attachedTo)
}

func (s *assemblerService) AssembleThread(in discussionSvc.ThreadInput, records []discussion.NodeRecord) *discussion.Thread {
	roots := s.Assemble(records)
	s.logger.Debug("assembled thread",
		"thread_id", in.ID,
		"source", string(in.Source),
		"nodes", len(records),
		"roots", len(roots))
	return &discussion.Thread{
		ID:           in.ID,
		Title:        in.Title,
		Description:  in.Description,
		Author:       in.Author,
		CreatedAt:    in.CreatedAt,
		SourceType:   in.Source,
		URL:          in.URL,
		Metadata:     in.Metadata,
		RootComments: roots,
	}
}

// recoverCycles conserves nodes trapped in multi-node parent cycles
// (A→B→A and longer). Such nodes all have a resolvable parent, so the
// linking pass attaches every member of the cycle to another member and
// none of them ends up reachable from the roots. The sweep promotes the
// first unreachable node in input order: it is detached from its parent's
// children list, marked like any other orphan, and appended to the roots,
// which makes the rest of its cycle reachable as ordinary descendants.
// Each node is visited at most once, so the sweep always terminates.
func (s *assemblerService) recoverCycles(nodes, roots []*discussion.CommentNode, attachedTo map[*discussion.CommentNode]*discussion.CommentNode) []*discussion.CommentNode {
	if len(attachedTo) == 0 {
		return roots
	}

	reachable := make(map[*discussion.CommentNode]bool, len(nodes))
	mark := func(root *discussion.CommentNode) {
		stack := []*discussion.CommentNode{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reachable[n] {
				continue
			}
			reachable[n] = true
			stack = append(stack, n.Children...)
		}
	}
	for _, r := range roots {
		mark(r)
	}

	for _, node := range nodes {
		if reachable[node] {
			continue
		}
		parent := attachedTo[node]
		parent.Children = detachChild(parent.Children, node)
		node.Content = discussion.OrphanContentMarker + " " + node.Content
		roots = append(roots, node)
		s.logger.Warn("promoted comment from parent cycle", "id", node.ID)
		mark(node)
	}
	return roots
}

func detachChild(children []*discussion.CommentNode, child *discussion.CommentNode) []*discussion.CommentNode {
	for i, c := range children {
		if c == child {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}
