package parser

// Component I: comment attachment. Grounded on spec.md §4.I's stack-based
// algorithm and on mcgru-funxy's preference for a single forward-flowing
// buffer over parent back-pointers (spec.md §9: "Comment attachment needs
// only a commentStack of owning references and forward flow; no back-links
// are required").
//
// Every comment scanned by the lexer (lexer.go's recordComment) lands in
// s.comments (the permanent, ordered File.Comments list) and in
// s.pendingComments (comments not yet settled onto a node field). Each call
// to finishNode drains whatever pendingComments it can explain:
//
//  1. comments wholly inside the node's span that no child already claimed
//     become its InnerComments (dangling comments in an otherwise-empty
//     container, e.g. `{ /* nothing here */ }`);
//  2. comments ending at or before the node's start become its
//     LeadingComments;
//  3. comments starting at or after the node's end, on the same source
//     line, become its TrailingComments (a comment on the following line
//     is left pending for whichever later node claims it as leading
//     instead);
//  4. s.commentStack holds every node finished so far that hasn't yet been
//     subsumed by an enclosing node. Finishing a node pops the entries that
//     start inside it; each popped child's leading comments that end at or
//     before this node's start are handed up to this node, and its trailing
//     comments are handed up when it ends where this node ends. A comment
//     in front of `function f` therefore ends up on the FunctionDeclaration,
//     not on the identifier `f` that claimed it first. A Program takes no
//     comments from its children this way.
import "github.com/funvibe/ecmaparse/internal/ast"

func (s *State) claimComments(b *ast.BaseNode) {
	if len(s.pendingComments) > 0 {
		var remaining []*ast.Comment
		for _, c := range s.pendingComments {
			if c.Start_ >= b.Start_ && c.End_ <= b.End_ {
				b.InnerComments = append(b.InnerComments, c)
				continue
			}
			remaining = append(remaining, c)
		}
		s.pendingComments = remaining
	}

	if len(s.pendingComments) > 0 {
		var remaining []*ast.Comment
		for _, c := range s.pendingComments {
			if c.End_ <= b.Start_ {
				b.LeadingComments = append(b.LeadingComments, c)
				continue
			}
			remaining = append(remaining, c)
		}
		s.pendingComments = remaining
	}

	if len(s.pendingComments) > 0 && b.Loc_ != nil {
		var remaining []*ast.Comment
		for _, c := range s.pendingComments {
			if c.Start_ >= b.End_ && c.Loc_ != nil && c.Loc_.Start.Line == b.Loc_.End.Line {
				b.TrailingComments = append(b.TrailingComments, c)
				continue
			}
			remaining = append(remaining, c)
		}
		s.pendingComments = remaining
	}

	for len(s.commentStack) > 0 {
		top := s.commentStack[len(s.commentStack)-1]
		if top.Start_ < b.Start_ {
			break
		}
		s.commentStack = s.commentStack[:len(s.commentStack)-1]
		if top == b || b.Type_ == "Program" {
			continue
		}
		if len(top.LeadingComments) > 0 {
			var moved, kept []*ast.Comment
			for _, c := range top.LeadingComments {
				if c.End_ <= b.Start_ {
					moved = append(moved, c)
				} else {
					kept = append(kept, c)
				}
			}
			b.LeadingComments = append(moved, b.LeadingComments...)
			top.LeadingComments = kept
		}
		if top.End_ == b.End_ && len(top.TrailingComments) > 0 {
			b.TrailingComments = append(b.TrailingComments, top.TrailingComments...)
			top.TrailingComments = nil
		}
	}
	s.commentStack = append(s.commentStack, b)
}

// flushDanglingAsTrailing is called once a statement list's closing token
// (EOF for Program, `}` for a block) has been consumed: any comment still
// pending at that point sits between the last statement and the close, and
// belongs there as that statement's trailing comment rather than as the
// container's own InnerComments — matching spec.md §4.I's explicit carve-
// out that a Program with a non-empty body never carries comments directly
// (they sit on child statements instead).
func (s *State) flushDanglingAsTrailing(last ast.Node) {
	if last == nil || len(s.pendingComments) == 0 {
		return
	}
	b := last.Base()
	b.TrailingComments = append(b.TrailingComments, s.pendingComments...)
	s.pendingComments = nil
}
