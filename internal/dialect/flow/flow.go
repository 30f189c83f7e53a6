// Package flow is the Flow type-annotation dialect plug-in (spec.md §4.J).
// It recognizes `type Foo = ...;` and `interface Foo { ... }` at statement
// position and captures the right-hand type/interface body as raw source
// text (ast.FlowTypeAnnotation.Raw) rather than building a full type-
// expression tree — spec.md §1 scopes Flow/TypeScript support to "enough to
// exercise the hook-override architecture", not a type-checker front end.
//
// Grounded on mcgru-funxy's plug-in registration pattern, same as
// internal/dialect/jsx; the statement-level dispatch follows the core's own
// parseStatement keyword switch (internal/parser/statements.go) generalized
// to two more leading contextual keywords.
package flow

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/token"
)

func init() {
	parser.RegisterPlugin("flow", func(h *parser.Hooks) {
		prevStmt := h.ParseStatement
		h.ParseStatement = func(s *parser.State) ast.Statement {
			if s.Cur().Type == token.Name {
				switch s.Cur().Value {
				case token.KwType:
					if s.PeekToken().Type == token.Name {
						return parseTypeAlias(s)
					}
				case token.KwInterface:
					return parseInterfaceDeclaration(s)
				}
			}
			if prevStmt != nil {
				return prevStmt(s)
			}
			return nil
		}
	})
}

// skipTypeParameters consumes an optional `<...>` type-parameter list,
// discarding its text (spec.md's Flow scope doesn't model type parameters
// individually).
func skipTypeParameters(s *parser.State) {
	if s.Cur().Type != token.Relational || s.Cur().Value != "<" {
		return
	}
	s.Next() // consume '<'
	s.ScanRawSpan("")
	s.Next() // consume '>'
}

func parseTypeAlias(s *parser.State) ast.Statement {
	start := s.StartNode()
	s.Next() // consume 'type'
	id := s.ParseIdentifier()
	skipTypeParameters(s)
	s.Expect(token.Eq)
	raw, rStart, rEnd := s.ScanRawSpan(";\n")
	right := &ast.FlowTypeAnnotation{
		BaseNode: ast.BaseNode{Type_: "FlowTypeAnnotation", Start_: rStart, End_: rEnd,
			Loc_: &ast.SourceLocation{Start: s.PosFor(rStart), End: s.PosFor(rEnd)}},
		Raw: raw,
	}
	s.Semicolon()
	n := &ast.TypeAlias{BaseNode: start, ID: id, Right: right}
	s.FinishNode(&n.BaseNode, "TypeAlias")
	return n
}

func parseInterfaceDeclaration(s *parser.State) ast.Statement {
	start := s.StartNode()
	s.Next() // consume 'interface'
	id := s.ParseIdentifier()
	skipTypeParameters(s)
	if s.Cur().Type == token.Extends {
		// `extends Other` clause: discard, same Raw-capture scope as the body.
		s.Next()
		s.ParseIdentifier()
		skipTypeParameters(s)
	}
	s.Expect(token.BraceL)
	raw, bStart, bEnd := s.ScanRawSpan("")
	s.Expect(token.BraceR)
	body := &ast.FlowTypeAnnotation{
		BaseNode: ast.BaseNode{Type_: "FlowTypeAnnotation", Start_: bStart, End_: bEnd,
			Loc_: &ast.SourceLocation{Start: s.PosFor(bStart), End: s.PosFor(bEnd)}},
		Raw: raw,
	}
	n := &ast.InterfaceDeclaration{BaseNode: start, ID: id, Body: body}
	s.FinishNode(&n.BaseNode, "InterfaceDeclaration")
	return n
}
