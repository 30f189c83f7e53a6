// Package typescript is the TypeScript dialect plug-in (spec.md §4.J). Like
// internal/dialect/flow, it recognizes declaration-level type syntax
// (`interface`, `type`, `enum`, and a leading `declare`) and captures type
// bodies as raw source text rather than a parsed type-expression tree —
// spec.md §1's "enough to exercise the hook-override architecture" scope,
// not a type-checker front end. typescript and flow are mutually exclusive
// (internal/parser/plugins.go composeHooks), so there's no risk of the two
// plug-ins fighting over the same keywords.
package typescript

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/token"
)

func init() {
	parser.RegisterPlugin("typescript", func(h *parser.Hooks) {
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
				case token.KwEnum:
					return parseEnumDeclaration(s)
				case token.KwDeclare:
					return parseDeclare(s)
				}
			}
			if prevStmt != nil {
				return prevStmt(s)
			}
			return nil
		}
	})
}

func skipTypeParameters(s *parser.State) {
	if s.Cur().Type != token.Relational || s.Cur().Value != "<" {
		return
	}
	s.Next()
	s.ScanRawSpan("")
	s.Next()
}

func rawTypeNode(s *parser.State, start, end int) *ast.TSTypeAnnotation {
	raw := s.SourceText(start, end)
	ref := &ast.TSTypeReference{
		BaseNode: ast.BaseNode{Type_: "TSTypeReference", Start_: start, End_: end,
			Loc_: &ast.SourceLocation{Start: s.PosFor(start), End: s.PosFor(end)}},
		TypeName: &ast.Identifier{
			BaseNode: ast.BaseNode{Type_: "Identifier", Start_: start, End_: end,
				Loc_: &ast.SourceLocation{Start: s.PosFor(start), End: s.PosFor(end)}},
			Name: raw,
		},
	}
	return &ast.TSTypeAnnotation{
		BaseNode: ast.BaseNode{Type_: "TSTypeAnnotation", Start_: start, End_: end,
			Loc_: &ast.SourceLocation{Start: s.PosFor(start), End: s.PosFor(end)}},
		TypeAnnotation: ref,
	}
}

func parseTypeAlias(s *parser.State) ast.Statement {
	start := s.StartNode()
	s.Next() // consume 'type'
	id := s.ParseIdentifier()
	skipTypeParameters(s)
	s.Expect(token.Eq)
	_, rStart, rEnd := s.ScanRawSpan(";\n")
	s.Semicolon()
	n := &ast.TSTypeAliasDeclaration{BaseNode: start, ID: id, TypeAnnotation: rawTypeNode(s, rStart, rEnd)}
	s.FinishNode(&n.BaseNode, "TSTypeAliasDeclaration")
	return n
}

func parseInterfaceDeclaration(s *parser.State) ast.Statement {
	start := s.StartNode()
	s.Next() // consume 'interface'
	id := s.ParseIdentifier()
	skipTypeParameters(s)
	if s.Cur().Type == token.Extends {
		s.Next()
		s.ParseIdentifier()
		skipTypeParameters(s)
	}
	s.Expect(token.BraceL)
	_, bStart, bEnd := s.ScanRawSpan("")
	s.Expect(token.BraceR)
	n := &ast.TSInterfaceDeclaration{BaseNode: start, ID: id, Body: rawTypeNode(s, bStart, bEnd)}
	s.FinishNode(&n.BaseNode, "TSInterfaceDeclaration")
	return n
}

func parseEnumDeclaration(s *parser.State) ast.Statement {
	start := s.StartNode()
	s.Next() // consume 'enum'
	id := s.ParseIdentifier()
	s.Expect(token.BraceL)
	var members []ast.Node
	for s.Cur().Type != token.BraceR {
		mStart := s.StartNode()
		name := s.IdentLikeName() // already advances past the member name token
		memberID := &ast.Identifier{BaseNode: mStart, Name: name}
		s.FinishNode(&memberID.BaseNode, "Identifier")
		var init ast.Expression
		if s.Cur().Type == token.Eq {
			s.Next()
			init = s.ParseMaybeAssign(false)
		}
		prop := &ast.ClassProperty{BaseNode: memberID.BaseNode, Key: memberID, Value: init}
		members = append(members, prop)
		if s.Cur().Type == token.Comma {
			s.Next()
		} else {
			break
		}
	}
	s.Expect(token.BraceR)
	n := &ast.TSEnumDeclaration{BaseNode: start, ID: id, Members: members}
	s.FinishNode(&n.BaseNode, "TSEnumDeclaration")
	return n
}

// parseDeclare handles `declare <statement>` by parsing and discarding the
// `declare` keyword and delegating to the ordinary statement grammar for
// whatever follows (ambient declarations carry no runtime semantics this
// core would otherwise need to model; spec.md's Non-goals exclude a type
// checker, and ambient-ness is a type-checker concern).
func parseDeclare(s *parser.State) ast.Statement {
	if s.PeekToken().Type != token.Name && s.PeekToken().Type != token.Function && s.PeekToken().Type != token.Class {
		return nil // not a declare statement; let the core handle `declare` as a plain identifier
	}
	s.Next() // consume 'declare'
	return s.ParseStatementForDialect()
}
