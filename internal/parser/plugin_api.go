package parser

// The methods in this file are the State surface a dialect plug-in
// (internal/dialect/*) uses to read the current token, advance the scanner,
// and build nodes through the same start/finish bookkeeping the core parser
// uses; lexer_jsx.go adds the JSX context helpers. Outside these, State
// exports only its entry points (New, ParseProgram, ParseExpressionOnly,
// FinishFile, Clone, String), so a plug-in cannot reach past this seam into
// scanner internals it has no business touching.

import (
	"strings"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

// Cur returns the current token.
func (s *State) Cur() token.Token { return s.cur }

// PeekToken returns the next token without consuming it.
func (s *State) PeekToken() token.Token { return s.peekToken() }

// Next advances the scanner by one token.
func (s *State) Next() { s.next() }

// StartNode begins a node at the current token's position.
func (s *State) StartNode() ast.BaseNode { return s.startNode() }

// FinishNode closes out a node, stamping its end position and node type.
func (s *State) FinishNode(b *ast.BaseNode, typ string) { s.finishNode(b, typ) }

// Expect consumes the current token if it matches t, raising otherwise.
func (s *State) Expect(t token.Type) token.Token { return s.expect(t) }

// Eat consumes the current token and reports true if it matched t.
func (s *State) Eat(t token.Type) bool {
	if s.cur.Type != t {
		return false
	}
	s.next()
	return true
}

// Raise panics with a diagnostics.Error at pos, recovered by the pipeline
// stage driving the parse (internal/pipeline/stages.go), same as every core
// error.
func (s *State) Raise(pos int, kind diagnostics.Kind, code diagnostics.Code, args ...interface{}) {
	s.raise(pos, kind, code, args...)
}

// ParseIdentifier reads a bare identifier (not a keyword).
func (s *State) ParseIdentifier() *ast.Identifier { return s.parseIdentifier() }

// IdentLikeName reads the textual name of the current token, accepting
// keywords used as names (property/contextual-keyword positions).
func (s *State) IdentLikeName() string { return s.identLikeName() }

// ParseMaybeAssign parses one assignment-level expression.
func (s *State) ParseMaybeAssign(noIn bool) ast.Expression { return s.parseMaybeAssign(noIn) }

// ParseExpression parses a full (possibly comma-joined) expression.
func (s *State) ParseExpression(noIn bool) ast.Expression { return s.parseExpression(noIn) }

// ParseExprSubscripts parses a unary-or-higher expression with member/call
// subscripts attached, without consuming a trailing binary operator.
func (s *State) ParseExprSubscripts() ast.Expression { return s.parseExprSubscripts() }

// ParseBlock parses a brace-delimited statement list.
func (s *State) ParseBlock() *ast.BlockStatement { return s.parseBlock() }

// ParseStatementForDialect re-enters the full statement grammar (including
// the composed plug-in hook chain), for a plug-in production that wraps
// another statement (e.g. typescript's `declare <statement>`).
func (s *State) ParseStatementForDialect() ast.Statement { return s.parseStatement() }

// ParseBindingList parses a comma-separated, open/close-delimited list of
// binding patterns (function parameters, destructuring targets).
func (s *State) ParseBindingList(open, close token.Type, allowEmpty bool) []ast.Pattern {
	return s.parseBindingList(open, close, allowEmpty)
}

// Semicolon consumes a statement-terminating semicolon, inserting one per
// ASI rules when ECMAScript allows it.
func (s *State) Semicolon() { s.semicolon() }

// InType reports the type-annotation flag last set by SetInType. Neither the
// core parser nor the bundled plug-ins read or set it.
func (s *State) InType() bool { return s.inType }

// SetInType toggles InType for the duration of a dialect's own type-grammar
// parse, restoring the previous value is the caller's responsibility.
func (s *State) SetInType(v bool) bool {
	prev := s.inType
	s.inType = v
	return prev
}

// SetExprAllowed overrides whether the lexer treats `/` as a regexp start,
// for a plug-in that must force punctuation-mode lexing across a token the
// core's updateCtx doesn't know about (e.g. jsx forcing `/` before a
// closing tag name rather than a regexp literal). Returns the previous
// value so the caller can restore it.
func (s *State) SetExprAllowed(v bool) bool {
	prev := s.exprAllowed
	s.exprAllowed = v
	return prev
}

// SourceText returns the raw input between two byte offsets, for plug-ins
// that need the literal text of a span (e.g. a type annotation's source).
func (s *State) SourceText(start, end int) string { return s.input[start:end] }

// PosFor resolves a byte offset to a line/column, for plug-ins constructing
// node positions outside the normal token stream (e.g. after ScanRawSpan).
func (s *State) PosFor(offset int) token.Position { return s.posAt(offset) }

// ScanRawSpan reads raw source text starting at the current token up to
// (but not including) the first byte in stops that occurs at bracket depth
// zero, or the first closing bracket that has no opener inside the span,
// tracking (), [], {}, and <> nesting so a type like
// `Array<{ a: number }>` isn't cut short by its own inner delimiters. It
// resumes normal tokenization from the stop byte before returning, so the
// caller's next Cur() reflects whatever follows.
//
// This backs the flow and typescript plug-ins' choice (ast/types.go's
// FlowTypeAnnotation.Raw, and typescript's rawTypeNode) to capture a type
// annotation's source text rather than build a full type-expression tree:
// spec.md §1 scopes those dialects to only enough grammar to exercise the
// hook-override architecture, not a complete type-checker front end.
func (s *State) ScanRawSpan(stops string) (text string, start, end int) {
	start = s.cur.Start
	s.pos = start
	s.line = s.cur.StartPos.Line
	s.lineStart = start - s.cur.StartPos.Column
	s.peek = nil
	depth := 0
loop:
	for s.pos < len(s.input) {
		b := s.input[s.pos]
		switch b {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth == 0 {
				break loop
			}
			depth--
		}
		if depth == 0 && strings.IndexByte(stops, b) >= 0 {
			break loop
		}
		if b == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
		s.pos++
	}
	end = s.pos
	text = strings.TrimSpace(s.input[start:end])
	s.next()
	return text, start, end
}
