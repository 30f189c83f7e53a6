package parser

// Component D: the tokenizer, fused onto *State (see state.go/DESIGN.md).
// Grounded on mcgru-funxy's internal/lexer.Lexer.NextToken — a giant switch
// on the current byte with peekChar-driven micro-state-machines for
// multi-char operators — generalized from funxy's byte-oriented ASCII input
// to full UTF-8 (charclass.DecodeRune) because spec.md §4.D requires Unicode
// identifiers and line terminators the teacher's lexer never had to decode.

import (
	"strings"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/charclass"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) eof() bool { return s.pos >= len(s.input) }

func (s *State) curByte() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *State) byteAt(off int) byte {
	p := s.pos + off
	if p >= len(s.input) {
		return 0
	}
	return s.input[p]
}

// next advances the state machine past the current token, producing a new
// s.cur. prevType is captured before the scan so updateCtx can compare
// against it.
func (s *State) next() {
	prevType := s.cur.Type
	s.lastTokEnd = s.cur.End
	s.lastTokEndLoc = s.cur.EndPos
	s.peek = nil
	s.cur = s.readToken()
	if s.opts.Tokens {
		s.allTokens = append(s.allTokens, s.cur)
	}
	s.updateCtx(prevType)
}

// peekToken returns (without consuming) the token after the current one,
// caching it so a second call doesn't re-scan (spec.md's one-token budget).
func (s *State) peekToken() token.Token {
	if s.peek != nil {
		return *s.peek
	}
	saved := *s
	savedCtx := append([]*tokContext(nil), s.ctxStack...)
	tok := s.readToken()
	*s = saved
	s.ctxStack = savedCtx
	s.peek = &tok
	return tok
}

// readToken scans exactly one token starting at s.pos, honoring whatever
// the current tokContext requires (preserveSpace skips the usual
// whitespace pass for template-literal text).
func (s *State) readToken() token.Token {
	if ov := s.curCtx().override; ov != nil {
		if tok, handled := ov(s); handled {
			return tok
		}
	}
	if !s.curCtx().preserveSpace {
		s.skipSpaceAndComments()
	}
	start := s.pos
	startPos := token.Position{Line: s.line, Column: s.pos - s.lineStart}
	newlineBefore := s.sawNewlineSinceLastToken(start)

	if s.eof() {
		return s.finishToken(token.EOF, nil, start, startPos, newlineBefore)
	}

	if s.inTemplate() {
		return s.readTemplateToken(start, startPos, newlineBefore)
	}

	r, w := charclass.DecodeRune(s.input, s.pos)

	switch {
	case r == '"' || r == '\'':
		return s.readString(byte(r), start, startPos, newlineBefore)
	case r == '`':
		s.pos += w
		return s.finishToken(token.BackQuote, nil, start, startPos, newlineBefore)
	case r >= '0' && r <= '9':
		return s.readNumber(start, startPos, newlineBefore)
	case r == '.' && s.byteAt(1) >= '0' && s.byteAt(1) <= '9':
		return s.readNumber(start, startPos, newlineBefore)
	case charclass.IsIdentifierStart(r) || r == '\\':
		return s.readWord(start, startPos, newlineBefore)
	case r == '#':
		return s.readPrivateName(start, startPos, newlineBefore)
	default:
		return s.readPunctuation(r, w, start, startPos, newlineBefore)
	}
}

func (s *State) sawNewlineSinceLastToken(start int) bool {
	for i := s.lastTokEnd; i < start && i < len(s.input); i++ {
		c := s.input[i]
		if c == '\n' || c == '\r' {
			return true
		}
	}
	return false
}

func (s *State) finishToken(t token.Type, value interface{}, start int, startPos token.Position, newlineBefore bool) token.Token {
	return token.Token{
		Type: t, Value: value,
		Start: start, End: s.pos,
		StartPos: startPos,
		EndPos:   token.Position{Line: s.line, Column: s.pos - s.lineStart},
		NewlineBefore: newlineBefore,
	}
}

// skipSpaceAndComments advances past whitespace, line terminators, and both
// comment forms, recording each comment into s.comments for the
// comment-attachment algorithm (component I).
func (s *State) skipSpaceAndComments() {
	for !s.eof() {
		r, w := charclass.DecodeRune(s.input, s.pos)
		switch {
		case r == '\n':
			s.pos++
			s.line++
			s.lineStart = s.pos
		case r == '\r':
			s.pos++
			if s.curByte() == '\n' {
				s.pos++
			}
			s.line++
			s.lineStart = s.pos
		case charclass.IsNewLine(r):
			s.pos += w
			s.line++
			s.lineStart = s.pos
		case charclass.IsWhitespace(r):
			s.pos += w
		case r == '/' && s.byteAt(1) == '/':
			s.skipLineComment(2)
		case r == '/' && s.byteAt(1) == '*':
			s.skipBlockComment()
		default:
			return
		}
	}
}

func (s *State) skipLineComment(startSkip int) {
	start := s.pos
	startPos := token.Position{Line: s.line, Column: s.pos - s.lineStart}
	s.pos += startSkip
	for !s.eof() {
		r, w := charclass.DecodeRune(s.input, s.pos)
		if r == '\n' || r == '\r' || charclass.IsNewLine(r) {
			break
		}
		s.pos += w
	}
	endPos := token.Position{Line: s.line, Column: s.pos - s.lineStart}
	s.recordComment(ast.CommentLine, start, s.pos, startPos, endPos)
}

func (s *State) skipBlockComment() {
	start := s.pos
	startPos := token.Position{Line: s.line, Column: s.pos - s.lineStart}
	s.pos += 2
	closed := false
	for !s.eof() {
		if s.curByte() == '*' && s.byteAt(1) == '/' {
			s.pos += 2
			closed = true
			break
		}
		r, w := charclass.DecodeRune(s.input, s.pos)
		if r == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
		s.pos += w
	}
	if !closed {
		s.raise(start, diagnostics.KindLex, diagnostics.ErrUnterminatedComment)
	}
	endPos := token.Position{Line: s.line, Column: s.pos - s.lineStart}
	s.recordComment(ast.CommentBlock, start, s.pos, startPos, endPos)
}

func (s *State) readPrivateName(start int, startPos token.Position, newlineBefore bool) token.Token {
	s.pos++ // '#'
	nameStart := s.pos
	for !s.eof() {
		r, w := charclass.DecodeRune(s.input, s.pos)
		if !charclass.IsIdentifierChar(r) {
			break
		}
		s.pos += w
	}
	name := s.input[nameStart:s.pos]
	return s.finishToken(token.PrivateName, name, start, startPos, newlineBefore)
}

func (s *State) readWord(start int, startPos token.Position, newlineBefore bool) token.Token {
	var b strings.Builder
	for !s.eof() {
		if s.curByte() == '\\' && s.byteAt(1) == 'u' {
			escStart := s.pos
			r := s.readUnicodeEscapeInIdent(start)
			if (b.Len() == 0 && !charclass.IsIdentifierStart(r)) || (b.Len() > 0 && !charclass.IsIdentifierChar(r)) {
				s.raise(escStart, diagnostics.KindLex, diagnostics.ErrInvalidEscape)
			}
			b.WriteRune(r)
			continue
		}
		r, w := charclass.DecodeRune(s.input, s.pos)
		if b.Len() == 0 {
			if !charclass.IsIdentifierStart(r) {
				break
			}
		} else if !charclass.IsIdentifierChar(r) {
			break
		}
		b.WriteRune(r)
		s.pos += w
	}
	word := b.String()
	if kwType, ok := token.LookupKeyword(word); ok {
		return s.finishToken(kwType, word, start, startPos, newlineBefore)
	}
	return s.finishToken(token.Name, word, start, startPos, newlineBefore)
}

// readUnicodeEscapeInIdent handles `\uXXXX` / `\u{X...}` inside an
// identifier (spec.md §4.D). The escaped code point must itself be a legal
// identifier character; this function only decodes, and readWord checks
// the result against the identifier-start/continue classes.
func (s *State) readUnicodeEscapeInIdent(tokenStart int) rune {
	escStart := s.pos
	s.pos += 2 // \u
	if s.curByte() == '{' {
		s.pos++
		digitsStart := s.pos
		for s.curByte() != '}' && !s.eof() {
			s.pos++
		}
		hex := s.input[digitsStart:s.pos]
		if s.eof() {
			s.raise(escStart, diagnostics.KindLex, diagnostics.ErrInvalidEscape)
		}
		s.pos++ // }
		return parseHexRune(hex, s, escStart)
	}
	if s.pos+4 > len(s.input) {
		s.raise(escStart, diagnostics.KindLex, diagnostics.ErrInvalidEscape)
	}
	hex := s.input[s.pos : s.pos+4]
	s.pos += 4
	return parseHexRune(hex, s, escStart)
}

func parseHexRune(hex string, s *State, errPos int) rune {
	var v int64
	for _, c := range hex {
		d := hexDigit(byte(c))
		if d < 0 {
			s.raise(errPos, diagnostics.KindLex, diagnostics.ErrInvalidEscape)
		}
		v = v*16 + int64(d)
	}
	return rune(v)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func (s *State) recordComment(kind ast.CommentKind, start, end int, startPos, endPos token.Position) {
	c := &ast.Comment{
		BaseNode: ast.BaseNode{
			Type_:  string(kind),
			Start_: start,
			End_:   end,
			Loc_:   &ast.SourceLocation{Start: startPos, End: endPos},
		},
		Kind: kind,
		Text: s.commentText(kind, start, end),
	}
	s.comments = append(s.comments, c)
	s.pendingComments = append(s.pendingComments, c)
}

func (s *State) commentText(kind ast.CommentKind, start, end int) string {
	if kind == ast.CommentLine {
		return s.input[start+2 : end]
	}
	text := s.input[start+2 : end]
	return strings.TrimSuffix(text, "*/")
}
