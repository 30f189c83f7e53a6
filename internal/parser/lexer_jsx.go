package parser

// Raw JSX child-text scanning (component C's override mechanism, declared
// in context.go but only ever exercised by the jsx dialect plug-in). JSX
// text is not ECMAScript token grammar: it runs up to the next `<`, `{`, or
// `}`, including whitespace and punctuation a normal readToken pass would
// choke on or misinterpret, so it needs its own scan rather than reuse of
// readWord/readPunctuation.

import "github.com/funvibe/ecmaparse/internal/token"

var ccJSXChild = &tokContext{kind: ctxJSXChild, preserveSpace: true, override: readJSXText}

// readJSXText implements tokContext.override for ccJSXChild. It declines
// (returns handled=false) when the very next byte is already a delimiter,
// letting normal tokenization produce the `<`/`{`/`}` token the jsx plug-in
// is waiting for.
func readJSXText(s *State) (token.Token, bool) {
	start := s.pos
	startPos := token.Position{Line: s.line, Column: s.pos - s.lineStart}
	for s.pos < len(s.input) {
		b := s.input[s.pos]
		if b == '<' || b == '{' || b == '}' {
			break
		}
		if b == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
		s.pos++
	}
	if s.pos == start {
		return token.Token{}, false
	}
	return s.finishToken(token.JSXText, s.input[start:s.pos], start, startPos, false), true
}

// PushJSXChildContext switches the lexer into raw-text mode for JSX
// children; the caller must PopCtx() before reading the closing `<`.
func (s *State) PushJSXChildContext() { s.pushCtx(ccJSXChild) }

// PopCtx removes the innermost lexer context, for plug-ins that push their
// own (e.g. PushJSXChildContext).
func (s *State) PopCtx() { s.popCtx() }

// JSXTextTokenType is the token.Type a plug-in checks for after
// PushJSXChildContext + Next.
const JSXTextTokenType = token.JSXText
