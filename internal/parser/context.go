// Package parser fuses the lexer and grammar into a single recursive-descent
// Pratt parser operating on one State (see state.go). This file implements
// component C: the TokContext stack that disambiguates tokens whose meaning
// depends on where the parser currently sits in the grammar.
//
// Grounded on acorn/Babel's tokContext design (known to the pack only via
// spec.md's own description of it, since none of the example repos lexes a
// context-sensitive grammar); the *shape* of the solution — a stack of named
// contexts, each able to override how `{`, a template boundary, or a JSX
// angle bracket is read — follows mcgru-funxy's habit of modeling lexer
// behavior as small per-kind structs looked up from a table
// (internal/token.Kind is the closest teacher analogue), adapted here to a
// runtime stack instead of a static table because context is a function of
// parse state, not of token type alone.
package parser

import "github.com/funvibe/ecmaparse/internal/token"

// ctxKind names one entry on the context stack (spec.md §4.C).
type ctxKind string

const (
	ctxBraceStatement ctxKind = "b_stat"
	ctxBraceExpr      ctxKind = "b_expr"
	ctxTemplateQuasi  ctxKind = "q_tmpl"
	ctxParenStatement ctxKind = "p_stat"
	ctxParenExpr      ctxKind = "p_expr"
	ctxFunctionExpr   ctxKind = "f_expr"
	ctxFunctionStat   ctxKind = "f_stat"
	ctxTemplate       ctxKind = "template" // inside ` ... ${ ... } ... `
	ctxJSXOpenTag     ctxKind = "j_oTag"
	ctxJSXCloseTag    ctxKind = "j_cTag"
	ctxJSXExpr        ctxKind = "j_expr"
	ctxJSXChild       ctxKind = "j_child"
)

// tokContext is one stack entry. preserveSpace suppresses the usual
// whitespace-skip inside template literals; override, when set, takes over
// reading the next token entirely (used by the jsx plug-in for text content,
// see dialect/jsx).
type tokContext struct {
	kind          ctxKind
	isExpr        bool
	preserveSpace bool
	// override, when set, takes over reading the very next token entirely;
	// it returns (tok, false) to decline (letting normal tokenization run,
	// e.g. on the `<`/`{`/`}` bytes that end a stretch of JSX text), or
	// (tok, true) to hand back the token it built itself.
	override func(s *State) (token.Token, bool)
}

var (
	ccBraceStatement = &tokContext{kind: ctxBraceStatement}
	ccBraceExpr      = &tokContext{kind: ctxBraceExpr, isExpr: true}
	ccTemplateQuasi  = &tokContext{kind: ctxTemplateQuasi, isExpr: true, preserveSpace: true}
	ccParenStatement = &tokContext{kind: ctxParenStatement}
	ccParenExpr      = &tokContext{kind: ctxParenExpr, isExpr: true}
	ccFunctionExpr   = &tokContext{kind: ctxFunctionExpr, isExpr: true}
	ccFunctionStat   = &tokContext{kind: ctxFunctionStat}
	ccTemplate       = &tokContext{kind: ctxTemplate, preserveSpace: true}
)

// curCtx returns the innermost context, or ccBraceStatement for an empty
// stack (spec.md §4.C: "program starts in brace-statement context").
func (s *State) curCtx() *tokContext {
	if len(s.ctxStack) == 0 {
		return ccBraceStatement
	}
	return s.ctxStack[len(s.ctxStack)-1]
}

func (s *State) pushCtx(c *tokContext) {
	s.ctxStack = append(s.ctxStack, c)
}

func (s *State) popCtx() *tokContext {
	n := len(s.ctxStack)
	if n == 0 {
		return ccBraceStatement
	}
	c := s.ctxStack[n-1]
	s.ctxStack = s.ctxStack[:n-1]
	return c
}

// inTemplate reports whether the innermost context is literal template text
// (as opposed to a `${ }` hole, which pushes ccBraceExpr on top of it).
func (s *State) inTemplate() bool {
	return s.curCtx().kind == ctxTemplate
}

// updateCtx runs immediately after the parser has moved onto a freshly
// lexed token; prevType is the type of the token consulted to produce it.
// It pushes/pops the context stack and recomputes exprAllowed, which the
// lexer reads back to disambiguate `/` (division vs regex start) and
// whether `{`/`` ` `` opens a new nested context (spec.md §4.C contract).
func (s *State) updateCtx(prevType token.Type) {
	cur := s.cur.Type
	switch cur {
	case token.BraceL:
		top := s.curCtx()
		if top.kind == ctxBraceStatement && prevType != token.Colon {
			s.pushCtx(ccBraceStatement)
		} else {
			s.pushCtx(ccBraceExpr)
		}
		s.exprAllowed = true

	case token.BraceR:
		if len(s.ctxStack) == 1 {
			s.exprAllowed = true
			break
		}
		popped := s.popCtx()
		if popped == ccBraceStatement && s.curCtx().kind == ctxFunctionExpr {
			s.popCtx()
			s.exprAllowed = false
		} else if popped == ccBraceExpr {
			s.exprAllowed = false
		} else {
			s.exprAllowed = true
		}

	case token.DollarBraceL:
		s.pushCtx(ccBraceExpr)
		s.exprAllowed = true

	case token.ParenL:
		statementParen := prevType == token.If || prevType == token.For ||
			prevType == token.With || prevType == token.While
		if statementParen {
			s.pushCtx(ccParenStatement)
		} else {
			s.pushCtx(ccParenExpr)
		}
		s.exprAllowed = true

	case token.ParenR:
		popped := s.popCtx()
		s.exprAllowed = !popped.isExpr

	case token.BackQuote:
		if s.inTemplate() {
			s.popCtx()
		} else {
			s.pushCtx(ccTemplate)
		}
		s.exprAllowed = false

	case token.Function:
		if prevType != token.Semi && prevType != token.Else && prevType != token.Colon &&
			prevType != token.BraceL && prevType != token.ParenL && prevType != token.Comma &&
			prevType != token.Return && prevType != token.Ellipsis &&
			s.curCtx().kind != ctxBraceStatement {
			s.pushCtx(ccFunctionExpr)
		} else {
			s.pushCtx(ccFunctionStat)
		}
		s.exprAllowed = false

	default:
		s.exprAllowed = token.KindOf(cur).BeforeExpr
	}
}

// pushFunctionScope is called by the expression/statement parser when
// entering an arrow function's body braces, which updateCtx's token-only
// dispatch cannot distinguish from a block statement on its own.
func (s *State) pushFunctionScope(isExpr bool) {
	if isExpr {
		s.pushCtx(ccFunctionExpr)
	} else {
		s.pushCtx(ccFunctionStat)
	}
}
