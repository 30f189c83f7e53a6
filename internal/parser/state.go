package parser

import (
	"fmt"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

// Options mirrors spec.md §6's Options table. Zero value is Acorn-ish
// defaults: sourceType "script", no dialect plug-ins, no token/range capture.
type Options struct {
	SourceType     string // "script" | "module"
	SourceFilename string
	Tokens         bool // capture every token into File.Tokens
	Ranges         bool // populate BaseNode.Range_
	Plugins        []string

	// StartLine is the initial line counter; defaults to 1. Lets callers
	// embedding a source fragment report diagnostics with the fragment's
	// position in its containing file.
	StartLine int

	// AllowReturnOutsideFunction permits a top-level `return`.
	AllowReturnOutsideFunction bool

	// AllowImportExportEverywhere permits import/export declarations
	// anywhere a statement is allowed, not just at the top level of the
	// program or a module block.
	AllowImportExportEverywhere bool

	// AllowSuperOutsideMethod permits `super` outside a method body.
	AllowSuperOutsideMethod bool

	// StrictMode, when non-nil, forces the initial strict-mode flag,
	// overriding the sourceType-derived default (sourceType "module" is
	// always strict; "script" is sloppy unless StrictMode says otherwise).
	StrictMode *bool
}

// Hooks is component J's dialect override table: a dialect plug-in replaces
// any subset of these function pointers (nil means "use the core behavior").
// Grounded on mcgru-funxy's own habit of wiring optional behavior through a
// struct of function fields populated from config (internal/parser.New's
// prefixParseFns/infixParseFns registration), generalized here from a flat
// token-type-keyed map to a small fixed struct because spec.md §4.J's hook
// set is closed and known in advance, unlike funxy's open-ended operator
// table.
type Hooks struct {
	ParsePrimary     func(s *State) ast.Expression
	ParseStatement   func(s *State) ast.Statement
	ParseClassMember func(s *State, body *[]ast.Node, decorators []*ast.Decorator) bool
	ParseIdentName   func(s *State) bool // not called anywhere by the core parser

	// Finish runs once, after the whole File is assembled, letting a
	// plug-in rewrite the tree's shape rather than intercept a single
	// production (the estree plug-in's registration uses this; none of the other three
	// do, since JSX/Flow/TypeScript add new node kinds instead of
	// reshaping existing ones).
	Finish func(s *State, f *ast.File)
}

// State is the fused lexer+parser state (components D and E/F/G combined
// into one mutable struct, per DESIGN.md's fold-in rationale). A single
// State is used for exactly one Parse call; Clone supports the speculative
// parsing spec.md §4.E requires (arrow-vs-paren and async-arrow, resolved
// by try-then-rollback rather than unbounded lookahead).
type State struct {
	input   string
	opts    *Options
	plugins map[string]bool

	// Scanner position.
	pos     int
	line    int
	lineStart int

	// Token-context stack (component C).
	ctxStack    []*tokContext
	exprAllowed bool

	// stmtExprAllowed is not read or set anywhere in the parser.
	stmtExprAllowed bool

	// Current and lookahead token (one token of lookahead only; spec.md
	// §1 "one token of lookahead" budget).
	cur  token.Token
	peek *token.Token // nil until peekToken is called; invalidated by next()

	lastTokEnd      int
	lastTokEndLoc   token.Position

	// Grammar flags (spec.md §3 State fields).
	strict            bool
	inFunction        bool
	inGenerator       bool
	inAsync           bool
	inMethod          bool
	inClassProperty   bool
	inPropertyName    bool
	inType            bool
	classDepth        int
	blockDepth        int // depth of block/function bodies; 0 is top level (import/export nesting check)
	labels            []labelInfo
	decoratorStack    [][]*ast.Decorator

	// Comment attachment (component I).
	comments        []*ast.Comment   // every comment, in source order (spec.md §3 File.comments)
	pendingComments []*ast.Comment  // scanned, not yet attached to any node's Leading/Trailing/Inner field
	commentStack    []*ast.BaseNode // finished nodes not yet subsumed by an enclosing node (spec.md §4.I)

	// Collected tokens, when Options.Tokens is set.
	allTokens []token.Token

	// Module bookkeeping (component H / G export checks).
	exportedNames map[string]bool

	// Error-tolerance bookkeeping (spec.md §4.D: legacy-octal detection is
	// deferred until we know whether the surrounding code is strict).
	octalPos        int // -1 if none seen since last reset
	octalMessage    string
	invalidTemplateEscapePos int

	hooks Hooks
}

type labelInfo struct {
	name     string
	kind     string // "loop" | "switch" | ""
	statementStart int
}

// findLabel returns the innermost active label record named name, or nil.
func (s *State) findLabel(name string) *labelInfo {
	for i := len(s.labels) - 1; i >= 0; i-- {
		if s.labels[i].name == name {
			return &s.labels[i]
		}
	}
	return nil
}

// hasEnclosingLoop reports whether a bare `continue;` is legal here: it
// requires an enclosing iteration statement, not merely a switch.
func (s *State) hasEnclosingLoop() bool {
	for _, l := range s.labels {
		if l.kind == "loop" {
			return true
		}
	}
	return false
}

// New creates a State ready to parse src under opts (nil means defaults).
func New(src string, opts *Options) *State {
	if opts == nil {
		opts = &Options{}
	}
	if opts.SourceType == "" {
		opts.SourceType = "script"
	}
	startLine := opts.StartLine
	if startLine == 0 {
		startLine = 1
	}
	s := &State{
		input:         src,
		opts:          opts,
		plugins:       pluginSet(opts.Plugins),
		line:          startLine,
		exprAllowed:   true,
		octalPos:      -1,
		exportedNames: map[string]bool{},
	}
	s.strict = opts.SourceType == "module"
	if opts.StrictMode != nil {
		s.strict = *opts.StrictMode
	}
	s.hooks = composeHooksChecked(s.plugins)
	return s
}

// composeHooksChecked wraps composeHooks so a plugin conflict surfaces as
// the same *diagnostics.Error panic every other parse failure uses, instead
// of a package-private conflictPanic the caller couldn't recover.
func composeHooksChecked(requested map[string]bool) Hooks {
	defer func() {
		if r := recover(); r != nil {
			if cp, ok := r.(conflictPanic); ok {
				panic(diagnostics.New(diagnostics.KindPlugin, diagnostics.ErrConflictingPlugins, 0, token.Position{Line: 1, Column: 0}, cp.a, cp.b))
			}
			if mp, ok := r.(missingPluginPanic); ok {
				panic(diagnostics.New(diagnostics.KindPlugin, diagnostics.ErrMissingPlugin, 0, token.Position{Line: 1, Column: 0}, mp.name))
			}
			panic(r)
		}
	}()
	return composeHooks(requested)
}

func pluginSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func (s *State) hasPlugin(name string) bool { return s.plugins[name] }

func (s *State) curType() token.Type { return s.cur.Type }

// raise constructs and panics with a *diagnostics.Error; Parse recovers it
// at the top level (spec.md §7: "parsing stops at the first error").
func (s *State) raise(pos int, kind diagnostics.Kind, code diagnostics.Code, args ...interface{}) {
	panic(diagnostics.New(kind, code, pos, s.posAt(pos), args...))
}

func (s *State) raiseAt(loc token.Position, pos int, kind diagnostics.Kind, code diagnostics.Code, args ...interface{}) {
	panic(diagnostics.New(kind, code, pos, loc, args...))
}

// posAt recomputes a line/column for an arbitrary byte offset by scanning
// from the start. Used on the (rare) error path and by PosFor, which the
// flow and typescript plug-ins call for each raw-text type node, so an O(n)
// scan here is an acceptable trade against tracking a line index during
// normal scanning (spec.md §9 performance note).
func (s *State) posAt(pos int) token.Position {
	line := 1
	if s.opts.StartLine != 0 {
		line = s.opts.StartLine
	}
	col := 0
	for i := 0; i < pos && i < len(s.input); i++ {
		if s.input[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return token.Position{Line: line, Column: col}
}

// Clone returns a deep-enough copy of s for speculative parsing (spec.md
// §4.E): scanner position, token state, and context stack are copied so the
// clone can be thrown away on failure and the original resumed unaffected.
// skipArrays, when true, avoids copying the accumulated comments/tokens
// slices (only needed when the caller intends to commit the clone's result
// back, which copies those itself).
func (s *State) Clone(skipArrays bool) *State {
	c := *s
	c.ctxStack = append([]*tokContext(nil), s.ctxStack...)
	c.labels = append([]labelInfo(nil), s.labels...)
	if !skipArrays {
		c.comments = append([]*ast.Comment(nil), s.comments...)
		c.allTokens = append([]token.Token(nil), s.allTokens...)
	} else {
		c.comments = nil
		c.allTokens = nil
	}
	c.pendingComments = append([]*ast.Comment(nil), s.pendingComments...)
	c.commentStack = append([]*ast.BaseNode(nil), s.commentStack...)
	c.exportedNames = make(map[string]bool, len(s.exportedNames))
	for k, v := range s.exportedNames {
		c.exportedNames[k] = v
	}
	return &c
}

// tryParse runs fn against a clone of s; if fn panics with a *diagnostics.
// Error, tryParse recovers it and returns (nil, err) leaving s completely
// untouched. On success it copies the clone's state back into s and returns
// (result, nil). Its only call site is tryParseArrow (arrow-vs-paren and
// async-arrow); no dialect plug-in parses speculatively.
func (s *State) tryParse(fn func(c *State) interface{}) (result interface{}, err *diagnostics.Error) {
	clone := s.Clone(false)
	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*diagnostics.Error); ok {
				err = de
				return
			}
			panic(r)
		}
	}()
	result = fn(clone)
	*s = *clone
	return result, nil
}

// FinishFile wraps a parsed Program into the File node the public API
// returns, attaching the accumulated comment and token lists (spec.md §3).
func (s *State) FinishFile(program *ast.Program) *ast.File {
	f := &ast.File{
		BaseNode: ast.BaseNode{
			Type_:  "File",
			Start_: program.Start_,
			End_:   program.End_,
			Loc_:   program.Loc_,
		},
		Program:  program,
		Comments: s.comments,
	}
	if s.opts.Tokens {
		f.Tokens = s.allTokens
	}
	if s.hooks.Finish != nil {
		s.hooks.Finish(s, f)
	}
	return f
}

// ParseExpressionOnly parses a single expression and requires the input be
// fully consumed afterward, for callers embedding a standalone expression
// snippet rather than a full program (e.g. ParseExpression).
func (s *State) ParseExpressionOnly() ast.Expression {
	s.next()
	expr := s.parseExpression(false)
	if s.cur.Type != token.EOF {
		s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, "end of input", s.cur.Type)
	}
	return expr
}

func (s *State) String() string {
	return fmt.Sprintf("State{pos=%d line=%d cur=%s}", s.pos, s.line, s.cur)
}
