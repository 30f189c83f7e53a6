// Package ecmaparse parses ECMAScript source text into a Babel-shaped AST.
// It implements only the parsing stage: lexing, grammar, and the lval/
// duplicate-export static checks a parser naturally performs while
// building the tree. It does not type-check, transform, execute, or
// otherwise interpret what the tree means.
package ecmaparse

import (
	"fmt"
	"strings"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/pipeline"

	// Dialect plug-ins self-register with internal/parser via their init()
	// (see internal/parser/plugins.go's RegisterPlugin); importing them for
	// side effect here is what makes Options.Plugins names resolvable.
	_ "github.com/funvibe/ecmaparse/internal/dialect/estree"
	_ "github.com/funvibe/ecmaparse/internal/dialect/flow"
	_ "github.com/funvibe/ecmaparse/internal/dialect/jsx"
	_ "github.com/funvibe/ecmaparse/internal/dialect/typescript"
)

// Options configures a Parse/ParseExpression call. The zero value parses a
// script (not a module) with no dialect plug-ins and no token/range capture.
type Options struct {
	// SourceType is "script" or "module". A module is always strict and may
	// contain import/export declarations; a script is sloppy by default
	// and rejects them.
	SourceType string

	// SourceFilename, if non-empty, is copied onto every node's
	// SourceLocation for tools that need to report a file name.
	SourceFilename string

	// Plugins lists dialect plug-ins to enable: any of "jsx", "flow",
	// "typescript", "estree". "flow" and "typescript" are mutually
	// exclusive (spec.md §4.J).
	Plugins []string

	// Tokens, when true, populates File.Tokens with every token scanned.
	Tokens bool

	// Ranges, when true, populates each node's Range_ field in addition to
	// Start/End.
	Ranges bool

	// StartLine is the initial line counter reported in diagnostics and
	// node locations; defaults to 1.
	StartLine int

	// AllowReturnOutsideFunction permits a top-level `return` statement.
	AllowReturnOutsideFunction bool

	// AllowImportExportEverywhere permits import/export declarations in a
	// script, and nested inside a block, function, or other statement
	// rather than only at the top level of the program.
	AllowImportExportEverywhere bool

	// AllowSuperOutsideMethod permits `super` outside a method body.
	AllowSuperOutsideMethod bool

	// StrictMode, when non-nil, forces the initial strict-mode flag,
	// overriding the default derived from SourceType.
	StrictMode *bool
}

func (o *Options) toParserOptions() *parser.Options {
	if o == nil {
		return &parser.Options{SourceType: "script"}
	}
	st := o.SourceType
	if st == "" {
		st = "script"
	}
	return &parser.Options{
		SourceType:                  st,
		SourceFilename:              o.SourceFilename,
		Plugins:                     o.Plugins,
		Tokens:                      o.Tokens,
		Ranges:                      o.Ranges,
		StartLine:                   o.StartLine,
		AllowReturnOutsideFunction:  o.AllowReturnOutsideFunction,
		AllowImportExportEverywhere: o.AllowImportExportEverywhere,
		AllowSuperOutsideMethod:     o.AllowSuperOutsideMethod,
		StrictMode:                  o.StrictMode,
	}
}

// Error wraps a *diagnostics.Error for callers outside internal/, carrying
// its own Error() string in the "<message> (<line>:<column>)" shape spec.md
// §7 specifies.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Line, e.Column)
}

func wrapDiagnostic(d *diagnostics.Error) *Error {
	msg := strings.TrimSuffix(d.Error(), fmt.Sprintf(" (%d:%d)", d.Loc.Line, d.Loc.Column))
	return &Error{Message: msg, Line: d.Loc.Line, Column: d.Loc.Column}
}

// Parse parses a full program. Parsing stops at the first syntax error
// (spec.md §1 non-goal: no error recovery).
func Parse(src string, opts *Options) (*ast.File, error) {
	ctx := pipeline.NewContext(src, opts.toParserOptions())
	ctx = pipeline.New(pipeline.ProgramStage{}).Run(ctx)
	if ctx.Err != nil {
		return nil, wrapDiagnostic(ctx.Err)
	}
	return ctx.Program, nil
}

// ParseExpression parses a single expression, useful for tools that embed
// small snippets (e.g. template literal substitution inputs) rather than a
// full program.
func ParseExpression(src string, opts *Options) (ast.Expression, error) {
	ctx := pipeline.NewContext(src, opts.toParserOptions())
	ctx = pipeline.New(pipeline.ExpressionStage{}).Run(ctx)
	if ctx.Err != nil {
		return nil, wrapDiagnostic(ctx.Err)
	}
	return ctx.Expression, nil
}
