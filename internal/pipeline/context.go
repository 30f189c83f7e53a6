package pipeline

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/parser"
)

// Context carries one parse attempt's input and accumulated output through
// the pipeline's stages. Grounded on the teacher's PipelineContext (same
// source-plus-accumulated-results shape), narrowed to what a parser-only
// core produces: no symbol table, no type map, no module loader, since
// those belong to funxy's analyzer/evaluator stages and have no equivalent
// here (see DESIGN.md "What was deleted from the teacher").
type Context struct {
	Source  string
	Options *parser.Options

	Program    *ast.File
	Expression ast.Expression
	Err        *diagnostics.Error
}

// NewContext mirrors the teacher's NewPipelineContext constructor.
func NewContext(source string, opts *parser.Options) *Context {
	return &Context{Source: source, Options: opts}
}
