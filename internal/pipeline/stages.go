package pipeline

import (
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/parser"
)

// ProgramStage runs a full-program parse, the single Processor the public
// Parse entry point drives through a one-stage Pipeline. It exists as its
// own Processor (rather than inline code in parse.go) so a future caller
// can insert further stages ahead of or behind it without touching
// parse.go's public signature, the same seam the teacher's own multi-stage
// Pipeline (lex -> parse -> analyze -> evaluate) provides for funxy.
type ProgramStage struct{}

func (ProgramStage) Process(ctx *Context) (out *Context) {
	out = ctx
	defer func() {
		if r := recover(); r != nil {
			de, ok := r.(*diagnostics.Error)
			if !ok {
				panic(r)
			}
			out.Err = de
		}
	}()
	s := parser.New(ctx.Source, ctx.Options)
	program := s.ParseProgram()
	out.Program = s.FinishFile(program)
	return out
}

// ExpressionStage runs a single-expression parse, used by ParseExpression.
type ExpressionStage struct{}

func (ExpressionStage) Process(ctx *Context) (out *Context) {
	out = ctx
	defer func() {
		if r := recover(); r != nil {
			de, ok := r.(*diagnostics.Error)
			if !ok {
				panic(r)
			}
			out.Err = de
		}
	}()
	s := parser.New(ctx.Source, ctx.Options)
	out.Expression = s.ParseExpressionOnly()
	return out
}
