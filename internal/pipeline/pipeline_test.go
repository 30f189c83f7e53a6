package pipeline

import (
	"testing"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/parser"
)

func TestProgramStageParsesProgram(t *testing.T) {
	ctx := NewContext("var x = 1;", &parser.Options{SourceType: "script"})
	ctx = New(ProgramStage{}).Run(ctx)
	if ctx.Err != nil {
		t.Fatalf("unexpected error: %v", ctx.Err)
	}
	if ctx.Program == nil || len(ctx.Program.Program.Body) != 1 {
		t.Fatalf("got %#v, want a one-statement program", ctx.Program)
	}
}

func TestProgramStageCapturesDiagnostic(t *testing.T) {
	ctx := NewContext("var 1 = 2;", &parser.Options{SourceType: "script"})
	ctx = New(ProgramStage{}).Run(ctx)
	if ctx.Err == nil {
		t.Fatal("expected a syntax error")
	}
	if ctx.Program != nil {
		t.Fatalf("Program = %#v, want nil once Err is set", ctx.Program)
	}
}

func TestExpressionStageParsesExpression(t *testing.T) {
	ctx := NewContext("1 + 2", &parser.Options{SourceType: "script"})
	ctx = New(ExpressionStage{}).Run(ctx)
	if ctx.Err != nil {
		t.Fatalf("unexpected error: %v", ctx.Err)
	}
	if _, ok := ctx.Expression.(*ast.BinaryExpression); !ok {
		t.Fatalf("got %T, want *ast.BinaryExpression", ctx.Expression)
	}
}

// stoppingStage records whether it ran, used to confirm Pipeline.Run halts
// at the first stage that leaves an error on the context.
type stoppingStage struct{ ran *bool }

func (s stoppingStage) Process(ctx *Context) *Context {
	*s.ran = true
	return ctx
}

func TestPipelineStopsAfterError(t *testing.T) {
	ran := false
	ctx := NewContext("var 1 = 2;", &parser.Options{SourceType: "script"})
	ctx = New(ProgramStage{}, stoppingStage{ran: &ran}).Run(ctx)
	if ctx.Err == nil {
		t.Fatal("expected a syntax error from the first stage")
	}
	if ran {
		t.Fatal("second stage ran despite the first stage leaving an error")
	}
}
