package ecmaparse

// Grounded on mcgru-funxy's internal/parser/parser_test.go table-driven
// `testCases := []struct{name, input}` shape (SPEC_FULL.md §3 "Test
// tooling"), retargeted at spec.md §8's testable properties and concrete
// scenarios 1-6 instead of funxy's own grammar.

import (
	"strings"
	"testing"

	"github.com/funvibe/ecmaparse/internal/ast"
)

func mustParse(t *testing.T, src string, opts *Options) *ast.File {
	t.Helper()
	f, err := Parse(src, opts)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return f
}

// Scenario 1: "1 + 2 * 3" as an expression yields `(1 + (2 * 3))`.
func TestScenario1BinaryPrecedence(t *testing.T) {
	expr, err := ParseExpression("1 + 2 * 3", nil)
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpression", expr)
	}
	if bin.Operator != "+" {
		t.Fatalf("operator = %q, want +", bin.Operator)
	}
	left, ok := bin.Left.(*ast.NumericLiteral)
	if !ok || left.Value != 1 {
		t.Fatalf("left = %#v, want NumericLiteral(1)", bin.Left)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("right = %#v, want BinaryExpression(*)", bin.Right)
	}
	rl, _ := right.Left.(*ast.NumericLiteral)
	rr, _ := right.Right.(*ast.NumericLiteral)
	if rl == nil || rl.Value != 2 || rr == nil || rr.Value != 3 {
		t.Fatalf("right operands = %#v / %#v, want 2 and 3", right.Left, right.Right)
	}
}

// Scenario 2: array destructuring with a default and a rest element.
func TestScenario2ArrayDestructuring(t *testing.T) {
	f := mustParse(t, "const [a, b = 1, ...c] = arr;", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
	decl, ok := f.Program.Body[0].(*ast.VariableDeclaration)
	if !ok || decl.Kind != "const" {
		t.Fatalf("stmt = %#v, want const VariableDeclaration", f.Program.Body[0])
	}
	if len(decl.Declarations) != 1 {
		t.Fatalf("declarations = %d, want 1", len(decl.Declarations))
	}
	d := decl.Declarations[0]
	pat, ok := d.ID.(*ast.ArrayPattern)
	if !ok {
		t.Fatalf("id = %#v, want *ast.ArrayPattern", d.ID)
	}
	if len(pat.Elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(pat.Elements))
	}
	id0, ok := pat.Elements[0].(*ast.Identifier)
	if !ok || id0.Name != "a" {
		t.Fatalf("elements[0] = %#v, want Identifier(a)", pat.Elements[0])
	}
	ap, ok := pat.Elements[1].(*ast.AssignmentPattern)
	if !ok {
		t.Fatalf("elements[1] = %#v, want *ast.AssignmentPattern", pat.Elements[1])
	}
	id1, _ := ap.Left.(*ast.Identifier)
	num1, _ := ap.Right.(*ast.NumericLiteral)
	if id1 == nil || id1.Name != "b" || num1 == nil || num1.Value != 1 {
		t.Fatalf("elements[1] = %#v / %#v, want Identifier(b) = NumericLiteral(1)", ap.Left, ap.Right)
	}
	rest, ok := pat.Elements[2].(*ast.RestElement)
	if !ok {
		t.Fatalf("elements[2] = %#v, want *ast.RestElement", pat.Elements[2])
	}
	rid, _ := rest.Argument.(*ast.Identifier)
	if rid == nil || rid.Name != "c" {
		t.Fatalf("rest argument = %#v, want Identifier(c)", rest.Argument)
	}
	init, ok := d.Init.(*ast.Identifier)
	if !ok || init.Name != "arr" {
		t.Fatalf("init = %#v, want Identifier(arr)", d.Init)
	}
}

// Scenario 3: async arrow function with an awaited identifier in its body.
func TestScenario3AsyncArrowAwait(t *testing.T) {
	f := mustParse(t, "async (x) => { return await x; }", nil)
	stmt, ok := f.Program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("stmt = %#v, want *ast.ExpressionStatement", f.Program.Body[0])
	}
	arrow, ok := stmt.Expression.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expr = %#v, want *ast.ArrowFunctionExpression", stmt.Expression)
	}
	if !arrow.Async {
		t.Fatal("arrow.Async = false, want true")
	}
	if len(arrow.Params) != 1 {
		t.Fatalf("params = %d, want 1", len(arrow.Params))
	}
	pid, ok := arrow.Params[0].(*ast.Identifier)
	if !ok || pid.Name != "x" {
		t.Fatalf("params[0] = %#v, want Identifier(x)", arrow.Params[0])
	}
	body, ok := arrow.Body.(*ast.BlockStatement)
	if !ok {
		t.Fatalf("body = %#v, want *ast.BlockStatement", arrow.Body)
	}
	if len(body.Body) != 1 {
		t.Fatalf("block body length = %d, want 1", len(body.Body))
	}
	ret, ok := body.Body[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("stmt = %#v, want *ast.ReturnStatement", body.Body[0])
	}
	await, ok := ret.Argument.(*ast.AwaitExpression)
	if !ok {
		t.Fatalf("argument = %#v, want *ast.AwaitExpression", ret.Argument)
	}
	aid, ok := await.Argument.(*ast.Identifier)
	if !ok || aid.Name != "x" {
		t.Fatalf("await argument = %#v, want Identifier(x)", await.Argument)
	}
}

// Scenario 4: a class with a static private field and a getter reading it.
func TestScenario4ClassPrivateField(t *testing.T) {
	f := mustParse(t, "class C extends B { static #x = 1; get y(){return this.#x;} }", nil)
	cls, ok := f.Program.Body[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("stmt = %#v, want *ast.ClassDeclaration", f.Program.Body[0])
	}
	super, ok := cls.SuperClass.(*ast.Identifier)
	if !ok || super.Name != "B" {
		t.Fatalf("superClass = %#v, want Identifier(B)", cls.SuperClass)
	}
	if len(cls.Body.Body) != 2 {
		t.Fatalf("class body length = %d, want 2", len(cls.Body.Body))
	}
	field, ok := cls.Body.Body[0].(*ast.ClassPrivateProperty)
	if !ok {
		t.Fatalf("member[0] = %#v, want *ast.ClassPrivateProperty", cls.Body.Body[0])
	}
	if !field.Static || field.Key.ID.Name != "x" {
		t.Fatalf("field = %#v, want static private #x", field)
	}
	num, ok := field.Value.(*ast.NumericLiteral)
	if !ok || num.Value != 1 {
		t.Fatalf("field value = %#v, want NumericLiteral(1)", field.Value)
	}
	method, ok := cls.Body.Body[1].(*ast.ClassMethod)
	if !ok {
		t.Fatalf("member[1] = %#v, want *ast.ClassMethod", cls.Body.Body[1])
	}
	if method.Kind != "get" || len(method.Params) != 0 {
		t.Fatalf("method = %#v, want getter with 0 params", method)
	}
}

// Scenario 5: a template literal with one interpolated identifier.
func TestScenario5TemplateLiteral(t *testing.T) {
	expr, err := ParseExpression("`hello ${name}!`", nil)
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	tpl, ok := expr.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.TemplateLiteral", expr)
	}
	if len(tpl.Quasis) != 2 || len(tpl.Expressions) != 1 {
		t.Fatalf("quasis=%d expressions=%d, want 2 and 1", len(tpl.Quasis), len(tpl.Expressions))
	}
	if tpl.Quasis[0].Value.Cooked != "hello " || tpl.Quasis[0].Tail {
		t.Fatalf("quasis[0] = %#v, want cooked=%q tail=false", tpl.Quasis[0], "hello ")
	}
	if tpl.Quasis[1].Value.Cooked != "!" || !tpl.Quasis[1].Tail {
		t.Fatalf("quasis[1] = %#v, want cooked=%q tail=true", tpl.Quasis[1], "!")
	}
	id, ok := tpl.Expressions[0].(*ast.Identifier)
	if !ok || id.Name != "name" {
		t.Fatalf("expressions[0] = %#v, want Identifier(name)", tpl.Expressions[0])
	}
}

// Scenario 6: binding `eval` after "use strict" raises a strict-mode error.
func TestScenario6StrictEval(t *testing.T) {
	_, err := Parse("'use strict'; var eval = 1;", &Options{SourceType: "script"})
	if err == nil {
		t.Fatal("expected a strict-mode error, got nil")
	}
	if !strings.Contains(err.Error(), "strict") {
		t.Fatalf("error = %q, want it to mention strict mode", err.Error())
	}
}

// TestSpanClosure checks spec.md §8's "Span closure" on a sample: the
// Program's start <= end, the function's span lies inside the Program's,
// and the function body's span lies inside the function's.
func TestSpanClosure(t *testing.T) {
	f := mustParse(t, "function f(a, b) { return a + b * (2 - 1); }", nil)
	start, end := f.Program.Base().Span()
	if start > end {
		t.Fatalf("Program span = [%d,%d], start > end", start, end)
	}
	fn, ok := f.Program.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("body[0] = %#v, want *ast.FunctionDeclaration", f.Program.Body[0])
	}
	fs, fe := fn.Base().Span()
	if fs < start || fe > end {
		t.Fatalf("function span [%d,%d] escapes program span [%d,%d]", fs, fe, start, end)
	}
	bs, be := fn.Body.Base().Span()
	if bs < fs || be > fe {
		t.Fatalf("body span [%d,%d] escapes function span [%d,%d]", bs, be, fs, fe)
	}
}

// TestTokenCompleteness checks part of spec.md §8's "Token completeness":
// when tokens are captured, the list is non-empty, tokens appear in source
// order without overlapping, and the last one ends within the input.
func TestTokenCompleteness(t *testing.T) {
	src := "const x = 1 + /* c */ 2; // trailing\n"
	f := mustParse(t, src, &Options{Tokens: true})
	if len(f.Tokens) == 0 {
		t.Fatal("expected tokens to be captured")
	}
	last := f.Tokens[len(f.Tokens)-1]
	if last.End > len(src) {
		t.Fatalf("last token end %d exceeds input length %d", last.End, len(src))
	}
	prevEnd := 0
	for _, tok := range f.Tokens {
		if tok.Start < prevEnd {
			t.Fatalf("token %v starts at %d before previous token ended at %d", tok, tok.Start, prevEnd)
		}
		prevEnd = tok.End
	}
}

// TestCommentConservation checks spec.md §8's "Comment conservation" on a
// two-comment program: both comments appear in file.comments, the leading
// one is attached to the function and the trailing one to its return.
func TestCommentConservation(t *testing.T) {
	src := "// leading\nfunction f() {\n  return 1; // trailing\n}\n"
	f := mustParse(t, src, nil)
	if len(f.Comments) != 2 {
		t.Fatalf("file.comments length = %d, want 2", len(f.Comments))
	}
	fn, ok := f.Program.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("body[0] = %#v, want *ast.FunctionDeclaration", f.Program.Body[0])
	}
	if len(fn.Base().LeadingComments) != 1 || fn.Base().LeadingComments[0].Text != " leading" {
		t.Fatalf("function leading comments = %#v, want [\" leading\"]", fn.Base().LeadingComments)
	}
	ret := fn.Body.Body[0]
	if len(ret.Base().TrailingComments) != 1 || ret.Base().TrailingComments[0].Text != " trailing" {
		t.Fatalf("return trailing comments = %#v, want [\" trailing\"]", ret.Base().TrailingComments)
	}
}

// TestCommentConservationEmptyProgram checks the one documented exception:
// a comment in an otherwise-empty program is never lost, even though there
// is no statement node to attach it to.
func TestCommentConservationEmptyProgram(t *testing.T) {
	f := mustParse(t, "// only a comment\n", nil)
	if len(f.Comments) != 1 {
		t.Fatalf("file.comments length = %d, want 1", len(f.Comments))
	}
	if len(f.Program.Body) != 0 {
		t.Fatalf("program body length = %d, want 0", len(f.Program.Body))
	}
}

// TestASI exercises spec.md §8's ASI examples: `return` followed by a
// newline yields an argument-less return, and `a` newline `++b` yields two
// statements rather than `a ++ b`.
func TestASI(t *testing.T) {
	f := mustParse(t, "function f() {\n  return\n  1;\n}", nil)
	fn := f.Program.Body[0].(*ast.FunctionDeclaration)
	if len(fn.Body.Body) != 2 {
		t.Fatalf("body length = %d, want 2 (bare return + expr statement)", len(fn.Body.Body))
	}
	ret, ok := fn.Body.Body[0].(*ast.ReturnStatement)
	if !ok || ret.Argument != nil {
		t.Fatalf("first statement = %#v, want argument-less ReturnStatement", fn.Body.Body[0])
	}

	f2 := mustParse(t, "a\n++b", nil)
	if len(f2.Program.Body) != 2 {
		t.Fatalf("body length = %d, want 2 (a; ++b;)", len(f2.Program.Body))
	}
	first, ok := f2.Program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("first statement = %#v, want ExpressionStatement", f2.Program.Body[0])
	}
	if _, ok := first.Expression.(*ast.Identifier); !ok {
		t.Fatalf("first expression = %#v, want bare Identifier(a)", first.Expression)
	}
	second, ok := f2.Program.Body[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("second statement = %#v, want ExpressionStatement", f2.Program.Body[1])
	}
	upd, ok := second.Expression.(*ast.UpdateExpression)
	if !ok || upd.Operator != "++" || upd.Prefix != true {
		t.Fatalf("second expression = %#v, want prefix UpdateExpression(++)", second.Expression)
	}
}

func TestKeywordExclusivity(t *testing.T) {
	if _, err := Parse("var class = 1;", nil); err == nil {
		t.Fatal("expected a reserved-word error for `class` as a binding name")
	}
}

func TestParseExpressionRejectsTrailingTokens(t *testing.T) {
	if _, err := ParseExpression("1 + 2 3", nil); err == nil {
		t.Fatal("expected an error for trailing tokens after the expression")
	}
}

func TestHashbang(t *testing.T) {
	f := mustParse(t, "#!/usr/bin/env node\nvar x = 1;\n", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestModuleImportExport(t *testing.T) {
	f := mustParse(t, "import {a, b as c} from 'm'; export default a;", &Options{SourceType: "module"})
	if len(f.Program.Body) != 2 {
		t.Fatalf("body length = %d, want 2", len(f.Program.Body))
	}
	imp, ok := f.Program.Body[0].(*ast.ImportDeclaration)
	if !ok {
		t.Fatalf("body[0] = %#v, want *ast.ImportDeclaration", f.Program.Body[0])
	}
	if len(imp.Specifiers) != 2 {
		t.Fatalf("specifiers length = %d, want 2", len(imp.Specifiers))
	}
}

func TestDuplicateExportRejected(t *testing.T) {
	_, err := Parse("export const a = 1; export const a = 2;", &Options{SourceType: "module"})
	if err == nil {
		t.Fatal("expected a duplicate-export error")
	}
}

func TestBigIntLiteral(t *testing.T) {
	expr, err := ParseExpression("123456789012345678901234567890n", nil)
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	lit, ok := expr.(*ast.BigIntLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.BigIntLiteral", expr)
	}
	if lit.Value.String() != "123456789012345678901234567890" {
		t.Fatalf("value = %s, want 123456789012345678901234567890", lit.Value.String())
	}
}

func TestJSXAttributeFollowedByValue(t *testing.T) {
	expr, err := ParseExpression(`<div className="a" onClick={f}>text</div>`, &Options{Plugins: []string{"jsx"}})
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	el, ok := expr.(*ast.JSXElement)
	if !ok {
		t.Fatalf("got %T, want *ast.JSXElement", expr)
	}
	if len(el.OpeningElement.Attributes) != 2 {
		t.Fatalf("attributes length = %d, want 2", len(el.OpeningElement.Attributes))
	}
	attr0, ok := el.OpeningElement.Attributes[0].(*ast.JSXAttribute)
	if !ok {
		t.Fatalf("attrs[0] = %#v, want *ast.JSXAttribute", el.OpeningElement.Attributes[0])
	}
	if attr0.Value == nil {
		t.Fatal("attrs[0].Value is nil, want a StringLiteral (token after the attribute name must not be skipped)")
	}
	if name, ok := attr0.Name.(*ast.JSXIdentifier); !ok || name.Name != "className" {
		t.Fatalf("attrs[0].Name = %#v, want JSXIdentifier{className}", attr0.Name)
	}
	attr1, ok := el.OpeningElement.Attributes[1].(*ast.JSXAttribute)
	if !ok {
		t.Fatalf("attrs[1] = %#v, want *ast.JSXAttribute", el.OpeningElement.Attributes[1])
	}
	if attr1.Value == nil {
		t.Fatal("attrs[1].Value is nil, want a JSXExpressionContainer")
	}
	if len(el.Children) != 1 {
		t.Fatalf("children length = %d, want 1", len(el.Children))
	}
}

func TestTSEnumMembers(t *testing.T) {
	f := mustParse(t, "enum Color { Red, Green, Blue = 2 }", &Options{Plugins: []string{"typescript"}})
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
	en, ok := f.Program.Body[0].(*ast.TSEnumDeclaration)
	if !ok {
		t.Fatalf("body[0] = %#v, want *ast.TSEnumDeclaration", f.Program.Body[0])
	}
	if len(en.Members) != 3 {
		t.Fatalf("members length = %d, want 3 (every comma must be consumed, not skipped)", len(en.Members))
	}
}

func TestUnknownPluginRejected(t *testing.T) {
	_, err := Parse("var x = 1;", &Options{Plugins: []string{"nope"}})
	if err == nil {
		t.Fatal("expected an error for an unregistered plugin name")
	}
}

func TestReturnOutsideFunctionRejectedByDefault(t *testing.T) {
	_, err := Parse("return 1;", nil)
	if err == nil {
		t.Fatal("expected an error for a top-level return")
	}
}

func TestAllowReturnOutsideFunction(t *testing.T) {
	f := mustParse(t, "return 1;", &Options{AllowReturnOutsideFunction: true})
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestImportExportRejectedWhenNested(t *testing.T) {
	_, err := Parse(`if (x) { import y from "z"; }`, nil)
	if err == nil {
		t.Fatal("expected an error for a nested import declaration")
	}
}

func TestAllowImportExportEverywhere(t *testing.T) {
	f := mustParse(t, `if (x) { import y from "z"; }`, &Options{AllowImportExportEverywhere: true})
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestSuperOutsideMethodRejected(t *testing.T) {
	_, err := ParseExpression("super.x", nil)
	if err == nil {
		t.Fatal("expected an error for `super` outside a method")
	}
}

func TestSuperInsideMethodAllowed(t *testing.T) {
	f := mustParse(t, "var o = { m() { return super.x; } };", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestAllowSuperOutsideMethod(t *testing.T) {
	expr, err := ParseExpression("super.x", &Options{AllowSuperOutsideMethod: true})
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if _, ok := expr.(*ast.MemberExpression); !ok {
		t.Fatalf("got %T, want *ast.MemberExpression", expr)
	}
}

func TestNewTargetOutsideFunctionRejected(t *testing.T) {
	_, err := ParseExpression("new.target", nil)
	if err == nil {
		t.Fatal("expected an error for `new.target` outside a function")
	}
}

func TestNewTargetInsideFunctionAllowed(t *testing.T) {
	f := mustParse(t, "function f() { return new.target; }", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestLabeledContinueToLoopLabelAllowed(t *testing.T) {
	f := mustParse(t, "outer: while (x) { continue outer; }", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestBreakToLabeledBlockAllowed(t *testing.T) {
	f := mustParse(t, "outer: { break outer; }", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestUnknownLabelRejected(t *testing.T) {
	_, err := Parse("while (x) { continue nope; }", nil)
	if err == nil {
		t.Fatal("expected an error for a continue to an undeclared label")
	}
}

func TestContinueToNonLoopLabelRejected(t *testing.T) {
	_, err := Parse("outer: switch (x) { case 1: continue outer; }", nil)
	if err == nil {
		t.Fatal("expected an error for continue to a label naming a non-iteration statement")
	}
}

func TestDuplicateStrictParamRejected(t *testing.T) {
	_, err := Parse(`"use strict"; function f(a, a) {}`, nil)
	if err == nil {
		t.Fatal("expected an error for a duplicate strict-mode parameter name")
	}
}

func TestDuplicateSloppyParamAllowed(t *testing.T) {
	f := mustParse(t, "function f(a, a) {}", nil)
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}

func TestStrictDirectivePromotedInsideBodyRejectsDuplicateParam(t *testing.T) {
	_, err := Parse(`function f(a, a) { "use strict"; }`, nil)
	if err == nil {
		t.Fatal("expected an error: a directive-promoted strict mode still rejects duplicate parameters")
	}
}

func TestStrictEvalParamRejected(t *testing.T) {
	_, err := Parse(`"use strict"; function f(eval) {}`, nil)
	if err == nil {
		t.Fatal("expected an error for binding `eval` as a parameter in strict mode")
	}
}

func TestStartLineOption(t *testing.T) {
	_, err := Parse("var 1 = 2;", &Options{StartLine: 10})
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if pe.Line != 10 {
		t.Fatalf("line = %d, want 10", pe.Line)
	}
}

func TestStrictModeOptionForcesStrict(t *testing.T) {
	strict := true
	_, err := Parse("var eval = 1;", &Options{StrictMode: &strict})
	if err == nil {
		t.Fatal("expected an error: binding `eval` is illegal once strict mode is forced")
	}
}

func TestStrictModeOptionOverridesModuleDefault(t *testing.T) {
	strict := false
	f := mustParse(t, "var eval = 1;", &Options{SourceType: "module", StrictMode: &strict})
	if len(f.Program.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(f.Program.Body))
	}
}
