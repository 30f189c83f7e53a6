package parser

// Component G: statement parsing, ASI, and the top-level program loop.
// Grounded on mcgru-funxy's internal/parser/parser.go ParseProgram
// top-level dispatch loop and internal/parser/statements.go's
// parsePackageDeclaration/parseImportStatement/parseExportSpec pattern
// (bounded-lookahead disambiguation of competing statement forms),
// generalized from funxy's package/import/export grammar to ECMAScript's
// statement grammar, including ASI, which funxy's newline-sensitive
// operator continuation logic (hasContinuationOperator) is the closest
// teacher analogue of — both decide statement boundaries from
// NewlineBefore on the next token rather than requiring a terminator.

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) expect(t token.Type) token.Token {
	if s.cur.Type != t {
		s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrExpectedToken, token.KindOf(t).Label, s.cur.Type)
	}
	tok := s.cur
	s.next()
	return tok
}

// canInsertSemicolon implements ASI's three rules (spec.md §4.G): a
// newline before the offending token, EOF, or a `}` all license an implicit
// semicolon.
func (s *State) canInsertSemicolon() bool {
	return s.cur.NewlineBefore || s.cur.Type == token.EOF || s.cur.Type == token.BraceR
}

func (s *State) semicolon() {
	if s.cur.Type == token.Semi {
		s.next()
		return
	}
	if !s.canInsertSemicolon() {
		s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrExpectedToken, ";", s.cur.Type)
	}
}

// ParseProgram drives the whole input to EOF, producing *ast.Program.
func (s *State) ParseProgram() *ast.Program {
	s.skipHashbang()
	s.next() // prime s.cur
	start := s.startNode()

	body, directives := s.parseDirectivesAndBody(token.EOF)
	s.flushDanglingAsTrailing(lastOf(body, directives))
	n := &ast.Program{BaseNode: start, SourceType: s.opts.SourceType, Body: body, Directives: directives}
	s.finishNode(&n.BaseNode, "Program")
	s.checkDuplicateExports()
	return n
}

// skipHashbang unconditionally discards a leading `#!...` line (spec.md
// §4.D), which is only legal as the very first line of a script/module,
// never elsewhere.
func (s *State) skipHashbang() {
	if s.pos != 0 {
		return
	}
	if len(s.input) < 2 || s.input[0] != '#' || s.input[1] != '!' {
		return
	}
	for s.pos < len(s.input) && s.input[s.pos] != '\n' {
		s.pos++
	}
}

// checkTopLevelModuleSyntax rejects import/export declarations in a script
// and those that aren't at the top level of the program (spec.md §6
// allowImportExportEverywhere): by default they're only legal in a module,
// where blockDepth is 0.
func (s *State) checkTopLevelModuleSyntax(pos int) {
	if s.opts.SourceType != "module" && !s.opts.AllowImportExportEverywhere {
		s.raise(pos, diagnostics.KindGrammar, diagnostics.ErrNoPrefixParseFn, s.cur.Type)
	}
	if s.blockDepth > 0 && !s.opts.AllowImportExportEverywhere {
		s.raise(pos, diagnostics.KindGrammar, diagnostics.ErrImportExportNotTopLevel)
	}
}

// parseDirectivesAndBody parses a directive prologue (consecutive bare
// string-literal expression statements at the head of a Program or
// function body) followed by ordinary statements, stopping at endType.
// Strict mode is promoted retroactively per spec.md §4.G: once "use strict"
// is seen, s.strict flips before the remaining statements (and the
// directive's own re-validation) are parsed.
func (s *State) parseDirectivesAndBody(endType token.Type) ([]ast.Statement, []*ast.Directive) {
	var directives []*ast.Directive
	var body []ast.Statement
	parsingDirectives := true
	for s.cur.Type != endType {
		if parsingDirectives && s.cur.Type == token.String {
			start := s.startNode()
			raw := s.input[s.cur.Start:s.cur.End]
			val, _ := s.cur.Value.(string)
			s.next()
			if s.cur.Type != token.Semi && !s.canInsertSemicolon() {
				// Not actually a directive (e.g. "use strict".length) —
				// reparse as a normal expression statement starting over
				// is unnecessary: a bare string followed by more expression
				// syntax can only mean it was never a directive at all, so
				// fall through to ordinary statement parsing below using
				// the literal already consumed as the expression base.
				parsingDirectives = false
				lit := &ast.StringLiteral{BaseNode: start, Value: val, Raw: raw}
				s.finishNode(&lit.BaseNode, "StringLiteral")
				expr := s.parseSubscripts(lit, start)
				expr = s.parseBinaryRHS(start.Start_, start.Loc_.Start, expr, 1, false)
				stmt := s.finishExpressionStatement(start, expr)
				body = append(body, stmt)
				continue
			}
			s.semicolon()
			if val == "use strict" {
				s.strict = true
			}
			dlit := &ast.DirectiveLiteral{BaseNode: start, Value: val}
			d := &ast.Directive{BaseNode: start, Value: dlit}
			s.finishNode(&d.BaseNode, "Directive")
			directives = append(directives, d)
			continue
		}
		parsingDirectives = false
		body = append(body, s.parseStatement())
	}
	s.checkPendingOctal()
	return body, directives
}

func (s *State) checkPendingOctal() {
	if s.strict && s.octalPos >= 0 {
		s.raise(s.octalPos, diagnostics.KindScope, diagnostics.ErrStrictOctal)
	}
}

func (s *State) finishExpressionStatement(start ast.BaseNode, expr ast.Expression) ast.Statement {
	s.semicolon()
	n := &ast.ExpressionStatement{BaseNode: start, Expression: expr}
	s.finishNode(&n.BaseNode, "ExpressionStatement")
	return n
}

func (s *State) parseStatement() ast.Statement {
	if s.hooks.ParseStatement != nil {
		if st := s.hooks.ParseStatement(s); st != nil {
			return st
		}
	}

	switch s.cur.Type {
	case token.BraceL:
		return s.parseBlock()
	case token.Var, token.Let, token.Const:
		return s.parseVarStatement()
	case token.Function:
		return s.parseFunctionDeclaration(false)
	case token.Class:
		return s.parseClassDeclaration()
	case token.If:
		return s.parseIfStatement()
	case token.Return:
		return s.parseReturnStatement()
	case token.Switch:
		return s.parseSwitchStatement()
	case token.Throw:
		return s.parseThrowStatement()
	case token.Try:
		return s.parseTryStatement()
	case token.While:
		return s.parseWhileStatement()
	case token.Do:
		return s.parseDoWhileStatement()
	case token.For:
		return s.parseForStatement()
	case token.Break:
		return s.parseBreakContinue(true)
	case token.Continue:
		return s.parseBreakContinue(false)
	case token.With:
		return s.parseWithStatement()
	case token.Debugger:
		return s.parseDebuggerStatement()
	case token.Semi:
		start := s.startNode()
		s.next()
		n := &ast.EmptyStatement{BaseNode: start}
		s.finishNode(&n.BaseNode, "EmptyStatement")
		return n
	case token.Import:
		if s.peekToken().Type != token.ParenL && s.peekToken().Type != token.Dot {
			s.checkTopLevelModuleSyntax(s.cur.Start)
			return s.parseImportDeclaration()
		}
	case token.Export:
		s.checkTopLevelModuleSyntax(s.cur.Start)
		return s.parseExportDeclaration()
	case token.At:
		return s.parseDecoratedDeclaration()
	}

	if s.cur.Type == token.Name {
		if pk := s.peekToken(); pk.Type == token.Colon {
			return s.parseLabeledStatement()
		}
		if s.cur.Value == token.KwAsync {
			if pk := s.peekToken(); pk.Type == token.Function && !pk.NewlineBefore {
				s.next()
				return s.parseFunctionDeclaration(true)
			}
		}
	}

	start := s.startNode()
	expr := s.parseExpression(false)
	return s.finishExpressionStatement(start, expr)
}

// parseNestedStatement parses a statement that is never a program's direct
// top-level statement (an if/while/for/with/labeled-statement body) — used
// to keep blockDepth accurate for braceless bodies, which don't go through
// parseBlock.
func (s *State) parseNestedStatement() ast.Statement {
	s.blockDepth++
	st := s.parseStatement()
	s.blockDepth--
	return st
}

func (s *State) parseBlock() *ast.BlockStatement {
	start := s.startNode()
	s.expect(token.BraceL)
	s.blockDepth++
	body, directives := s.parseDirectivesAndBody(token.BraceR)
	s.blockDepth--
	s.flushDanglingAsTrailing(lastOf(body, directives))
	s.expect(token.BraceR)
	n := &ast.BlockStatement{BaseNode: start, Body: body, Directives: directives}
	s.finishNode(&n.BaseNode, "BlockStatement")
	return n
}

// lastOf returns the last directive or statement in source order (whichever
// ends later), or nil if both are empty — the node that should receive any
// comment dangling just before a block/program's closing token.
func lastOf(body []ast.Statement, directives []*ast.Directive) ast.Node {
	var last ast.Node
	if len(directives) > 0 {
		last = directives[len(directives)-1]
	}
	if len(body) > 0 {
		last = body[len(body)-1]
	}
	return last
}

func (s *State) parseVarStatement() ast.Statement {
	start := s.startNode()
	kind := string(s.cur.Type)
	switch s.cur.Type {
	case token.Var:
		kind = "var"
	case token.Let:
		kind = "let"
	case token.Const:
		kind = "const"
	}
	s.next()
	var decls []*ast.VariableDeclarator
	for {
		dStart := s.startNode()
		id := s.parseBindingAtom()
		s.checkLVal(id, nil, false)
		var init ast.Expression
		if s.cur.Type == token.Eq {
			s.next()
			init = s.parseMaybeAssign(false)
		} else if kind == "const" {
			if _, ok := id.(*ast.Identifier); ok {
				s.raise(dStart.Start_, diagnostics.KindGrammar, diagnostics.ErrComplexBindingNoInit)
			}
		} else if _, isID := id.(*ast.Identifier); !isID {
			s.raise(dStart.Start_, diagnostics.KindGrammar, diagnostics.ErrComplexBindingNoInit)
		}
		d := &ast.VariableDeclarator{BaseNode: dStart, ID: id, Init: init}
		s.finishNode(&d.BaseNode, "VariableDeclarator")
		decls = append(decls, d)
		if s.cur.Type == token.Comma {
			s.next()
			continue
		}
		break
	}
	s.semicolon()
	n := &ast.VariableDeclaration{BaseNode: start, Kind: kind, Declarations: decls}
	s.finishNode(&n.BaseNode, "VariableDeclaration")
	return n
}

func (s *State) parseFunctionDeclaration(async bool) ast.Statement {
	start := s.startNode()
	s.expect(token.Function)
	generator := false
	if s.cur.Type == token.Star {
		generator = true
		s.next()
	}
	id := s.parseIdentifier()
	params := s.parseBindingList(token.ParenL, token.ParenR, false)
	prevFn, prevGen, prevAsync, prevMethod := s.inFunction, s.inGenerator, s.inAsync, s.inMethod
	s.inFunction, s.inGenerator, s.inAsync, s.inMethod = true, generator, async, false
	body := s.parseBlock()
	s.checkParamList(params)
	s.inFunction, s.inGenerator, s.inAsync, s.inMethod = prevFn, prevGen, prevAsync, prevMethod
	n := &ast.FunctionDeclaration{BaseNode: start, ID: id, Params: params, Body: body, Generator: generator, Async: async}
	s.finishNode(&n.BaseNode, "FunctionDeclaration")
	return n
}

func (s *State) parseIfStatement() ast.Statement {
	start := s.startNode()
	s.next()
	s.expect(token.ParenL)
	test := s.parseExpression(false)
	s.expect(token.ParenR)
	cons := s.parseNestedStatement()
	var alt ast.Statement
	if s.cur.Type == token.Else {
		s.next()
		alt = s.parseNestedStatement()
	}
	n := &ast.IfStatement{BaseNode: start, Test: test, Consequent: cons, Alternate: alt}
	s.finishNode(&n.BaseNode, "IfStatement")
	return n
}

func (s *State) parseReturnStatement() ast.Statement {
	if !s.inFunction && !s.opts.AllowReturnOutsideFunction {
		s.raise(s.cur.Start, diagnostics.KindScope, diagnostics.ErrIllegalReturn)
	}
	start := s.startNode()
	s.next()
	var arg ast.Expression
	if !s.canInsertSemicolon() && s.cur.Type != token.Semi {
		arg = s.parseExpression(false)
	}
	s.semicolon()
	n := &ast.ReturnStatement{BaseNode: start, Argument: arg}
	s.finishNode(&n.BaseNode, "ReturnStatement")
	return n
}

func (s *State) parseSwitchStatement() ast.Statement {
	start := s.startNode()
	s.next()
	s.expect(token.ParenL)
	disc := s.parseExpression(false)
	s.expect(token.ParenR)
	s.expect(token.BraceL)
	s.blockDepth++
	s.labels = append(s.labels, labelInfo{kind: "switch"})
	var cases []*ast.SwitchCase
	sawDefault := false
	for s.cur.Type != token.BraceR {
		cStart := s.startNode()
		var test ast.Expression
		if s.cur.Type == token.Case {
			s.next()
			test = s.parseExpression(false)
		} else {
			s.expect(token.Default)
			if sawDefault {
				s.raise(cStart.Start_, diagnostics.KindGrammar, diagnostics.ErrDuplicateDefault)
			}
			sawDefault = true
		}
		s.expect(token.Colon)
		var cons []ast.Statement
		for s.cur.Type != token.Case && s.cur.Type != token.Default && s.cur.Type != token.BraceR {
			cons = append(cons, s.parseStatement())
		}
		c := &ast.SwitchCase{BaseNode: cStart, Test: test, Consequent: cons}
		s.finishNode(&c.BaseNode, "SwitchCase")
		cases = append(cases, c)
	}
	s.labels = s.labels[:len(s.labels)-1]
	s.blockDepth--
	s.expect(token.BraceR)
	n := &ast.SwitchStatement{BaseNode: start, Discriminant: disc, Cases: cases}
	s.finishNode(&n.BaseNode, "SwitchStatement")
	return n
}

func (s *State) parseThrowStatement() ast.Statement {
	start := s.startNode()
	s.next()
	if s.cur.NewlineBefore {
		s.raise(start.Start_, diagnostics.KindGrammar, diagnostics.ErrIllegalNewlineAfterThrow)
	}
	arg := s.parseExpression(false)
	s.semicolon()
	n := &ast.ThrowStatement{BaseNode: start, Argument: arg}
	s.finishNode(&n.BaseNode, "ThrowStatement")
	return n
}

func (s *State) parseTryStatement() ast.Statement {
	start := s.startNode()
	s.next()
	block := s.parseBlock()
	var handler *ast.CatchClause
	if s.cur.Type == token.Catch {
		hStart := s.startNode()
		s.next()
		var param ast.Pattern
		if s.cur.Type == token.ParenL {
			s.next()
			param = s.parseBindingAtom()
			s.checkLVal(param, nil, false)
			s.expect(token.ParenR)
		}
		body := s.parseBlock()
		handler = &ast.CatchClause{BaseNode: hStart, Param: param, Body: body}
		s.finishNode(&handler.BaseNode, "CatchClause")
	}
	var finalizer *ast.BlockStatement
	if s.cur.Type == token.Finally {
		s.next()
		finalizer = s.parseBlock()
	}
	n := &ast.TryStatement{BaseNode: start, Block: block, Handler: handler, Finalizer: finalizer}
	s.finishNode(&n.BaseNode, "TryStatement")
	return n
}

func (s *State) parseWhileStatement() ast.Statement {
	start := s.startNode()
	s.next()
	s.expect(token.ParenL)
	test := s.parseExpression(false)
	s.expect(token.ParenR)
	s.labels = append(s.labels, labelInfo{kind: "loop"})
	body := s.parseNestedStatement()
	s.labels = s.labels[:len(s.labels)-1]
	n := &ast.WhileStatement{BaseNode: start, Test: test, Body: body}
	s.finishNode(&n.BaseNode, "WhileStatement")
	return n
}

func (s *State) parseDoWhileStatement() ast.Statement {
	start := s.startNode()
	s.next()
	s.labels = append(s.labels, labelInfo{kind: "loop"})
	body := s.parseNestedStatement()
	s.labels = s.labels[:len(s.labels)-1]
	s.expect(token.While)
	s.expect(token.ParenL)
	test := s.parseExpression(false)
	s.expect(token.ParenR)
	if s.cur.Type == token.Semi {
		s.next()
	}
	n := &ast.DoWhileStatement{BaseNode: start, Test: test, Body: body}
	s.finishNode(&n.BaseNode, "DoWhileStatement")
	return n
}

// parseForStatement disambiguates for/for-in/for-of/for-await by parsing
// the init clause with noIn=true and then inspecting the following token
// (spec.md §4.G).
func (s *State) parseForStatement() ast.Statement {
	start := s.startNode()
	s.next()
	isAwait := false
	if s.cur.Type == token.Name && s.cur.Value == token.KwAwait {
		isAwait = true
		s.next()
	}
	s.expect(token.ParenL)

	var init ast.Node
	if s.cur.Type == token.Semi {
		init = nil
	} else if s.cur.Type == token.Var || s.cur.Type == token.Let || s.cur.Type == token.Const {
		declStart := s.startNode()
		kind := map[token.Type]string{token.Var: "var", token.Let: "let", token.Const: "const"}[s.cur.Type]
		s.next()
		idStart := s.startNode()
		id := s.parseBindingAtom()
		if s.cur.Type == token.In || (s.cur.Type == token.Name && s.cur.Value == token.KwOf) {
			decl := &ast.VariableDeclaration{BaseNode: declStart, Kind: kind, Declarations: []*ast.VariableDeclarator{
				{BaseNode: idStart, ID: id},
			}}
			s.finishNode(&decl.Declarations[0].BaseNode, "VariableDeclarator")
			return s.finishForInOf(start, decl, isAwait)
		}
		var initExpr ast.Expression
		if s.cur.Type == token.Eq {
			s.next()
			initExpr = s.parseMaybeAssign(true)
		}
		d0 := &ast.VariableDeclarator{BaseNode: idStart, ID: id, Init: initExpr}
		s.finishNode(&d0.BaseNode, "VariableDeclarator")
		decls := []*ast.VariableDeclarator{d0}
		for s.cur.Type == token.Comma {
			s.next()
			dStart := s.startNode()
			did := s.parseBindingAtom()
			var dInit ast.Expression
			if s.cur.Type == token.Eq {
				s.next()
				dInit = s.parseMaybeAssign(true)
			}
			d := &ast.VariableDeclarator{BaseNode: dStart, ID: did, Init: dInit}
			s.finishNode(&d.BaseNode, "VariableDeclarator")
			decls = append(decls, d)
		}
		decl := &ast.VariableDeclaration{BaseNode: declStart, Kind: kind, Declarations: decls}
		s.finishNode(&decl.BaseNode, "VariableDeclaration")
		init = decl
	} else {
		exprStart := s.startNode()
		expr := s.parseExpression(true)
		if s.cur.Type == token.In || (s.cur.Type == token.Name && s.cur.Value == token.KwOf) {
			target := s.toAssignable(expr, false)
			return s.finishForInOf(start, target, isAwait)
		}
		_ = exprStart
		init = expr
	}

	s.expect(token.Semi)
	var test, update ast.Expression
	if s.cur.Type != token.Semi {
		test = s.parseExpression(false)
	}
	s.expect(token.Semi)
	if s.cur.Type != token.ParenR {
		update = s.parseExpression(false)
	}
	s.expect(token.ParenR)
	s.labels = append(s.labels, labelInfo{kind: "loop"})
	body := s.parseNestedStatement()
	s.labels = s.labels[:len(s.labels)-1]
	n := &ast.ForStatement{BaseNode: start, Init: init, Test: test, Update: update, Body: body}
	s.finishNode(&n.BaseNode, "ForStatement")
	return n
}

func (s *State) finishForInOf(start ast.BaseNode, left ast.Node, isAwait bool) ast.Statement {
	isOf := s.cur.Type == token.Name && s.cur.Value == token.KwOf
	s.next()
	var right ast.Expression
	if isOf {
		right = s.parseMaybeAssign(false)
	} else {
		right = s.parseExpression(false)
	}
	s.expect(token.ParenR)
	s.labels = append(s.labels, labelInfo{kind: "loop"})
	body := s.parseNestedStatement()
	s.labels = s.labels[:len(s.labels)-1]
	if isOf {
		n := &ast.ForOfStatement{BaseNode: start, Left: left, Right: right, Body: body, Await: isAwait}
		s.finishNode(&n.BaseNode, "ForOfStatement")
		return n
	}
	n := &ast.ForInStatement{BaseNode: start, Left: left, Right: right, Body: body}
	s.finishNode(&n.BaseNode, "ForInStatement")
	return n
}

func (s *State) parseBreakContinue(isBreak bool) ast.Statement {
	start := s.startNode()
	s.next()
	var label *ast.Identifier
	if !s.canInsertSemicolon() && s.cur.Type == token.Name {
		label = s.parseIdentifier()
	}
	switch {
	case label != nil:
		info := s.findLabel(label.Name)
		if info == nil || (!isBreak && info.kind != "loop") {
			if isBreak {
				s.raise(start.Start_, diagnostics.KindScope, diagnostics.ErrIllegalBreak)
			}
			s.raise(start.Start_, diagnostics.KindScope, diagnostics.ErrIllegalContinue)
		}
	case isBreak:
		if len(s.labels) == 0 {
			s.raise(start.Start_, diagnostics.KindScope, diagnostics.ErrIllegalBreak)
		}
	default:
		if !s.hasEnclosingLoop() {
			s.raise(start.Start_, diagnostics.KindScope, diagnostics.ErrIllegalContinue)
		}
	}
	s.semicolon()
	if isBreak {
		n := &ast.BreakStatement{BaseNode: start, Label: label}
		s.finishNode(&n.BaseNode, "BreakStatement")
		return n
	}
	n := &ast.ContinueStatement{BaseNode: start, Label: label}
	s.finishNode(&n.BaseNode, "ContinueStatement")
	return n
}

func (s *State) parseWithStatement() ast.Statement {
	start := s.startNode()
	if s.strict {
		s.raise(start.Start_, diagnostics.KindScope, diagnostics.ErrStrictWith)
	}
	s.next()
	s.expect(token.ParenL)
	obj := s.parseExpression(false)
	s.expect(token.ParenR)
	body := s.parseNestedStatement()
	n := &ast.WithStatement{BaseNode: start, Object: obj, Body: body}
	s.finishNode(&n.BaseNode, "WithStatement")
	return n
}

func (s *State) parseDebuggerStatement() ast.Statement {
	start := s.startNode()
	s.next()
	s.semicolon()
	n := &ast.DebuggerStatement{BaseNode: start}
	s.finishNode(&n.BaseNode, "DebuggerStatement")
	return n
}

func (s *State) parseLabeledStatement() ast.Statement {
	start := s.startNode()
	id := s.parseIdentifier()
	s.expect(token.Colon)
	// kind reflects only the directly labeled statement, not further label
	// chains (e.g. `a: b: while (...) {}` records "loop" for b but not a).
	kind := ""
	if s.cur.Type == token.While || s.cur.Type == token.Do || s.cur.Type == token.For {
		kind = "loop"
	}
	s.labels = append(s.labels, labelInfo{name: id.Name, kind: kind, statementStart: start.Start_})
	body := s.parseNestedStatement()
	s.labels = s.labels[:len(s.labels)-1]
	n := &ast.LabeledStatement{BaseNode: start, Label: *id, Body: body}
	s.finishNode(&n.BaseNode, "LabeledStatement")
	return n
}
