package parser

// Class declaration/expression parsing and decorators, grounded the same
// way as statements.go: recursive descent following spec.md §4.G/§3's
// class node shapes, with no direct teacher analogue (funxy has no class
// syntax) beyond the general recursive-descent structuring habit carried
// throughout this package.

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) parseClassDeclaration() ast.Statement {
	return s.parseClass(false, nil).(ast.Statement)
}

func (s *State) parseClassExpr() ast.Expression {
	return s.parseClass(true, nil).(ast.Expression)
}

func (s *State) parseDecoratedDeclaration() ast.Statement {
	var decorators []*ast.Decorator
	for s.cur.Type == token.At {
		dStart := s.startNode()
		s.next()
		expr := s.parseExprSubscripts()
		d := &ast.Decorator{BaseNode: dStart, Expression: expr}
		s.finishNode(&d.BaseNode, "Decorator")
		decorators = append(decorators, d)
	}
	if s.cur.Type != token.Class && !(s.cur.Type == token.Export) {
		s.raise(s.cur.Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "decorators can only precede a class or export declaration")
	}
	if s.cur.Type == token.Export {
		s.checkTopLevelModuleSyntax(s.cur.Start)
		return s.parseExportDeclarationWithDecorators(decorators)
	}
	return s.parseClass(false, decorators).(ast.Statement)
}

// parseClass returns either *ast.ClassDeclaration or *ast.ClassExpression
// depending on isExpr; both implement Statement/Expression respectively, so
// it returns ast.Node and callers assert the shape they expect.
func (s *State) parseClass(isExpr bool, decorators []*ast.Decorator) ast.Node {
	start := s.startNode()
	s.next() // class
	prevStrict := s.strict
	s.strict = true // class bodies are always strict (spec.md §4.G)
	var id *ast.Identifier
	if s.cur.Type == token.Name {
		id = s.parseIdentifier()
	}
	var superClass ast.Expression
	if s.cur.Type == token.Extends {
		s.next()
		superStart := s.startNode()
		superClass = s.parseExprSubscripts()
		_ = superStart
	}
	s.classDepth++
	body := s.parseClassBody()
	s.classDepth--
	s.strict = prevStrict

	if isExpr {
		n := &ast.ClassExpression{BaseNode: start, ID: id, SuperClass: superClass, Body: body, Decorators: decorators}
		s.finishNode(&n.BaseNode, "ClassExpression")
		return n
	}
	n := &ast.ClassDeclaration{BaseNode: start, ID: id, SuperClass: superClass, Body: body, Decorators: decorators}
	s.finishNode(&n.BaseNode, "ClassDeclaration")
	return n
}

func (s *State) parseClassBody() *ast.ClassBody {
	start := s.startNode()
	s.expect(token.BraceL)
	var members []ast.Node
	for s.cur.Type != token.BraceR {
		if s.cur.Type == token.Semi {
			s.next()
			continue
		}
		if s.hooks.ParseClassMember != nil {
			var decorators []*ast.Decorator
			for s.cur.Type == token.At {
				dStart := s.startNode()
				s.next()
				expr := s.parseExprSubscripts()
				d := &ast.Decorator{BaseNode: dStart, Expression: expr}
				s.finishNode(&d.BaseNode, "Decorator")
				decorators = append(decorators, d)
			}
			if s.hooks.ParseClassMember(s, &members, decorators) {
				continue
			}
		}
		members = append(members, s.parseClassMember())
	}
	s.expect(token.BraceR)
	n := &ast.ClassBody{BaseNode: start, Body: members}
	s.finishNode(&n.BaseNode, "ClassBody")
	return n
}

func (s *State) parseClassMember() ast.Node {
	start := s.startNode()
	var decorators []*ast.Decorator
	for s.cur.Type == token.At {
		dStart := s.startNode()
		s.next()
		expr := s.parseExprSubscripts()
		d := &ast.Decorator{BaseNode: dStart, Expression: expr}
		s.finishNode(&d.BaseNode, "Decorator")
		decorators = append(decorators, d)
	}

	static := false
	if s.cur.Type == token.Name && s.cur.Value == token.KwStatic {
		pk := s.peekToken()
		if pk.Type != token.ParenL && pk.Type != token.Eq && pk.Type != token.Semi {
			static = true
			s.next()
			if s.cur.Type == token.BraceL {
				body := s.parseStaticBlockBody()
				n := &ast.StaticBlock{BaseNode: start, Body: body}
				s.finishNode(&n.BaseNode, "StaticBlock")
				return n
			}
		}
	}

	async, generator, kind := false, false, "method"
	if s.cur.Type == token.Name && s.cur.Value == token.KwAsync && s.peekNotMemberDelim() {
		async = true
		s.next()
	}
	if s.cur.Type == token.Star {
		generator = true
		s.next()
	}
	if s.cur.Type == token.Name && (s.cur.Value == token.KwGet || s.cur.Value == token.KwSet) && s.peekNotMemberDelim() {
		kind = s.cur.Value.(string)
		s.next()
	}

	if s.cur.Type == token.PrivateName {
		return s.parsePrivateClassMember(start, static, async, generator, kind, decorators)
	}

	computed := s.cur.Type == token.BracketL
	var key ast.Expression
	if computed {
		s.next()
		key = s.parseMaybeAssign(false)
		s.expect(token.BracketR)
	} else {
		key = s.parsePropertyNameOrLiteral()
	}

	if keyLiteralName(key) == "constructor" && !computed {
		kind = "constructor"
	}

	if s.cur.Type == token.ParenL {
		params := s.parseBindingList(token.ParenL, token.ParenR, false)
		prevFn, prevGen, prevAsync, prevMethod := s.inFunction, s.inGenerator, s.inAsync, s.inMethod
		s.inFunction, s.inGenerator, s.inAsync, s.inMethod = true, generator, async, true
		body := s.parseBlock()
		s.checkParamList(params)
		s.inFunction, s.inGenerator, s.inAsync, s.inMethod = prevFn, prevGen, prevAsync, prevMethod
		n := &ast.ClassMethod{BaseNode: start, Kind: kind, Key: key, Computed: computed, Static: static, Params: params, Body: body, Generator: generator, Async: async, Decorators: decorators}
		s.finishNode(&n.BaseNode, "ClassMethod")
		return n
	}

	var value ast.Expression
	if s.cur.Type == token.Eq {
		s.next()
		value = s.parseMaybeAssign(false)
	}
	s.semicolon()
	n := &ast.ClassProperty{BaseNode: start, Key: key, Value: value, Computed: computed, Static: static, Decorators: decorators}
	s.finishNode(&n.BaseNode, "ClassProperty")
	return n
}

func (s *State) parsePrivateClassMember(start ast.BaseNode, static, async, generator bool, kind string, decorators []*ast.Decorator) ast.Node {
	idStart := s.startNode()
	name, _ := s.cur.Value.(string)
	s.next()
	id := &ast.Identifier{BaseNode: idStart, Name: name}
	s.finishNode(&id.BaseNode, "Identifier")
	key := &ast.PrivateName{BaseNode: idStart, ID: id}
	s.finishNode(&key.BaseNode, "PrivateName")

	if s.cur.Type == token.ParenL {
		params := s.parseBindingList(token.ParenL, token.ParenR, false)
		prevFn, prevGen, prevAsync, prevMethod := s.inFunction, s.inGenerator, s.inAsync, s.inMethod
		s.inFunction, s.inGenerator, s.inAsync, s.inMethod = true, generator, async, true
		body := s.parseBlock()
		s.checkParamList(params)
		s.inFunction, s.inGenerator, s.inAsync, s.inMethod = prevFn, prevGen, prevAsync, prevMethod
		n := &ast.ClassPrivateMethod{BaseNode: start, Kind: kind, Key: key, Static: static, Params: params, Body: body, Generator: generator, Async: async, Decorators: decorators}
		s.finishNode(&n.BaseNode, "ClassPrivateMethod")
		return n
	}
	var value ast.Expression
	if s.cur.Type == token.Eq {
		s.next()
		value = s.parseMaybeAssign(false)
	}
	s.semicolon()
	n := &ast.ClassPrivateProperty{BaseNode: start, Key: key, Value: value, Static: static, Decorators: decorators}
	s.finishNode(&n.BaseNode, "ClassPrivateProperty")
	return n
}

func (s *State) parseStaticBlockBody() []ast.Statement {
	s.expect(token.BraceL)
	s.blockDepth++
	body, _ := s.parseDirectivesAndBody(token.BraceR)
	s.blockDepth--
	s.expect(token.BraceR)
	return body
}

func (s *State) peekNotMemberDelim() bool {
	pk := s.peekToken()
	switch pk.Type {
	case token.ParenL, token.Eq, token.Semi, token.BraceR:
		return false
	}
	return true
}
