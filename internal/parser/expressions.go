package parser

// Component F: expression parsing. Precedence climbing (token.Kind.BinOp)
// combined with recursive descent for primaries, grounded on mcgru-funxy's
// internal/parser/expressions.go Pratt loop (parseExpression(precedence),
// parsePrefixExpression/parseInfixExpression/parseRightAssocInfixExpression)
// — kept the same depth-first shape, generalized from funxy's user-
// definable-operator table to JS's fixed operator set, and extended with
// the speculative arrow-vs-paren / async-arrow disambiguation spec.md
// §4.E/§4.F requires, which funxy's grammar never needed (funxy has no
// arrow-function/paren ambiguity: its lambda syntax is unambiguous).

import (
	"math/big"
	"strconv"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) startNode() ast.BaseNode {
	return ast.BaseNode{Start_: s.cur.Start, Loc_: &ast.SourceLocation{Start: s.cur.StartPos}}
}

func (s *State) finishNode(b *ast.BaseNode, typ string) {
	b.Type_ = typ
	b.End_ = s.lastTokEnd
	if b.Loc_ != nil {
		b.Loc_.End = s.lastTokEndLoc
		b.Loc_.Filename = s.opts.SourceFilename
	}
	if s.opts.Ranges {
		b.Range_ = &[2]int{b.Start_, b.End_}
	}
	s.claimComments(b)
}

// parseExpression parses a full Expression, including top-level comma
// (SequenceExpression). noIn suppresses `in` as a binary operator (for-
// statement head parsing, spec.md §4.G).
func (s *State) parseExpression(noIn bool) ast.Expression {
	start := s.startNode()
	expr := s.parseMaybeAssign(noIn)
	if s.cur.Type != token.Comma {
		return expr
	}
	exprs := []ast.Expression{expr}
	for s.cur.Type == token.Comma {
		s.next()
		exprs = append(exprs, s.parseMaybeAssign(noIn))
	}
	n := &ast.SequenceExpression{BaseNode: start, Expressions: exprs}
	s.finishNode(&n.BaseNode, "SequenceExpression")
	return n
}

// parseMaybeAssign resolves yield, arrow functions, and assignment
// expressions, checked in that order (spec.md §4.F).
func (s *State) parseMaybeAssign(noIn bool) ast.Expression {
	if s.inGenerator && s.cur.Type == token.Name && s.cur.Value == token.KwYield {
		return s.parseYield()
	}

	if arrow := s.tryParseArrow(); arrow != nil {
		return arrow
	}

	start := s.startNode()
	left := s.parseConditional(noIn)

	if token.KindOf(s.cur.Type).IsAssign {
		op, _ := s.cur.Value.(string)
		if op == "" {
			op = "="
		}
		s.next()
		target := s.toAssignable(left, false)
		right := s.parseMaybeAssign(noIn)
		n := &ast.AssignmentExpression{BaseNode: start, Operator: op, Left: target, Right: right}
		s.finishNode(&n.BaseNode, "AssignmentExpression")
		return n
	}
	return left
}

func (s *State) parseYield() ast.Expression {
	start := s.startNode()
	s.next() // yield
	delegate := false
	if s.cur.Type == token.Star {
		delegate = true
		s.next()
	}
	var arg ast.Expression
	if !s.cur.NewlineBefore && s.exprCanFollowYield() {
		arg = s.parseMaybeAssign(false)
	}
	n := &ast.YieldExpression{BaseNode: start, Argument: arg, Delegate: delegate}
	s.finishNode(&n.BaseNode, "YieldExpression")
	return n
}

func (s *State) exprCanFollowYield() bool {
	switch s.cur.Type {
	case token.Semi, token.ParenR, token.BracketR, token.BraceR, token.Colon, token.Comma, token.EOF:
		return false
	}
	return true
}

// tryParseArrow speculatively attempts `(params) => body` or `ident => body`
// or `async (...) => body`; returns nil without side effects if the
// lookahead doesn't resolve to an arrow (spec.md §4.E).
func (s *State) tryParseArrow() ast.Expression {
	isAsync := false
	if s.cur.Type == token.Name && s.cur.Value == token.KwAsync && !s.peekToken().NewlineBefore {
		pk := s.peekToken()
		if pk.Type == token.ParenL || pk.Type == token.Name {
			isAsync = true
		}
	}

	if s.cur.Type == token.Name && !isAsync {
		pk := s.peekToken()
		if pk.Type == token.Arrow && !pk.NewlineBefore {
			start := s.startNode()
			id := s.parseIdentifier()
			s.expect(token.Arrow)
			return s.finishArrow(start, []ast.Pattern{id}, false)
		}
		return nil
	}

	if s.cur.Type != token.ParenL && !isAsync {
		return nil
	}

	result, parseErr := s.tryParse(func(c *State) interface{} {
		start := c.startNode()
		async := false
		if c.cur.Type == token.Name && c.cur.Value == token.KwAsync {
			async = true
			c.next()
		}
		if c.cur.Type == token.Name && async {
			id := c.parseIdentifier()
			if c.cur.Type != token.Arrow || c.cur.NewlineBefore {
				panic(diagnostics.New(diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, c.cur.Start, c.cur.StartPos, "=>", c.cur.Type))
			}
			c.next()
			return c.finishArrow(start, []ast.Pattern{id}, async)
		}
		if c.cur.Type != token.ParenL {
			panic(diagnostics.New(diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, c.cur.Start, c.cur.StartPos, "(", c.cur.Type))
		}
		params := c.parseBindingList(token.ParenL, token.ParenR, true)
		if c.cur.Type != token.Arrow || c.cur.NewlineBefore {
			panic(diagnostics.New(diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, c.cur.Start, c.cur.StartPos, "=>", c.cur.Type))
		}
		c.next()
		return c.finishArrow(start, params, async)
	})
	if parseErr != nil {
		return nil
	}
	return result.(ast.Expression)
}

func (s *State) finishArrow(start ast.BaseNode, params []ast.Pattern, async bool) ast.Expression {
	s.pushFunctionScope(true)
	prevInFn, prevInGen, prevInAsync := s.inFunction, s.inGenerator, s.inAsync
	s.inFunction, s.inGenerator, s.inAsync = true, false, async
	var body ast.Node
	isExprBody := s.cur.Type != token.BraceL
	if isExprBody {
		body = s.parseMaybeAssign(false)
	} else {
		body = s.parseBlock()
	}
	s.checkParamList(params)
	s.inFunction, s.inGenerator, s.inAsync = prevInFn, prevInGen, prevInAsync
	if !isExprBody {
		s.popCtx()
	}
	n := &ast.ArrowFunctionExpression{BaseNode: start, Params: params, Body: body, Async: async, Expression: isExprBody}
	s.finishNode(&n.BaseNode, "ArrowFunctionExpression")
	return n
}

func (s *State) parseConditional(noIn bool) ast.Expression {
	start := s.startNode()
	test := s.parseBinaryExpr(noIn, 1)
	if s.cur.Type != token.Question {
		return test
	}
	s.next()
	cons := s.parseMaybeAssign(false)
	s.expect(token.Colon)
	alt := s.parseMaybeAssign(noIn)
	n := &ast.ConditionalExpression{BaseNode: start, Test: test, Consequent: cons, Alternate: alt}
	s.finishNode(&n.BaseNode, "ConditionalExpression")
	return n
}

// parseBinaryExpr implements precedence climbing using token.Kind.BinOp
// (spec.md §4.B's table), folding `&&`/`||`/`??` and ordinary binary
// operators into LogicalExpression/BinaryExpression respectively.
func (s *State) parseBinaryExpr(noIn bool, minPrec int) ast.Expression {
	start := s.cur.Start
	startLoc := s.cur.StartPos
	left := s.parseMaybeUnary()
	return s.parseBinaryRHS(start, startLoc, left, minPrec, noIn)
}

func (s *State) parseBinaryRHS(start int, startLoc token.Position, left ast.Expression, minPrec int, noIn bool) ast.Expression {
	for {
		kind := token.KindOf(s.cur.Type)
		if kind.BinOp == 0 || kind.BinOp < minPrec {
			return left
		}
		if s.cur.Type == token.In && noIn {
			return left
		}
		op, _ := s.cur.Value.(string)
		if op == "" {
			op = kind.Label
		}
		if s.cur.Type == token.In {
			op = "in"
		} else if s.cur.Type == token.Instanceof {
			op = "instanceof"
		}
		prec := kind.BinOp
		s.next()
		nextMin := prec + 1
		if kind.RightAssociative {
			nextMin = prec
		}
		right := s.parseMaybeUnary()
		right = s.parseBinaryRHS(s.cur.Start, s.cur.StartPos, right, nextMin, noIn)

		base := ast.BaseNode{Start_: start, Loc_: &ast.SourceLocation{Start: startLoc}}
		if op == "&&" || op == "||" || op == "??" {
			n := &ast.LogicalExpression{BaseNode: base, Operator: op, Left: left, Right: right}
			s.finishNode(&n.BaseNode, "LogicalExpression")
			left = n
		} else {
			n := &ast.BinaryExpression{BaseNode: base, Operator: op, Left: left, Right: right}
			s.finishNode(&n.BaseNode, "BinaryExpression")
			left = n
		}
	}
}

func (s *State) parseMaybeUnary() ast.Expression {
	kind := token.KindOf(s.cur.Type)
	if kind.Prefix && s.cur.Type != token.IncDec {
		start := s.startNode()
		op, _ := s.cur.Value.(string)
		if op == "" {
			op = kind.Label
		}
		if s.cur.Type == token.Typeof {
			op = "typeof"
		} else if s.cur.Type == token.Void {
			op = "void"
		} else if s.cur.Type == token.Delete {
			op = "delete"
		}
		s.next()
		arg := s.parseMaybeUnary()
		if arg.NodeType() == "BinaryExpression" {
			if be, ok := arg.(*ast.BinaryExpression); ok && be.Operator == "**" {
				s.raise(start.Start_, diagnostics.KindGrammar, diagnostics.ErrUnparenthesizedUnaryPower)
			}
		}
		n := &ast.UnaryExpression{BaseNode: start, Operator: op, Prefix: true, Argument: arg}
		s.finishNode(&n.BaseNode, "UnaryExpression")
		return n
	}
	if s.cur.Type == token.IncDec {
		start := s.startNode()
		op, _ := s.cur.Value.(string)
		s.next()
		arg := s.parseMaybeUnary()
		n := &ast.UpdateExpression{BaseNode: start, Operator: op, Prefix: true, Argument: arg}
		s.finishNode(&n.BaseNode, "UpdateExpression")
		return n
	}
	if s.cur.Type == token.Name && s.cur.Value == token.KwAwait && s.inAsync {
		start := s.startNode()
		s.next()
		arg := s.parseMaybeUnary()
		n := &ast.AwaitExpression{BaseNode: start, Argument: arg}
		s.finishNode(&n.BaseNode, "AwaitExpression")
		return n
	}

	expr := s.parseExprSubscripts()
	if s.cur.Type == token.IncDec && !s.cur.NewlineBefore {
		start := ast.BaseNode{Start_: exprStartOffset(expr), Loc_: &ast.SourceLocation{Start: locStart(expr)}}
		op, _ := s.cur.Value.(string)
		s.next()
		n := &ast.UpdateExpression{BaseNode: start, Operator: op, Prefix: false, Argument: expr}
		s.finishNode(&n.BaseNode, "UpdateExpression")
		return n
	}
	return expr
}

// locStart/exprStartOffset recover the start position/offset of an
// already-built expression when it becomes the left operand of a postfix
// `++`/`--`; every node's BaseNode already stores this, so these are thin
// accessors rather than a second source of truth.
func locStart(n ast.Node) token.Position {
	if n.Location() != nil {
		return n.Location().Start
	}
	return token.Position{}
}

func exprStartOffset(n ast.Node) int {
	start, _ := n.Span()
	return start
}

func (s *State) parseExprSubscripts() ast.Expression {
	start := s.startNode()
	expr := s.parseExprAtom()
	return s.parseSubscripts(expr, start)
}

func (s *State) parseSubscripts(base ast.Expression, start ast.BaseNode) ast.Expression {
	for {
		switch {
		case s.cur.Type == token.Dot:
			s.next()
			prop := s.parsePropertyName()
			n := &ast.MemberExpression{BaseNode: start, Object: base, Property: prop, Computed: false}
			s.finishNode(&n.BaseNode, "MemberExpression")
			base = n

		case s.cur.Type == token.QuestionDot:
			s.next()
			if s.cur.Type == token.ParenL {
				args := s.parseCallArguments()
				n := &ast.OptionalCallExpression{BaseNode: start, Callee: base, Arguments: args, Optional: true}
				s.finishNode(&n.BaseNode, "OptionalCallExpression")
				base = n
				continue
			}
			computed := s.cur.Type == token.BracketL
			var prop ast.Expression
			if computed {
				s.next()
				prop = s.parseExpression(false)
				s.expect(token.BracketR)
			} else {
				prop = s.parsePropertyName()
			}
			n := &ast.OptionalMemberExpression{BaseNode: start, Object: base, Property: prop, Computed: computed, Optional: true}
			s.finishNode(&n.BaseNode, "OptionalMemberExpression")
			base = n

		case s.cur.Type == token.BracketL:
			s.next()
			prop := s.parseExpression(false)
			s.expect(token.BracketR)
			n := &ast.MemberExpression{BaseNode: start, Object: base, Property: prop, Computed: true}
			s.finishNode(&n.BaseNode, "MemberExpression")
			base = n

		case s.cur.Type == token.ParenL:
			args := s.parseCallArguments()
			n := &ast.CallExpression{BaseNode: start, Callee: base, Arguments: args}
			s.finishNode(&n.BaseNode, "CallExpression")
			base = n

		case s.cur.Type == token.BackQuote:
			quasi := s.parseTemplateLiteral()
			n := &ast.TaggedTemplateExpression{BaseNode: start, Tag: base, Quasi: quasi}
			s.finishNode(&n.BaseNode, "TaggedTemplateExpression")
			base = n

		default:
			return base
		}
	}
}

func (s *State) parseCallArguments() []ast.Expression {
	s.expect(token.ParenL)
	var args []ast.Expression
	for s.cur.Type != token.ParenR {
		if s.cur.Type == token.Ellipsis {
			start := s.startNode()
			s.next()
			arg := s.parseMaybeAssign(false)
			n := &ast.SpreadElement{BaseNode: start, Argument: arg}
			s.finishNode(&n.BaseNode, "SpreadElement")
			args = append(args, n)
		} else {
			args = append(args, s.parseMaybeAssign(false))
		}
		if s.cur.Type == token.Comma {
			s.next()
		} else {
			break
		}
	}
	s.expect(token.ParenR)
	return args
}

func (s *State) parsePropertyName() ast.Expression {
	start := s.startNode()
	if s.cur.Type == token.PrivateName {
		name, _ := s.cur.Value.(string)
		s.next()
		id := &ast.Identifier{BaseNode: start, Name: name}
		s.finishNode(&id.BaseNode, "Identifier")
		pn := &ast.PrivateName{BaseNode: start, ID: id}
		return pn
	}
	name := s.identLikeName()
	id := &ast.Identifier{BaseNode: start, Name: name}
	s.finishNode(&id.BaseNode, "Identifier")
	return id
}

// identLikeName consumes the current token as a property name, permitting
// any keyword to be used there (spec.md §4.F: `.class`, `.if`, ... are
// legal member-expression properties).
func (s *State) identLikeName() string {
	if s.cur.Type == token.Name {
		name, _ := s.cur.Value.(string)
		s.next()
		return name
	}
	kind := token.KindOf(s.cur.Type)
	if kind.Keyword != "" {
		name := kind.Keyword
		s.next()
		return name
	}
	s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, "identifier", s.cur.Type)
	return ""
}

func (s *State) parseIdentifier() *ast.Identifier {
	start := s.startNode()
	name := s.identLikeName()
	id := &ast.Identifier{BaseNode: start, Name: name}
	s.finishNode(&id.BaseNode, "Identifier")
	return id
}

func (s *State) parseExprAtom() ast.Expression {
	if s.hooks.ParsePrimary != nil {
		if n := s.hooks.ParsePrimary(s); n != nil {
			return n
		}
	}

	switch s.cur.Type {
	case token.Num:
		start := s.startNode()
		v, _ := s.cur.Value.(float64)
		raw := s.input[s.cur.Start:s.cur.End]
		s.next()
		n := &ast.NumericLiteral{BaseNode: start, Value: v, Raw: raw}
		s.finishNode(&n.BaseNode, "NumericLiteral")
		return n

	case token.BigInt:
		start := s.startNode()
		v, _ := s.cur.Value.(*big.Int)
		raw := s.input[s.cur.Start:s.cur.End]
		s.next()
		n := &ast.BigIntLiteral{BaseNode: start, Value: v, Raw: raw}
		s.finishNode(&n.BaseNode, "BigIntLiteral")
		return n

	case token.String:
		start := s.startNode()
		v, _ := s.cur.Value.(string)
		raw := s.input[s.cur.Start:s.cur.End]
		s.next()
		n := &ast.StringLiteral{BaseNode: start, Value: v, Raw: raw}
		s.finishNode(&n.BaseNode, "StringLiteral")
		return n

	case token.Regexp:
		start := s.startNode()
		v, _ := s.cur.Value.(token.RegexpValue)
		s.next()
		n := &ast.RegExpLiteral{BaseNode: start, Pattern: v.Pattern, Flags: v.Flags}
		s.finishNode(&n.BaseNode, "RegExpLiteral")
		return n

	case token.True, token.False:
		start := s.startNode()
		v := s.cur.Type == token.True
		s.next()
		n := &ast.BooleanLiteral{BaseNode: start, Value: v}
		s.finishNode(&n.BaseNode, "BooleanLiteral")
		return n

	case token.Null:
		start := s.startNode()
		s.next()
		n := &ast.NullLiteral{BaseNode: start}
		s.finishNode(&n.BaseNode, "NullLiteral")
		return n

	case token.This:
		start := s.startNode()
		s.next()
		n := &ast.ThisExpression{BaseNode: start}
		s.finishNode(&n.BaseNode, "ThisExpression")
		return n

	case token.Super:
		start := s.startNode()
		if !s.inMethod && !s.opts.AllowSuperOutsideMethod {
			s.raise(s.cur.Start, diagnostics.KindScope, diagnostics.ErrIllegalSuper)
		}
		s.next()
		n := &ast.Super{BaseNode: start}
		s.finishNode(&n.BaseNode, "Super")
		return n

	case token.Name:
		name, _ := s.cur.Value.(string)
		if name == token.KwAsync {
			pk := s.peekToken()
			if pk.Type == token.Function && !pk.NewlineBefore {
				return s.parseFunctionExpr(true)
			}
		}
		return s.parseIdentifier()

	case token.PrivateName:
		start := s.startNode()
		name, _ := s.cur.Value.(string)
		s.next()
		id := &ast.Identifier{BaseNode: start, Name: name}
		s.finishNode(&id.BaseNode, "Identifier")
		n := &ast.PrivateName{BaseNode: start, ID: id}
		s.finishNode(&n.BaseNode, "PrivateName")
		return n

	case token.ParenL:
		return s.parseParenAndDistinguishExpression()

	case token.BracketL:
		return s.parseArrayExpr()

	case token.BraceL:
		return s.parseObjectExpr()

	case token.Function:
		return s.parseFunctionExpr(false)

	case token.Class:
		return s.parseClassExpr()

	case token.New:
		return s.parseNewExpr()

	case token.BackQuote:
		return s.parseTemplateLiteral()
	}

	s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrNoPrefixParseFn, s.cur.Type)
	return nil
}

// parseParenAndDistinguishExpression parses `( Expression )` into a
// ParenthesizedExpression. An arrow parameter list never reaches here:
// parseMaybeAssign's tryParseArrow has already claimed any `(` followed by
// a parameter list and `=>`.
func (s *State) parseParenAndDistinguishExpression() ast.Expression {
	start := s.startNode()
	s.expect(token.ParenL)
	expr := s.parseExpression(false)
	s.expect(token.ParenR)
	n := &ast.ParenthesizedExpression{BaseNode: start, Expression: expr}
	s.finishNode(&n.BaseNode, "ParenthesizedExpression")
	return n
}

func (s *State) parseNewExpr() ast.Expression {
	start := s.startNode()
	s.next() // new
	if s.cur.Type == token.Dot {
		if !s.inFunction {
			s.raise(start.Start_, diagnostics.KindScope, diagnostics.ErrIllegalNewTarget)
		}
		s.next()
		if s.cur.Type != token.Name || s.cur.Value != "target" {
			s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, "target", s.cur.Type)
		}
		s.next()
		meta := &ast.Identifier{Name: "new"}
		prop := &ast.Identifier{Name: "target"}
		n := &ast.MetaProperty{BaseNode: start, Meta: meta, Property: prop}
		s.finishNode(&n.BaseNode, "MetaProperty")
		return n
	}
	calleeStart := s.startNode()
	callee := s.parseExprAtom()
	callee = s.parseSubscriptsNoCall(callee, calleeStart)
	var args []ast.Expression
	if s.cur.Type == token.ParenL {
		args = s.parseCallArguments()
	}
	n := &ast.NewExpression{BaseNode: start, Callee: callee, Arguments: args}
	s.finishNode(&n.BaseNode, "NewExpression")
	return s.parseSubscripts(n, start)
}

// parseSubscriptsNoCall parses member accesses but not call expressions,
// because `new a.b.c(args)` binds `(args)` to the NewExpression, not to an
// inner CallExpression (spec.md §4.F new.target / new-callee precedence).
func (s *State) parseSubscriptsNoCall(base ast.Expression, start ast.BaseNode) ast.Expression {
	for {
		switch s.cur.Type {
		case token.Dot:
			s.next()
			prop := s.parsePropertyName()
			n := &ast.MemberExpression{BaseNode: start, Object: base, Property: prop}
			s.finishNode(&n.BaseNode, "MemberExpression")
			base = n
		case token.BracketL:
			s.next()
			prop := s.parseExpression(false)
			s.expect(token.BracketR)
			n := &ast.MemberExpression{BaseNode: start, Object: base, Property: prop, Computed: true}
			s.finishNode(&n.BaseNode, "MemberExpression")
			base = n
		default:
			return base
		}
	}
}

func (s *State) parseArrayExpr() ast.Expression {
	start := s.startNode()
	s.expect(token.BracketL)
	var elems []ast.Expression
	for s.cur.Type != token.BracketR {
		if s.cur.Type == token.Comma {
			elems = append(elems, nil)
			s.next()
			continue
		}
		if s.cur.Type == token.Ellipsis {
			eStart := s.startNode()
			s.next()
			arg := s.parseMaybeAssign(false)
			n := &ast.SpreadElement{BaseNode: eStart, Argument: arg}
			s.finishNode(&n.BaseNode, "SpreadElement")
			elems = append(elems, n)
		} else {
			elems = append(elems, s.parseMaybeAssign(false))
		}
		if s.cur.Type == token.Comma {
			s.next()
		} else {
			break
		}
	}
	s.expect(token.BracketR)
	n := &ast.ArrayExpression{BaseNode: start, Elements: elems}
	s.finishNode(&n.BaseNode, "ArrayExpression")
	return n
}

func (s *State) parseObjectExpr() ast.Expression {
	start := s.startNode()
	s.expect(token.BraceL)
	var props []ast.Node
	sawProto := false
	for s.cur.Type != token.BraceR {
		prop, isProto := s.parseObjectMember()
		if isProto {
			if sawProto {
				s.raise(exprStartOffset(prop.(ast.Node)), diagnostics.KindGrammar, diagnostics.ErrDuplicateProto)
			}
			sawProto = true
		}
		props = append(props, prop)
		if s.cur.Type == token.Comma {
			s.next()
		} else {
			break
		}
	}
	s.expect(token.BraceR)
	n := &ast.ObjectExpression{BaseNode: start, Properties: props}
	s.finishNode(&n.BaseNode, "ObjectExpression")
	return n
}

func (s *State) parseObjectMember() (ast.Node, bool) {
	start := s.startNode()
	if s.cur.Type == token.Ellipsis {
		s.next()
		arg := s.parseMaybeAssign(false)
		n := &ast.SpreadElement{BaseNode: start, Argument: arg}
		s.finishNode(&n.BaseNode, "SpreadElement")
		return n, false
	}

	async, generator, kind := false, false, "init"
	if s.cur.Type == token.Name && s.cur.Value == token.KwAsync && s.peekNotValueDelim() {
		async = true
		s.next()
	}
	if s.cur.Type == token.Star {
		generator = true
		s.next()
	}
	if (s.cur.Type == token.Name) && (s.cur.Value == token.KwGet || s.cur.Value == token.KwSet) && s.peekNotValueDelim() {
		kind = s.cur.Value.(string)
		s.next()
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

	if s.cur.Type == token.ParenL || kind != "init" || generator || async {
		params := s.parseBindingList(token.ParenL, token.ParenR, false)
		prevFn, prevGen, prevAsync, prevMethod := s.inFunction, s.inGenerator, s.inAsync, s.inMethod
		s.inFunction, s.inGenerator, s.inAsync, s.inMethod = true, generator, async, true
		body := s.parseBlock()
		s.checkParamList(params)
		s.inFunction, s.inGenerator, s.inAsync, s.inMethod = prevFn, prevGen, prevAsync, prevMethod
		if kind == "init" {
			kind = "method"
		}
		n := &ast.ObjectMethod{BaseNode: start, Kind: kind, Key: key, Computed: computed, Params: params, Body: body, Generator: generator, Async: async}
		s.finishNode(&n.BaseNode, "ObjectMethod")
		return n, false
	}

	isProto := !computed && keyLiteralName(key) == "__proto__"

	if s.cur.Type == token.Colon {
		s.next()
		val := s.parseMaybeAssign(false)
		n := &ast.ObjectProperty{BaseNode: start, Key: key, Value: val, Computed: computed}
		s.finishNode(&n.BaseNode, "ObjectProperty")
		return n, isProto
	}

	// Shorthand, possibly with a default (`{ x = 1 }`, valid only once this
	// object is converted to a pattern — see lval.go).
	if s.cur.Type == token.Eq {
		s.next()
		def := s.parseMaybeAssign(false)
		id, _ := key.(*ast.Identifier)
		ap := &ast.AssignmentPattern{BaseNode: start, Left: id, Right: def}
		s.finishNode(&ap.BaseNode, "AssignmentPattern")
		n := &ast.ObjectProperty{BaseNode: start, Key: key, Value: ap, Computed: false, Shorthand: true}
		return n, false
	}

	n := &ast.ObjectProperty{BaseNode: start, Key: key, Value: key, Computed: false, Shorthand: true}
	s.finishNode(&n.BaseNode, "ObjectProperty")
	return n, isProto
}

func keyLiteralName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	}
	return ""
}

func (s *State) peekNotValueDelim() bool {
	pk := s.peekToken()
	switch pk.Type {
	case token.Colon, token.Comma, token.ParenL, token.BraceR, token.Eq:
		return false
	}
	return true
}

func (s *State) parsePropertyNameOrLiteral() ast.Expression {
	switch s.cur.Type {
	case token.String:
		start := s.startNode()
		v, _ := s.cur.Value.(string)
		s.next()
		n := &ast.StringLiteral{BaseNode: start, Value: v}
		s.finishNode(&n.BaseNode, "StringLiteral")
		return n
	case token.Num:
		start := s.startNode()
		v, _ := s.cur.Value.(float64)
		raw := strconv.FormatFloat(v, 'g', -1, 64)
		s.next()
		n := &ast.NumericLiteral{BaseNode: start, Value: v, Raw: raw}
		s.finishNode(&n.BaseNode, "NumericLiteral")
		return n
	default:
		return s.parsePropertyName()
	}
}

func (s *State) parseFunctionExpr(async bool) ast.Expression {
	start := s.startNode()
	if async {
		s.next() // async
	}
	s.expect(token.Function)
	generator := false
	if s.cur.Type == token.Star {
		generator = true
		s.next()
	}
	var id *ast.Identifier
	if s.cur.Type == token.Name {
		id = s.parseIdentifier()
	}
	params := s.parseBindingList(token.ParenL, token.ParenR, false)
	prevFn, prevGen, prevAsync, prevMethod := s.inFunction, s.inGenerator, s.inAsync, s.inMethod
	s.inFunction, s.inGenerator, s.inAsync, s.inMethod = true, generator, async, false
	body := s.parseBlock()
	s.checkParamList(params)
	s.inFunction, s.inGenerator, s.inAsync, s.inMethod = prevFn, prevGen, prevAsync, prevMethod
	n := &ast.FunctionExpression{BaseNode: start, ID: id, Params: params, Body: body, Generator: generator, Async: async}
	s.finishNode(&n.BaseNode, "FunctionExpression")
	return n
}

func (s *State) parseTemplateLiteral() *ast.TemplateLiteral {
	start := s.startNode()
	s.expect(token.BackQuote)
	var quasis []*ast.TemplateElement
	var exprs []ast.Expression
	for {
		// An empty quasi (e.g. "`${a}`") has no Template token of its own.
		qStart := s.startNode()
		qv := templateValue{valid: true}
		if s.cur.Type == token.Template {
			qv, _ = s.cur.Value.(templateValue)
			s.next()
		}
		tail := s.cur.Type == token.BackQuote
		el := &ast.TemplateElement{BaseNode: qStart, Tail: tail, CookedValid: qv.valid}
		el.Value.Cooked = qv.cooked
		el.Value.Raw = qv.raw
		s.finishNode(&el.BaseNode, "TemplateElement")
		quasis = append(quasis, el)
		if tail {
			break
		}
		s.expect(token.DollarBraceL)
		exprs = append(exprs, s.parseExpression(false))
		s.expect(token.BraceR)
	}
	s.expect(token.BackQuote)
	n := &ast.TemplateLiteral{BaseNode: start, Quasis: quasis, Expressions: exprs}
	s.finishNode(&n.BaseNode, "TemplateLiteral")
	return n
}

// peekIsBackQuoteAfterTemplate reports whether the *current* Template token
// is immediately followed by the closing backtick (i.e. it is the final
// quasi). Must be called before s.next() consumes the Template token.
func (s *State) peekIsBackQuoteAfterTemplate() bool {
	return s.peekToken().Type == token.BackQuote
}
