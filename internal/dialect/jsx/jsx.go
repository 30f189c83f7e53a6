// Package jsx is the JSX dialect plug-in (spec.md §4.J): it teaches the
// core parser's ParsePrimary hook to recognize a leading `<` as the start of
// an element or fragment rather than a relational comparison, and drives
// the lexer's raw-text override (internal/parser's JSX child-context
// machinery) to read tag content as JSXText instead of ECMAScript tokens.
//
// Grounded on mcgru-funxy's registration-at-init-time plug-in pattern
// (internal/config's table lookup, generalized in internal/parser/plugins.go
// to function registration); the tag/attribute/children recursive-descent
// structure here follows the same depth-first shape as the core's own
// parseExprAtom / parseSubscripts rather than any teacher JSX code, since
// funxy has no comparable syntax — JSX is new grammar, not adapted grammar.
package jsx

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/token"
)

func init() {
	parser.RegisterPlugin("jsx", func(h *parser.Hooks) {
		prevPrimary := h.ParsePrimary
		h.ParsePrimary = func(s *parser.State) ast.Expression {
			if s.Cur().Type == token.Relational && s.Cur().Value == "<" {
				return parseElementOrFragment(s)
			}
			if prevPrimary != nil {
				return prevPrimary(s)
			}
			return nil
		}
	})
}

func isLT(s *parser.State) bool { return s.Cur().Type == token.Relational && s.Cur().Value == "<" }
func isGT(s *parser.State) bool { return s.Cur().Type == token.Relational && s.Cur().Value == ">" }

// parseElementOrFragment is entered with cur == the leading `<`, not yet
// consumed.
func parseElementOrFragment(s *parser.State) ast.Expression {
	start := s.StartNode()
	ltEnd := s.Cur().End
	if s.SourceText(ltEnd, ltEnd+1) == ">" {
		return parseFragment(s, start)
	}
	return parseElement(s, start)
}

func parseFragment(s *parser.State, start ast.BaseNode) ast.Expression {
	s.Next() // consume '<', land on '>'
	if !isGT(s) {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "malformed JSX fragment opening tag")
	}
	s.PushJSXChildContext()
	s.Next() // consume '>', read first child-area token as raw text
	children := parseChildren(s)
	parseClosingFragment(s)
	n := &ast.JSXFragment{BaseNode: start, Children: children}
	s.FinishNode(&n.BaseNode, "JSXFragment")
	return n
}

func parseClosingFragment(s *parser.State) {
	if !isLT(s) {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected closing JSX fragment tag")
	}
	s.SetExprAllowed(false)
	s.Next() // consume '<', read '/' (forced non-regexp)
	if s.Cur().Type != token.Slash {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected '/' in closing JSX fragment tag")
	}
	s.Next() // consume '/'
	if !isGT(s) {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "JSX fragment closing tag must be empty")
	}
	s.Next() // consume '>'
}

func parseElement(s *parser.State, start ast.BaseNode) ast.Expression {
	s.Next() // consume '<', land on tag name
	name := parseElementName(s)
	attrs := parseAttributes(s)

	selfClosing := false
	if s.Cur().Type == token.Slash {
		selfClosing = true
		s.Next()
	}
	if !isGT(s) {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected '>' to close JSX opening tag")
	}

	openStart := ast.BaseNode{Start_: start.Start_, Loc_: start.Loc_}
	if selfClosing {
		s.Next() // consume '>', done: no children
		open := &ast.JSXOpeningElement{BaseNode: openStart, Name: name, Attributes: attrs, SelfClosing: true}
		s.FinishNode(&open.BaseNode, "JSXOpeningElement")
		n := &ast.JSXElement{BaseNode: start, OpeningElement: open}
		s.FinishNode(&n.BaseNode, "JSXElement")
		return n
	}

	open := &ast.JSXOpeningElement{BaseNode: openStart, Name: name, Attributes: attrs}
	s.PushJSXChildContext()
	s.Next() // consume '>' (its end closes the opening element), read first child token as raw text
	s.FinishNode(&open.BaseNode, "JSXOpeningElement")

	children := parseChildren(s)
	closing := parseClosingElement(s)

	n := &ast.JSXElement{BaseNode: start, OpeningElement: open, Children: children, ClosingElement: closing}
	s.FinishNode(&n.BaseNode, "JSXElement")
	return n
}

// parseElementName reads an identifier, possibly extended with `.member` or
// `ns:name`, but not hyphenated host-component names (e.g. `data-x`); a
// deliberate simplification, same rationale as the core's Flow/TypeScript
// plug-ins only covering enough grammar to exercise the hook architecture.
func parseElementName(s *parser.State) ast.Node {
	idStart := s.StartNode()
	name := s.IdentLikeName()
	id := &ast.JSXIdentifier{BaseNode: idStart, Name: name}
	s.FinishNode(&id.BaseNode, "JSXIdentifier")

	var node ast.Node = id
	for {
		switch s.Cur().Type {
		case token.Colon:
			s.Next()
			nsNameStart := s.StartNode()
			nsName := s.IdentLikeName()
			nameID := &ast.JSXIdentifier{BaseNode: nsNameStart, Name: nsName}
			s.FinishNode(&nameID.BaseNode, "JSXIdentifier")
			ns := &ast.JSXNamespacedName{BaseNode: idStart, Namespace: id, Name: nameID}
			s.FinishNode(&ns.BaseNode, "JSXNamespacedName")
			node = ns
			return node
		case token.Dot:
			s.Next()
			propStart := s.StartNode()
			propName := s.IdentLikeName()
			prop := &ast.JSXIdentifier{BaseNode: propStart, Name: propName}
			s.FinishNode(&prop.BaseNode, "JSXIdentifier")
			memberStart := ast.BaseNode{Start_: idStart.Start_, Loc_: idStart.Loc_}
			member := &ast.JSXMemberExpression{BaseNode: memberStart, Object: node, Property: prop}
			s.FinishNode(&member.BaseNode, "JSXMemberExpression")
			node = member
		default:
			return node
		}
	}
}

func parseAttributes(s *parser.State) []ast.Node {
	var attrs []ast.Node
	for s.Cur().Type != token.Slash && !isGT(s) && s.Cur().Type != token.EOF {
		if s.Cur().Type == token.Ellipsis {
			start := s.StartNode()
			s.Next()
			arg := s.ParseMaybeAssign(false)
			n := &ast.JSXSpreadAttribute{BaseNode: start, Argument: arg}
			s.FinishNode(&n.BaseNode, "JSXSpreadAttribute")
			attrs = append(attrs, n)
			continue
		}
		attrs = append(attrs, parseAttribute(s))
	}
	return attrs
}

func parseAttribute(s *parser.State) ast.Node {
	start := s.StartNode()
	name := parseAttributeName(s)
	var value ast.Node
	if s.Cur().Type == token.Eq {
		s.Next()
		value = parseAttributeValue(s)
	}
	n := &ast.JSXAttribute{BaseNode: start, Name: name, Value: value}
	s.FinishNode(&n.BaseNode, "JSXAttribute")
	return n
}

func parseAttributeName(s *parser.State) ast.Node {
	idStart := s.StartNode()
	name := s.IdentLikeName()
	id := &ast.JSXIdentifier{BaseNode: idStart, Name: name}
	s.FinishNode(&id.BaseNode, "JSXIdentifier")
	if s.Cur().Type == token.Colon {
		s.Next()
		nsNameStart := s.StartNode()
		nsName := s.IdentLikeName()
		nameID := &ast.JSXIdentifier{BaseNode: nsNameStart, Name: nsName}
		s.FinishNode(&nameID.BaseNode, "JSXIdentifier")
		ns := &ast.JSXNamespacedName{BaseNode: idStart, Namespace: id, Name: nameID}
		s.FinishNode(&ns.BaseNode, "JSXNamespacedName")
		return ns
	}
	return id
}

func parseAttributeValue(s *parser.State) ast.Node {
	if s.Cur().Type == token.String {
		start := s.StartNode()
		v, _ := s.Cur().Value.(string)
		s.Next()
		n := &ast.StringLiteral{BaseNode: start, Value: v}
		s.FinishNode(&n.BaseNode, "StringLiteral")
		return n
	}
	if s.Cur().Type == token.BraceL {
		return parseExpressionContainer(s)
	}
	if isLT(s) {
		return parseElementOrFragment(s)
	}
	s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected JSX attribute value")
	return nil
}

func parseExpressionContainer(s *parser.State) ast.Node {
	start := s.StartNode()
	s.Next() // consume '{'
	if s.Cur().Type == token.BraceR {
		empty := &ast.JSXEmptyExpression{BaseNode: s.StartNode()}
		s.FinishNode(&empty.BaseNode, "JSXEmptyExpression")
		s.Next() // consume '}'
		n := &ast.JSXExpressionContainer{BaseNode: start, Expression: empty}
		s.FinishNode(&n.BaseNode, "JSXExpressionContainer")
		return n
	}
	expr := s.ParseMaybeAssign(false)
	if s.Cur().Type != token.BraceR {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected '}' to close JSX expression")
	}
	s.Next()
	n := &ast.JSXExpressionContainer{BaseNode: start, Expression: expr}
	s.FinishNode(&n.BaseNode, "JSXExpressionContainer")
	return n
}

// parseChildren is entered with the raw-text lexer context already pushed
// and cur holding the first child-area token (the caller consumed the
// opening tag's `>` itself, since that consumption also closes out the
// JSXOpeningElement/fragment node's span). It reads children until it finds
// the `<` that begins a closing tag, pops back to normal lexing, and
// returns with cur left at that unconsumed `<` for the caller to parse as a
// closing element/fragment.
func parseChildren(s *parser.State) []ast.Node {
	var children []ast.Node
	for {
		switch {
		case s.Cur().Type == token.EOF:
			s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "unterminated JSX contents")

		case s.Cur().Type == token.JSXText:
			start := s.StartNode()
			text, _ := s.Cur().Value.(string)
			s.Next()
			n := &ast.JSXText{BaseNode: start, Value: text, Raw: text}
			s.FinishNode(&n.BaseNode, "JSXText")
			children = append(children, n)

		case s.Cur().Type == token.BraceL:
			s.PopCtx()
			container := parseExpressionContainer(s)
			children = append(children, container)
			s.PushJSXChildContext()
			s.Next()

		case isLT(s):
			nextByte := s.SourceText(s.Cur().End, s.Cur().End+1)
			if nextByte == "/" {
				s.PopCtx()
				return children
			}
			s.PopCtx()
			child := parseElementOrFragment(s)
			children = append(children, child)
			s.PushJSXChildContext()
			s.Next()

		default:
			s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "unexpected token in JSX contents")
		}
	}
}

func parseClosingElement(s *parser.State) *ast.JSXClosingElement {
	start := s.StartNode()
	if !isLT(s) {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected closing JSX tag")
	}
	s.SetExprAllowed(false)
	s.Next() // consume '<', read '/' (forced non-regexp)
	if s.Cur().Type != token.Slash {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected '/' in closing JSX tag")
	}
	s.Next() // consume '/'
	name := parseElementName(s)
	if !isGT(s) {
		s.Raise(s.Cur().Start, diagnostics.KindPlugin, diagnostics.ErrDecoratorMisuse, "expected '>' to close JSX closing tag")
	}
	s.Next() // consume '>'
	n := &ast.JSXClosingElement{BaseNode: start, Name: name}
	s.FinishNode(&n.BaseNode, "JSXClosingElement")
	return n
}
