package parser

// Component H: converting an already-parsed expression tree into a binding
// pattern, and validating binding targets. Grounded on mcgru-funxy's
// tupleExprToPattern/listExprToPattern/recordExprToPattern/exprToPattern
// family (internal/parser/parser.go), which solves the identical problem
// funxy has for its own destructuring syntax: parse once as an expression,
// then rebuild it as new pattern nodes (copying each expression node's
// span) once the parser learns (by seeing `=` or a `for` head) that a
// pattern was actually intended. Node-for-node mapping differs
// (Object/Array <-> their Pattern counterparts instead of funxy's
// Tuple/List/Record literals), but the retag-after-the-fact strategy is the
// teacher's own.

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

// toAssignable converts expr into an assignable target (Pattern), raising a
// grammar error if it cannot be one. isBinding distinguishes a declaration
// binding (`let [a] = x`, which forbids member expressions) from a plain
// assignment target (`[a.b] = x`, which allows them).
func (s *State) toAssignable(expr ast.Expression, isBinding bool) ast.Node {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e
	case *ast.MemberExpression:
		if isBinding {
			s.raise(exprStartOffset(e), diagnostics.KindGrammar, diagnostics.ErrInvalidLHS)
		}
		return e
	case *ast.ArrayExpression:
		elems := make([]ast.Pattern, len(e.Elements))
		for i, el := range e.Elements {
			if el == nil {
				continue
			}
			if sp, ok := el.(*ast.SpreadElement); ok {
				if i != len(e.Elements)-1 {
					s.raise(exprStartOffset(sp), diagnostics.KindGrammar, diagnostics.ErrRestNotLast)
				}
				rest := &ast.RestElement{BaseNode: sp.BaseNode, Argument: s.toAssignable(sp.Argument, isBinding).(ast.Pattern)}
				rest.Type_ = "RestElement"
				elems[i] = rest
				continue
			}
			elems[i] = s.toAssignable(el, isBinding).(ast.Pattern)
		}
		ap := &ast.ArrayPattern{BaseNode: e.BaseNode, Elements: elems}
		ap.Type_ = "ArrayPattern"
		return ap
	case *ast.ObjectExpression:
		props := make([]ast.Node, len(e.Properties))
		for i, p := range e.Properties {
			switch pp := p.(type) {
			case *ast.ObjectProperty:
				if ap, ok := pp.Value.(*ast.AssignmentPattern); ok {
					props[i] = &ast.ObjectProperty{BaseNode: pp.BaseNode, Key: pp.Key, Value: ap, Computed: pp.Computed, Shorthand: pp.Shorthand}
					continue
				}
				valExpr, _ := pp.Value.(ast.Expression)
				val := s.toAssignable(valExpr, isBinding)
				props[i] = &ast.ObjectProperty{BaseNode: pp.BaseNode, Key: pp.Key, Value: val, Computed: pp.Computed, Shorthand: pp.Shorthand}
			case *ast.SpreadElement:
				if i != len(e.Properties)-1 {
					s.raise(exprStartOffset(pp), diagnostics.KindGrammar, diagnostics.ErrRestNotLast)
				}
				rest := &ast.RestElement{BaseNode: pp.BaseNode, Argument: s.toAssignable(pp.Argument, isBinding).(ast.Pattern)}
				rest.Type_ = "RestElement"
				props[i] = rest
			default:
				s.raise(exprStartOffset(p), diagnostics.KindGrammar, diagnostics.ErrInvalidLHS)
			}
		}
		op := &ast.ObjectPattern{BaseNode: e.BaseNode, Properties: props}
		op.Type_ = "ObjectPattern"
		return op
	case *ast.AssignmentExpression:
		if e.Operator != "=" {
			s.raise(exprStartOffset(e), diagnostics.KindGrammar, diagnostics.ErrInvalidLHS)
		}
		left := s.toAssignable(e.Left.(ast.Expression), isBinding).(ast.Pattern)
		asg := &ast.AssignmentPattern{BaseNode: e.BaseNode, Left: left, Right: e.Right}
		asg.Type_ = "AssignmentPattern"
		return asg
	case *ast.AssignmentPattern, *ast.ArrayPattern, *ast.ObjectPattern, *ast.RestElement:
		return e
	default:
		s.raise(exprStartOffset(expr), diagnostics.KindGrammar, diagnostics.ErrInvalidLHS)
		return nil
	}
}

// checkLVal validates that pat is legal as a binding target under the
// current strict-mode flag: `eval`/`arguments` cannot be bound in strict
// mode (spec.md §7 S007), and duplicate names are rejected when noDup is
// set (checkParamList sets it in strict-mode code only, for arrow functions
// as for every other function).
func (s *State) checkLVal(pat ast.Node, seen map[string]bool, noDup bool) {
	switch p := pat.(type) {
	case *ast.Identifier:
		if s.strict && (p.Name == "eval" || p.Name == "arguments") {
			s.raise(exprStartOffset(p), diagnostics.KindScope, diagnostics.ErrStrictEvalArguments, p.Name)
		}
		if seen != nil {
			if noDup && seen[p.Name] {
				s.raise(exprStartOffset(p), diagnostics.KindScope, diagnostics.ErrDuplicateParam)
			}
			seen[p.Name] = true
		}
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				s.checkLVal(el, seen, noDup)
			}
		}
	case *ast.ObjectPattern:
		for _, pr := range p.Properties {
			switch x := pr.(type) {
			case *ast.ObjectProperty:
				s.checkLVal(x.Value, seen, noDup)
			case *ast.RestElement:
				s.checkLVal(x.Argument, seen, noDup)
			}
		}
	case *ast.AssignmentPattern:
		s.checkLVal(p.Left, seen, noDup)
	case *ast.RestElement:
		s.checkLVal(p.Argument, seen, noDup)
	case *ast.MemberExpression:
		// always legal as a plain assignment target; nothing to check.
	}
}

// checkParamList validates a parsed parameter list once its function body
// has been read, so a "use strict" directive inside the body (which
// promotes s.strict retroactively) is accounted for before checking eval/
// arguments binding and duplicate names (spec.md §7.3).
func (s *State) checkParamList(params []ast.Pattern) {
	seen := map[string]bool{}
	for _, p := range params {
		s.checkLVal(p, seen, s.strict)
	}
}

// parseBindingList parses a parenthesized (or bracketed) comma list of
// binding patterns, e.g. function parameters or `[a, ...rest]`. allowEmpty
// is not enforced: an empty list is accepted whatever its value.
func (s *State) parseBindingList(open, close token.Type, allowEmpty bool) []ast.Pattern {
	s.expect(open)
	var params []ast.Pattern
	for s.cur.Type != close {
		if s.cur.Type == token.Ellipsis {
			start := s.startNode()
			s.next()
			arg := s.parseBindingAtom()
			n := &ast.RestElement{BaseNode: start, Argument: arg}
			s.finishNode(&n.BaseNode, "RestElement")
			params = append(params, n)
			break // rest must be last
		}
		params = append(params, s.parseMaybeDefault())
		if s.cur.Type == token.Comma {
			s.next()
		} else {
			break
		}
	}
	s.expect(close)
	if !allowEmpty && len(params) == 0 {
		// zero-arity arrow/function is legal; allowEmpty exists for callers
		// that want to forbid it explicitly in the future. No-op today.
	}
	return params
}

func (s *State) parseMaybeDefault() ast.Pattern {
	left := s.parseBindingAtom()
	if s.cur.Type != token.Eq {
		return left
	}
	start := ast.BaseNode{Start_: exprStartOffset(left), Loc_: &ast.SourceLocation{Start: locStart(left)}}
	s.next()
	right := s.parseMaybeAssign(false)
	n := &ast.AssignmentPattern{BaseNode: start, Left: left, Right: right}
	s.finishNode(&n.BaseNode, "AssignmentPattern")
	return n
}

// parseBindingAtom parses one binding target: identifier, array pattern, or
// object pattern (spec.md §4.H). Array/object patterns are parsed directly
// as patterns here rather than via toAssignable, since a parameter list is
// never ambiguous with an expression the way an assignment's LHS is.
func (s *State) parseBindingAtom() ast.Pattern {
	switch s.cur.Type {
	case token.BracketL:
		start := s.startNode()
		s.next()
		var elems []ast.Pattern
		for s.cur.Type != token.BracketR {
			if s.cur.Type == token.Comma {
				elems = append(elems, nil)
				s.next()
				continue
			}
			if s.cur.Type == token.Ellipsis {
				rStart := s.startNode()
				s.next()
				arg := s.parseBindingAtom()
				rn := &ast.RestElement{BaseNode: rStart, Argument: arg}
				s.finishNode(&rn.BaseNode, "RestElement")
				elems = append(elems, rn)
				break
			}
			elems = append(elems, s.parseMaybeDefault())
			if s.cur.Type == token.Comma {
				s.next()
			} else {
				break
			}
		}
		s.expect(token.BracketR)
		n := &ast.ArrayPattern{BaseNode: start, Elements: elems}
		s.finishNode(&n.BaseNode, "ArrayPattern")
		return n

	case token.BraceL:
		start := s.startNode()
		s.next()
		var props []ast.Node
		for s.cur.Type != token.BraceR {
			if s.cur.Type == token.Ellipsis {
				rStart := s.startNode()
				s.next()
				arg := s.parseBindingAtom()
				rn := &ast.RestElement{BaseNode: rStart, Argument: arg}
				s.finishNode(&rn.BaseNode, "RestElement")
				props = append(props, rn)
				break
			}
			pStart := s.startNode()
			computed := s.cur.Type == token.BracketL
			var key ast.Expression
			if computed {
				s.next()
				key = s.parseMaybeAssign(false)
				s.expect(token.BracketR)
			} else {
				key = s.parsePropertyNameOrLiteral()
			}
			var value ast.Pattern
			if s.cur.Type == token.Colon {
				s.next()
				value = s.parseMaybeDefault()
			} else {
				id, _ := key.(*ast.Identifier)
				if s.cur.Type == token.Eq {
					s.next()
					def := s.parseMaybeAssign(false)
					ap := &ast.AssignmentPattern{BaseNode: pStart, Left: id, Right: def}
					s.finishNode(&ap.BaseNode, "AssignmentPattern")
					value = ap
				} else {
					value = id
				}
			}
			pn := &ast.ObjectProperty{BaseNode: pStart, Key: key, Value: value, Computed: computed, Shorthand: s.cur.Type != token.Colon}
			s.finishNode(&pn.BaseNode, "ObjectProperty")
			props = append(props, pn)
			if s.cur.Type == token.Comma {
				s.next()
			} else {
				break
			}
		}
		s.expect(token.BraceR)
		n := &ast.ObjectPattern{BaseNode: start, Properties: props}
		s.finishNode(&n.BaseNode, "ObjectPattern")
		return n

	default:
		if s.cur.Type != token.Name {
			kind := token.KindOf(s.cur.Type)
			if kind.Keyword != "" {
				s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrReservedWordAsBinding, kind.Keyword)
			}
			s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, "identifier", s.cur.Type)
		}
		return s.parseIdentifier()
	}
}
