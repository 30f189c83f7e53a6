// Package estree is the ESTree compatibility dialect plug-in (spec.md
// §4.J). Unlike jsx/flow/typescript, it adds no new grammar: it walks the
// finished tree and relabels the small set of node-type strings where this
// core's Babel-shaped AST and the ESTree spec disagree, so a consumer
// written against ESTree tooling (eslint-style visitors keyed on
// node.type) sees the names it expects. This is why it hooks Hooks.Finish
// rather than ParsePrimary/ParseStatement/ParseClassMember: its job starts
// only once a whole File exists, not while any one production is being
// recognized.
//
// Grounded on mcgru-funxy's plug-in registration pattern (see
// internal/dialect/jsx's doc comment); the walk itself has no teacher
// analogue (funxy's AST has one shape, not two it reconciles), so it
// follows the core's own node set directly. Only the renames ESTree and
// Babel's AST are actually known to disagree on are implemented: literal
// unification and ObjectProperty/Property. A full structural ESTree
// conversion (e.g. folding ObjectMethod into a Property whose value is a
// FunctionExpression) is out of scope, matching spec.md §1's "enough to
// exercise the hook-override architecture" framing used for the other
// dialects.
package estree

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/parser"
)

func init() {
	parser.RegisterPlugin("estree", func(h *parser.Hooks) {
		prevFinish := h.Finish
		h.Finish = func(s *parser.State, f *ast.File) {
			walkProgram(f.Program)
			if prevFinish != nil {
				prevFinish(s, f)
			}
		}
	})
}

func relabelLiteral(b *ast.BaseNode) {
	switch b.NodeType() {
	case "NumericLiteral", "StringLiteral", "BooleanLiteral", "NullLiteral", "RegExpLiteral", "BigIntLiteral":
		b.Type_ = "Literal"
	case "ObjectProperty":
		b.Type_ = "Property"
	}
}

func walkProgram(p *ast.Program) {
	for _, st := range p.Body {
		walkStatement(st)
	}
}

func walkStatement(st ast.Statement) {
	if st == nil {
		return
	}
	switch n := st.(type) {
	case *ast.ExpressionStatement:
		walkExpression(n.Expression)
	case *ast.BlockStatement:
		for _, s := range n.Body {
			walkStatement(s)
		}
	case *ast.IfStatement:
		walkExpression(n.Test)
		walkStatement(n.Consequent)
		walkStatement(n.Alternate)
	case *ast.ForStatement:
		walkNode(n.Init)
		walkExpression(n.Test)
		walkExpression(n.Update)
		walkStatement(n.Body)
	case *ast.ForInStatement:
		walkNode(n.Left)
		walkExpression(n.Right)
		walkStatement(n.Body)
	case *ast.ForOfStatement:
		walkNode(n.Left)
		walkExpression(n.Right)
		walkStatement(n.Body)
	case *ast.WhileStatement:
		walkExpression(n.Test)
		walkStatement(n.Body)
	case *ast.DoWhileStatement:
		walkExpression(n.Test)
		walkStatement(n.Body)
	case *ast.ReturnStatement:
		walkExpression(n.Argument)
	case *ast.ThrowStatement:
		walkExpression(n.Argument)
	case *ast.TryStatement:
		walkStatement(n.Block)
		if n.Handler != nil {
			walkStatement(n.Handler.Body)
		}
		walkStatement(n.Finalizer)
	case *ast.SwitchStatement:
		walkExpression(n.Discriminant)
		for _, c := range n.Cases {
			walkExpression(c.Test)
			for _, s := range c.Consequent {
				walkStatement(s)
			}
		}
	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			walkExpression(d.Init)
		}
	case *ast.FunctionDeclaration:
		walkStatement(n.Body)
	case *ast.ClassDeclaration:
		walkExpression(n.SuperClass)
		walkClassBody(n.Body)
	case *ast.LabeledStatement:
		walkStatement(n.Body)
	case *ast.ExportNamedDeclaration:
		walkStatement(n.Declaration)
	case *ast.ExportDefaultDeclaration:
		walkNode(n.Declaration)
	}
}

func walkClassBody(body *ast.ClassBody) {
	if body == nil {
		return
	}
	for _, m := range body.Body {
		switch mm := m.(type) {
		case *ast.ClassMethod:
			walkStatement(mm.Body)
		case *ast.ClassProperty:
			walkExpression(mm.Value)
		case *ast.StaticBlock:
			for _, s := range mm.Body {
				walkStatement(s)
			}
		}
	}
}

func walkNode(n ast.Node) {
	switch v := n.(type) {
	case ast.Expression:
		walkExpression(v)
	case ast.Statement:
		walkStatement(v)
	}
}

func walkExpression(e ast.Expression) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.NumericLiteral:
		relabelLiteral(&n.BaseNode)
	case *ast.StringLiteral:
		relabelLiteral(&n.BaseNode)
	case *ast.BooleanLiteral:
		relabelLiteral(&n.BaseNode)
	case *ast.NullLiteral:
		relabelLiteral(&n.BaseNode)
	case *ast.RegExpLiteral:
		relabelLiteral(&n.BaseNode)
	case *ast.BigIntLiteral:
		relabelLiteral(&n.BaseNode)
	case *ast.ArrayExpression:
		for _, el := range n.Elements {
			walkExpression(el)
		}
	case *ast.ObjectExpression:
		for _, p := range n.Properties {
			switch pp := p.(type) {
			case *ast.ObjectProperty:
				relabelLiteral(&pp.BaseNode)
				walkExpression(pp.Key)
				walkNode(pp.Value)
			case *ast.ObjectMethod:
				walkStatement(pp.Body)
			case *ast.SpreadElement:
				walkExpression(pp.Argument)
			}
		}
	case *ast.FunctionExpression:
		walkStatement(n.Body)
	case *ast.ArrowFunctionExpression:
		walkNode(n.Body)
	case *ast.ClassExpression:
		walkExpression(n.SuperClass)
		walkClassBody(n.Body)
	case *ast.UnaryExpression:
		walkExpression(n.Argument)
	case *ast.UpdateExpression:
		walkExpression(n.Argument)
	case *ast.BinaryExpression:
		walkExpression(n.Left)
		walkExpression(n.Right)
	case *ast.LogicalExpression:
		walkExpression(n.Left)
		walkExpression(n.Right)
	case *ast.AssignmentExpression:
		walkNode(n.Left)
		walkExpression(n.Right)
	case *ast.ConditionalExpression:
		walkExpression(n.Test)
		walkExpression(n.Consequent)
		walkExpression(n.Alternate)
	case *ast.CallExpression:
		walkExpression(n.Callee)
		for _, a := range n.Arguments {
			walkExpression(a)
		}
	case *ast.NewExpression:
		walkExpression(n.Callee)
		for _, a := range n.Arguments {
			walkExpression(a)
		}
	case *ast.MemberExpression:
		walkExpression(n.Object)
		walkExpression(n.Property)
	case *ast.SequenceExpression:
		for _, x := range n.Expressions {
			walkExpression(x)
		}
	case *ast.ParenthesizedExpression:
		walkExpression(n.Expression)
	case *ast.YieldExpression:
		walkExpression(n.Argument)
	case *ast.AwaitExpression:
		walkExpression(n.Argument)
	case *ast.TemplateLiteral:
		for _, x := range n.Expressions {
			walkExpression(x)
		}
	case *ast.TaggedTemplateExpression:
		walkExpression(n.Tag)
		walkExpression(n.Quasi)
	case *ast.SpreadElement:
		walkExpression(n.Argument)
	}
}
