package ast

type ImportDeclaration struct {
	BaseNode
	Specifiers []Node // *ImportSpecifier | *ImportDefaultSpecifier | *ImportNamespaceSpecifier
	Source     *StringLiteral
}

func (i *ImportDeclaration) statementNode() {}

type ImportSpecifier struct {
	BaseNode
	Imported *Identifier
	Local    *Identifier
}

func (i *ImportSpecifier) expressionNode() {}

type ImportDefaultSpecifier struct {
	BaseNode
	Local *Identifier
}

func (i *ImportDefaultSpecifier) expressionNode() {}

type ImportNamespaceSpecifier struct {
	BaseNode
	Local *Identifier
}

func (i *ImportNamespaceSpecifier) expressionNode() {}

// ExportNamedDeclaration covers both `export const x = 1` (Declaration set,
// Specifiers nil) and `export { a, b as c } [from "mod"]` (Declaration nil).
type ExportNamedDeclaration struct {
	BaseNode
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
}

func (e *ExportNamedDeclaration) statementNode() {}

type ExportSpecifier struct {
	BaseNode
	Local    *Identifier
	Exported *Identifier
}

func (e *ExportSpecifier) expressionNode() {}

type ExportDefaultDeclaration struct {
	BaseNode
	// Declaration is a Statement (FunctionDeclaration/ClassDeclaration, ID
	// optional) or an Expression wrapped by the caller.
	Declaration Node
}

func (e *ExportDefaultDeclaration) statementNode() {}

type ExportAllDeclaration struct {
	BaseNode
	Source   *StringLiteral
	Exported *Identifier // non-nil for `export * as ns from "mod"`
}

func (e *ExportAllDeclaration) statementNode() {}
