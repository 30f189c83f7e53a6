package ast

// Minimal Flow/TypeScript type-annotation node set: enough surface for the
// flow and typescript dialect plug-ins (component J) to attach parsed type
// syntax to the tree without the core depending on either dialect. Neither
// plug-in's full type grammar is modeled here (spec.md §1 scopes dialects
// in only "enough to exercise the hook-override architecture", not a
// complete Flow/TS type-checker front end).

// TypeAnnotation wraps a dialect-specific type expression so core nodes
// (Identifier, FunctionDeclaration, ClassProperty, ...) can carry an
// optional annotation field without importing the dialect packages.
type TypeAnnotation struct {
	BaseNode
	TypeAnnotation Node
}

func (t *TypeAnnotation) expressionNode() {}

// ---- Flow ----

type FlowTypeAnnotation struct {
	BaseNode
	Raw string // unparsed type text; dialect/flow refines this further
}

func (f *FlowTypeAnnotation) expressionNode() {}

type FlowNullableTypeAnnotation struct {
	BaseNode
	TypeAnnotation Node
}

func (f *FlowNullableTypeAnnotation) expressionNode() {}

type InterfaceDeclaration struct {
	BaseNode
	ID   *Identifier
	Body Node
}

func (i *InterfaceDeclaration) statementNode() {}

type TypeAlias struct {
	BaseNode
	ID            *Identifier
	TypeParameters Node
	Right         Node
}

func (t *TypeAlias) statementNode() {}

// ---- TypeScript ----

type TSTypeAnnotation struct {
	BaseNode
	TypeAnnotation Node
}

func (t *TSTypeAnnotation) expressionNode() {}

type TSAsExpression struct {
	BaseNode
	Expression     Expression
	TypeAnnotation Node
}

func (t *TSAsExpression) expressionNode() {}

type TSNonNullExpression struct {
	BaseNode
	Expression Expression
}

func (t *TSNonNullExpression) expressionNode() {}

type TSInterfaceDeclaration struct {
	BaseNode
	ID   *Identifier
	Body Node
}

func (t *TSInterfaceDeclaration) statementNode() {}

type TSTypeAliasDeclaration struct {
	BaseNode
	ID              *Identifier
	TypeAnnotation Node
}

func (t *TSTypeAliasDeclaration) statementNode() {}

type TSEnumDeclaration struct {
	BaseNode
	ID      *Identifier
	Members []Node
}

func (t *TSEnumDeclaration) statementNode() {}

type TSTypeReference struct {
	BaseNode
	TypeName Node
}

func (t *TSTypeReference) expressionNode() {}
