// Package token defines the lexical token vocabulary of the core parser:
// the fixed type enumeration (component B of the design), a Token value
// carrying a token's span/position/payload, and the small Position type
// shared with the ast package.
package token

import "fmt"

// Type is the canonical label for a token kind. It is a small closed set,
// declared once at process lifetime (spec.md "global mutable registries...
// process-lifetime constants"), never constructed dynamically.
type Type string

// Position is a 1-based line, 0-based column pair. Column counts bytes
// from the start of Line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p comes strictly before q in source order.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Token is a single lexical token as produced by the lexer (component D).
// Its End/EndPos fields are only meaningful once the lexer has finished
// scanning it; a Token value is never mutated in place after being handed
// to the parser.
type Token struct {
	Type     Type
	Value    interface{} // string / float64 / *big.Int / RegexpValue / nil, depending on Type
	Start    int         // byte offset, inclusive
	End      int         // byte offset, exclusive
	StartPos Position
	EndPos   Position

	// NewlineBefore records whether a line terminator appeared between the
	// previous token and this one; ASI and several "no line break" grammar
	// restrictions (spec.md §4.G) need this without re-scanning.
	NewlineBefore bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s %v @%d:%d", t.Type, t.Value, t.StartPos.Line, t.StartPos.Column)
}

// RegexpValue is the payload of a RegExp token: source pattern plus flags.
type RegexpValue struct {
	Pattern string
	Flags   string
}

// Kind describes the fixed properties of a Type, independent of any given
// token instance: precedence/associativity/grammar-position flags consulted
// by the expression and statement parsers (component B / spec.md §4.B).
type Kind struct {
	Label            string
	Keyword          string // non-empty if this type is a reserved word
	BeforeExpr       bool   // an expression is allowed to follow this token
	StartsExpr       bool   // this token can begin an expression
	RightAssociative bool
	IsLoop           bool
	IsAssign         bool
	Prefix           bool
	Postfix          bool
	// BinOp is the binary-operator precedence (1..11) per spec.md §4.B, or
	// 0 if this type is not a binary operator.
	BinOp int
}

var kinds = map[Type]*Kind{}

func define(t Type, k Kind) Type {
	kc := k
	kinds[t] = &kc
	return t
}

// KindOf returns the static properties of t. Every Type in this package is
// registered in init(); callers in other packages only read this table
// (spec.md §9: "process-lifetime constants initialized once").
func KindOf(t Type) *Kind {
	if k, ok := kinds[t]; ok {
		return k
	}
	return &Kind{Label: string(t)}
}

// Fixed token types.
const (
	EOF     Type = "eof"
	Illegal Type = "illegal"

	Num         Type = "num"
	BigInt      Type = "bigint"
	Regexp      Type = "regexp"
	String      Type = "string"
	Name        Type = "name"
	PrivateName Type = "privateName"

	// Template literal pieces: the lexer emits BackQuote at the opening and
	// closing backtick, Template for quasi text, and DollarBraceL/BraceR for
	// the ${ ... } hole boundaries.
	BackQuote    Type = "`"
	Template     Type = "template"
	DollarBraceL Type = "${"

	// JSXText is raw character data between JSX tags, emitted only while the
	// jsx dialect plug-in is active (internal/dialect/jsx).
	JSXText Type = "jsxText"

	// Punctuation.
	BracketL    Type = "["
	BracketR    Type = "]"
	BraceL      Type = "{"
	BraceR      Type = "}"
	ParenL      Type = "("
	ParenR      Type = ")"
	Comma       Type = ","
	Semi        Type = ";"
	Colon       Type = ":"
	Dot         Type = "."
	Question    Type = "?"
	QuestionDot Type = "?."
	Arrow       Type = "=>"
	Ellipsis    Type = "..."
	At          Type = "@"
	Hash        Type = "#"

	// Operators.
	Eq              Type = "="
	Assign          Type = "_=" // fingerprint for compound assignment (+= -= etc.)
	IncDec          Type = "++/--"
	Prefix          Type = "prefix" // ! ~
	LogicalOR       Type = "||"
	LogicalAND      Type = "&&"
	NullishCoalesce Type = "??"
	BitwiseOR       Type = "|"
	BitwiseAND      Type = "&"
	BitwiseXOR      Type = "^"
	Equality        Type = "==/!="
	Relational      Type = "</>"
	BitShift        Type = "<</>>"
	PlusMin         Type = "+/-"
	Modulo          Type = "%"
	Star            Type = "*"
	Slash           Type = "/"
	StarStar        Type = "**"

	// Keywords.
	Break      Type = "break"
	Case       Type = "case"
	Catch      Type = "catch"
	Continue   Type = "continue"
	Debugger   Type = "debugger"
	Default    Type = "default"
	Do         Type = "do"
	Else       Type = "else"
	Finally    Type = "finally"
	For        Type = "for"
	Function   Type = "function"
	If         Type = "if"
	Return     Type = "return"
	Switch     Type = "switch"
	Throw      Type = "throw"
	Try        Type = "try"
	Var        Type = "var"
	Const      Type = "const"
	Let        Type = "let"
	While      Type = "while"
	With       Type = "with"
	New        Type = "new"
	This       Type = "this"
	Super      Type = "super"
	Class      Type = "class"
	Extends    Type = "extends"
	Export     Type = "export"
	Import     Type = "import"
	Null       Type = "null"
	True       Type = "true"
	False      Type = "false"
	In         Type = "in"
	Instanceof Type = "instanceof"
	Typeof     Type = "typeof"
	Void       Type = "void"
	Delete     Type = "delete"
)

// Contextual keyword strings (not Types — see spec.md §9 "Context-sensitive
// keyword handling... model these as plain identifiers with a contextual
// lookahead predicate, not as token types").
const (
	KwAsync      = "async"
	KwOf         = "of"
	KwFrom       = "from"
	KwAs         = "as"
	KwYield      = "yield"
	KwAwait      = "await"
	KwStatic     = "static"
	KwGet        = "get"
	KwSet        = "set"
	KwType       = "type"
	KwInterface  = "interface"
	KwDeclare    = "declare"
	KwGlobal     = "global"
	KwNamespace  = "namespace"
	KwModule     = "module"
	KwImplements = "implements"
	KwReadonly   = "readonly"
	KwAbstract   = "abstract"
	KwPublic     = "public"
	KwPrivate    = "private"
	KwProtected  = "protected"
	KwKeyof      = "keyof"
	KwIs         = "is"
	KwInfer      = "infer"
	KwEnum       = "enum"
)

// keywordTypes maps a reserved-word spelling to its fixed Type. Contextual
// keywords above are deliberately absent: they are ordinary Name tokens.
var keywordTypes = map[string]Type{
	"break": Break, "case": Case, "catch": Catch, "continue": Continue,
	"debugger": Debugger, "default": Default, "do": Do, "else": Else,
	"finally": Finally, "for": For, "function": Function, "if": If,
	"return": Return, "switch": Switch, "throw": Throw, "try": Try,
	"var": Var, "const": Const, "while": While, "with": With, "new": New,
	"this": This, "super": Super, "class": Class, "extends": Extends,
	"export": Export, "import": Import, "null": Null, "true": True,
	"false": False, "in": In, "instanceof": Instanceof, "typeof": Typeof,
	"void": Void, "delete": Delete,
	// "let" is only a keyword contextually in sloppy mode (spec.md §4.C
	// updater contract), but it is given a fixed Type here because
	// var/let/const share one declaration-statement dispatch in the
	// statement parser.
	"let": Let,
}

// LookupKeyword returns the fixed Type for a reserved word, or ("", false)
// if ident is not one of ECMAScript's always-reserved words.
func LookupKeyword(ident string) (Type, bool) {
	t, ok := keywordTypes[ident]
	return t, ok
}

func init() {
	define(EOF, Kind{Label: "eof"})
	define(Illegal, Kind{Label: "illegal"})
	define(Num, Kind{Label: "num", StartsExpr: true})
	define(BigInt, Kind{Label: "bigint", StartsExpr: true})
	define(Regexp, Kind{Label: "regexp", StartsExpr: true})
	define(String, Kind{Label: "string", StartsExpr: true})
	define(Name, Kind{Label: "name", StartsExpr: true})
	define(PrivateName, Kind{Label: "privateName", StartsExpr: true})
	define(BackQuote, Kind{Label: "`", StartsExpr: true})
	define(JSXText, Kind{Label: "jsxText", StartsExpr: true})
	define(Template, Kind{Label: "template", StartsExpr: true})
	define(DollarBraceL, Kind{Label: "${", BeforeExpr: true, StartsExpr: true})

	define(BracketL, Kind{Label: "[", BeforeExpr: true, StartsExpr: true})
	define(BracketR, Kind{Label: "]"})
	define(BraceL, Kind{Label: "{", BeforeExpr: true, StartsExpr: true})
	define(BraceR, Kind{Label: "}"})
	define(ParenL, Kind{Label: "(", BeforeExpr: true, StartsExpr: true})
	define(ParenR, Kind{Label: ")"})
	define(Comma, Kind{Label: ",", BeforeExpr: true})
	define(Semi, Kind{Label: ";", BeforeExpr: true})
	define(Colon, Kind{Label: ":", BeforeExpr: true})
	define(Dot, Kind{Label: "."})
	define(Question, Kind{Label: "?", BeforeExpr: true})
	define(QuestionDot, Kind{Label: "?."})
	define(Arrow, Kind{Label: "=>", BeforeExpr: true})
	define(Ellipsis, Kind{Label: "...", BeforeExpr: true, StartsExpr: true})
	define(At, Kind{Label: "@"})
	define(Hash, Kind{Label: "#", StartsExpr: true})

	define(Eq, Kind{Label: "=", BeforeExpr: true, IsAssign: true})
	define(Assign, Kind{Label: "_=", BeforeExpr: true, IsAssign: true})
	define(IncDec, Kind{Label: "++/--", Prefix: true, Postfix: true, StartsExpr: true})
	define(Prefix, Kind{Label: "prefix", BeforeExpr: true, Prefix: true, StartsExpr: true})
	define(LogicalOR, Kind{Label: "||", BeforeExpr: true, BinOp: 1})
	define(LogicalAND, Kind{Label: "&&", BeforeExpr: true, BinOp: 2})
	define(NullishCoalesce, Kind{Label: "??", BeforeExpr: true, BinOp: 1})
	define(BitwiseOR, Kind{Label: "|", BeforeExpr: true, BinOp: 3})
	define(BitwiseAND, Kind{Label: "&", BeforeExpr: true, BinOp: 5})
	define(BitwiseXOR, Kind{Label: "^", BeforeExpr: true, BinOp: 4})
	define(Equality, Kind{Label: "==/!=", BeforeExpr: true, BinOp: 6})
	define(Relational, Kind{Label: "</>", BeforeExpr: true, BinOp: 7})
	define(BitShift, Kind{Label: "<</>>", BeforeExpr: true, BinOp: 8})
	define(PlusMin, Kind{Label: "+/-", BeforeExpr: true, BinOp: 9, Prefix: true, StartsExpr: true})
	define(Modulo, Kind{Label: "%", BeforeExpr: true, BinOp: 10})
	define(Star, Kind{Label: "*", BeforeExpr: true, BinOp: 10})
	define(Slash, Kind{Label: "/", BeforeExpr: true, BinOp: 10})
	define(StarStar, Kind{Label: "**", BeforeExpr: true, BinOp: 11, RightAssociative: true})

	kw := func(t Type, name string, beforeExpr, startsExpr, isLoop bool) {
		define(t, Kind{Label: name, Keyword: name, BeforeExpr: beforeExpr, StartsExpr: startsExpr, IsLoop: isLoop})
	}
	kw(Break, "break", false, false, false)
	kw(Case, "case", true, false, false)
	kw(Catch, "catch", false, false, false)
	kw(Continue, "continue", false, false, false)
	kw(Debugger, "debugger", false, false, false)
	kw(Default, "default", true, false, false)
	kw(Do, "do", true, false, true)
	kw(Else, "else", true, false, false)
	kw(Finally, "finally", false, false, false)
	kw(For, "for", false, false, true)
	kw(Function, "function", false, true, false)
	kw(If, "if", false, false, false)
	kw(Return, "return", true, false, false)
	kw(Switch, "switch", false, false, false)
	kw(Throw, "throw", true, false, false)
	kw(Try, "try", false, false, false)
	kw(Var, "var", false, false, false)
	kw(Const, "const", false, false, false)
	kw(Let, "let", false, false, false)
	kw(While, "while", false, false, true)
	kw(With, "with", false, false, false)
	kw(New, "new", true, true, false)
	kw(This, "this", false, true, false)
	kw(Super, "super", false, true, false)
	kw(Class, "class", false, true, false)
	kw(Extends, "extends", true, false, false)
	kw(Export, "export", false, false, false)
	kw(Import, "import", false, true, false)
	kw(Null, "null", false, true, false)
	kw(True, "true", false, true, false)
	kw(False, "false", false, true, false)
	kw(In, "in", true, false, false)
	kw(Instanceof, "instanceof", true, false, false)
	kw(Typeof, "typeof", true, true, false)
	kw(Void, "void", true, true, false)
	kw(Delete, "delete", true, true, false)

	kinds[In].BinOp = 7
	kinds[Instanceof].BinOp = 7
	kinds[Typeof].Prefix = true
	kinds[Void].Prefix = true
	kinds[Delete].Prefix = true
}
