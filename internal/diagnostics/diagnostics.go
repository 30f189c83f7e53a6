// Package diagnostics implements the error model of spec.md §7: a single
// Error type carrying a human-readable message, a byte offset, and a
// line/column, organized by a fixed error-code registry exactly as the
// teacher (mcgru-funxy/internal/diagnostics) organizes its own errors —
// ErrorCode + a message-template map + a phase tag. Re-scoped from the
// teacher's four phases (lexer/parser/analyzer/runtime) to spec.md §7's four
// error kinds, since this core has no analyzer or runtime phase.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/ecmaparse/internal/token"
)

// Kind is the spec.md §7 error taxonomy bucket.
type Kind string

const (
	KindLex     Kind = "lex"
	KindGrammar Kind = "grammar"
	KindScope   Kind = "scope"
	KindPlugin  Kind = "plugin"
)

// Code identifies one specific diagnosable condition. Grouped by Kind using
// the teacher's L/P/A/R code-prefix convention (here Lex/Grammar/Scope/
// Plugin instead of Lexer/Parser/Analyzer/Runtime).
type Code string

const (
	// Lex errors (spec.md §7.1).
	ErrUnterminatedString      Code = "L001"
	ErrUnterminatedTemplate    Code = "L002"
	ErrUnterminatedRegexp      Code = "L003"
	ErrUnterminatedComment     Code = "L004"
	ErrInvalidEscape           Code = "L005"
	ErrInvalidNumericSeparator Code = "L006"
	ErrIdentifierAfterNumber   Code = "L007"
	ErrForbiddenCharacter      Code = "L008"
	ErrInvalidRegexpFlags      Code = "L009"
	ErrInvalidBigIntLiteral    Code = "L010"

	// Grammar errors (spec.md §7.2).
	ErrUnexpectedToken           Code = "P001"
	ErrReservedWordAsBinding     Code = "P002"
	ErrDuplicateProto            Code = "P003"
	ErrDuplicateDefault          Code = "P004"
	ErrRestNotLast               Code = "P005"
	ErrComplexBindingNoInit      Code = "P006"
	ErrUnparenthesizedUnaryPower Code = "P007"
	ErrInvalidLHS                Code = "P008"
	ErrIllegalNewlineAfterThrow  Code = "P009"
	ErrNoPrefixParseFn           Code = "P010"
	ErrExpectedToken             Code = "P011"
	ErrImportExportNotTopLevel   Code = "P012"

	// Scope/static errors (spec.md §7.3).
	ErrIllegalReturn       Code = "S001"
	ErrIllegalBreak        Code = "S002"
	ErrIllegalContinue     Code = "S003"
	ErrIllegalSuper        Code = "S004"
	ErrIllegalNewTarget    Code = "S005"
	ErrDuplicateParam      Code = "S006"
	ErrStrictEvalArguments Code = "S007"
	ErrDuplicateExport     Code = "S008"
	ErrStrictWith          Code = "S009"
	ErrStrictOctal         Code = "S010"

	// Plug-in errors (spec.md §7.4).
	ErrDecoratorMisuse    Code = "D001"
	ErrMissingPlugin      Code = "D002"
	ErrConflictingPlugins Code = "D003"
	ErrDeclareConflict    Code = "D004"
)

var messageTemplates = map[Code]string{
	ErrUnterminatedString:        "unterminated string constant",
	ErrUnterminatedTemplate:      "unterminated template literal",
	ErrUnterminatedRegexp:        "unterminated regular expression",
	ErrUnterminatedComment:       "unterminated comment",
	ErrInvalidEscape:             "invalid escape sequence",
	ErrInvalidNumericSeparator:   "invalid numeric separator",
	ErrIdentifierAfterNumber:     "identifier directly after number",
	ErrForbiddenCharacter:        "unexpected character '%s'",
	ErrInvalidRegexpFlags:        "invalid regular expression flags",
	ErrInvalidBigIntLiteral:      "invalid BigInt literal",
	ErrUnexpectedToken:           "unexpected token, expected %s but got %s",
	ErrReservedWordAsBinding:     "%s is a reserved word and cannot be used as a binding",
	ErrDuplicateProto:            "duplicate __proto__ fields are not allowed in object literals",
	ErrDuplicateDefault:          "multiple default clauses in switch statement",
	ErrRestNotLast:               "rest element must be last element",
	ErrComplexBindingNoInit:      "complex binding patterns require an initializer",
	ErrUnparenthesizedUnaryPower: "illegal expression: wrap the unary expression in parentheses",
	ErrInvalidLHS:                "invalid left-hand side in assignment",
	ErrIllegalNewlineAfterThrow:  "illegal newline after throw",
	ErrNoPrefixParseFn:           "unexpected token %s",
	ErrExpectedToken:             "expected %s, got %s",
	ErrImportExportNotTopLevel:   "'import' and 'export' may only appear at the top level",
	ErrIllegalReturn:             "'return' outside of function",
	ErrIllegalBreak:              "illegal break statement",
	ErrIllegalContinue:           "illegal continue statement",
	ErrIllegalSuper:              "'super' keyword is only valid inside a method",
	ErrIllegalNewTarget:          "'new.target' can only be used in functions",
	ErrDuplicateParam:            "duplicate parameter name not allowed in this context",
	ErrStrictEvalArguments:       "'%s' cannot be used as a binding in strict mode",
	ErrDuplicateExport:           "duplicate export '%s'",
	ErrStrictWith:                "'with' in strict mode",
	ErrStrictOctal:               "octal literals are not allowed in strict mode",
	ErrDecoratorMisuse:           "%s",
	ErrMissingPlugin:             "this syntax requires the '%s' plugin",
	ErrConflictingPlugins:        "plugins '%s' and '%s' cannot be used together",
	ErrDeclareConflict:           "%s",
}

// Error is a single parse failure: spec.md's "syntax error instance" (§6
// Error shape). Parsing stops at the first one (spec.md §1 non-goals / §7
// propagation policy).
type Error struct {
	Kind Kind
	Code Code
	Pos  int
	Loc  token.Position
	Args []interface{}
}

func (e *Error) Error() string {
	tmpl, ok := messageTemplates[e.Code]
	if !ok {
		tmpl = string(e.Code)
	}
	msg := tmpl
	if len(e.Args) > 0 {
		msg = fmt.Sprintf(tmpl, e.Args...)
	}
	return fmt.Sprintf("%s (%d:%d)", msg, e.Loc.Line, e.Loc.Column)
}

// New constructs an Error at the given byte offset and position.
func New(kind Kind, code Code, pos int, loc token.Position, args ...interface{}) *Error {
	return &Error{Kind: kind, Code: code, Pos: pos, Loc: loc, Args: args}
}
