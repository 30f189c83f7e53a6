package diagnostics

import (
	"strings"
	"testing"

	"github.com/funvibe/ecmaparse/internal/token"
)

func TestErrorFormatsMessageAndPosition(t *testing.T) {
	e := New(KindScope, ErrStrictEvalArguments, 10, token.Position{Line: 2, Column: 5}, "eval")
	got := e.Error()
	want := "'eval' cannot be used as a binding in strict mode (2:5)"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithoutArgs(t *testing.T) {
	e := New(KindLex, ErrUnterminatedString, 0, token.Position{Line: 1, Column: 0})
	if !strings.HasSuffix(e.Error(), "(1:0)") {
		t.Fatalf("Error() = %q, want it to end with the position suffix", e.Error())
	}
	if !strings.Contains(e.Error(), "unterminated string") {
		t.Fatalf("Error() = %q, want it to contain the message template", e.Error())
	}
}

func TestErrorUnknownCodeFallsBackToCodeString(t *testing.T) {
	e := New(KindGrammar, Code("X999"), 0, token.Position{Line: 1, Column: 1})
	if !strings.HasPrefix(e.Error(), "X999") {
		t.Fatalf("Error() = %q, want it to start with the raw code", e.Error())
	}
}
