package parser

// String- and template-literal scanning (component D), grounded on
// mcgru-funxy's internal/lexer.readString / readStringWithInterpolation /
// readRawString, generalized from funxy's ${...}-splices-into-separate-
// tokens approach to spec.md §4.D's DollarBraceL/Template/BackQuote token
// triad, since the core needs a TemplateLiteral AST node with Quasis paired
// to Expressions rather than funxy's flattened interpolated-string AST node.

import (
	"strconv"
	"strings"

	"github.com/funvibe/ecmaparse/internal/charclass"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) readString(quote byte, start int, startPos token.Position, newlineBefore bool) token.Token {
	s.pos++ // opening quote
	var out strings.Builder
	for {
		if s.eof() {
			s.raise(start, diagnostics.KindLex, diagnostics.ErrUnterminatedString)
		}
		c := s.curByte()
		if c == quote {
			s.pos++
			break
		}
		if c == '\n' || c == '\r' {
			s.raise(start, diagnostics.KindLex, diagnostics.ErrUnterminatedString)
		}
		if c == '\\' {
			s.pos++
			s.readEscapeInto(&out, start)
			continue
		}
		r, w := charclass.DecodeRune(s.input, s.pos)
		out.WriteRune(r)
		s.pos += w
	}
	return s.finishToken(token.String, out.String(), start, startPos, newlineBefore)
}

// readEscapeInto decodes one escape sequence (the leading backslash has
// already been consumed) and appends its value to out. Legacy octal escapes
// are recorded via s.octalPos so the parser can retroactively reject them if
// the surrounding code turns out to be strict (spec.md §4.D / §4.G).
func (s *State) readEscapeInto(out *strings.Builder, literalStart int) {
	if s.eof() {
		s.raise(literalStart, diagnostics.KindLex, diagnostics.ErrUnterminatedString)
	}
	c := s.curByte()
	switch c {
	case 'n':
		out.WriteByte('\n')
		s.pos++
	case 't':
		out.WriteByte('\t')
		s.pos++
	case 'r':
		out.WriteByte('\r')
		s.pos++
	case 'b':
		out.WriteByte('\b')
		s.pos++
	case 'f':
		out.WriteByte('\f')
		s.pos++
	case 'v':
		out.WriteByte('\v')
		s.pos++
	case '\n':
		s.pos++
		s.line++
		s.lineStart = s.pos
	case '\r':
		s.pos++
		if s.curByte() == '\n' {
			s.pos++
		}
		s.line++
		s.lineStart = s.pos
	case 'x':
		s.pos++
		if s.pos+2 > len(s.input) {
			s.raise(s.pos, diagnostics.KindLex, diagnostics.ErrInvalidEscape)
		}
		hex := s.input[s.pos : s.pos+2]
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			s.raise(s.pos, diagnostics.KindLex, diagnostics.ErrInvalidEscape)
		}
		s.pos += 2
		out.WriteRune(rune(v))
	case 'u':
		r := s.readUnicodeEscapeInIdent(literalStart)
		out.WriteRune(r)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		s.readLegacyOctalEscape(out, literalStart)
	default:
		r, w := charclass.DecodeRune(s.input, s.pos)
		out.WriteRune(r)
		s.pos += w
	}
}

// readLegacyOctalEscape handles `\0`..`\377` (spec.md §4.D: "legacy octal
// escapes are lexed permissively; strict-mode rejection happens once the
// enclosing function/program is known to be strict", mirroring how
// directive-prologue strict detection in component G is itself deferred).
func (s *State) readLegacyOctalEscape(out *strings.Builder, literalStart int) {
	escStart := s.pos
	digitsStart := s.pos
	n := 0
	maxDigits := 3
	if s.curByte() > '3' {
		maxDigits = 2 // \400 and up would exceed \377
	}
	for n < maxDigits && s.curByte() >= '0' && s.curByte() <= '7' {
		s.pos++
		n++
	}
	octal := s.input[digitsStart:s.pos]
	v, _ := strconv.ParseInt(octal, 8, 32)
	if octal != "0" {
		if s.octalPos < 0 {
			s.octalPos = escStart
			s.octalMessage = "octal escape sequence"
		}
	}
	out.WriteByte(byte(v))
}

// readTemplateToken scans one piece of a template literal while the
// innermost context is ctxTemplate: either a run of quasi text up to the
// next `${` or closing backtick, or (the caller re-enters here after a
// `${...}` hole closes) more quasi text.
func (s *State) readTemplateToken(start int, startPos token.Position, newlineBefore bool) token.Token {
	if s.curByte() == '`' {
		s.pos++
		return s.finishToken(token.BackQuote, nil, start, startPos, newlineBefore)
	}
	if s.curByte() == '$' && s.byteAt(1) == '{' {
		s.pos += 2
		return s.finishToken(token.DollarBraceL, nil, start, startPos, newlineBefore)
	}
	var cooked strings.Builder
	valid := true
	for !s.eof() {
		c := s.curByte()
		if c == '`' || (c == '$' && s.byteAt(1) == '{') {
			break
		}
		if c == '\\' {
			s.pos++
			func() {
				defer func() {
					if recover() != nil {
						valid = false
					}
				}()
				s.readEscapeInto(&cooked, start)
			}()
			continue
		}
		if c == '\r' {
			// CRLF and lone CR both normalize to LF in template cooked/raw
			// values (spec.md §4.D).
			cooked.WriteByte('\n')
			s.pos++
			if s.curByte() == '\n' {
				s.pos++
			}
			s.line++
			s.lineStart = s.pos
			continue
		}
		if c == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
		r, w := charclass.DecodeRune(s.input, s.pos)
		cooked.WriteRune(r)
		s.pos += w
	}
	if s.eof() {
		s.raise(start, diagnostics.KindLex, diagnostics.ErrUnterminatedTemplate)
	}
	raw := normalizeTemplateRaw(s.input[start:s.pos])
	val := templateValue{cooked: cooked.String(), raw: raw, valid: valid}
	return s.finishToken(token.Template, val, start, startPos, newlineBefore)
}

// templateValue is the payload carried by a Template token; the parser
// turns a run of them into TemplateElement nodes (statements/expressions.go).
type templateValue struct {
	cooked string
	raw    string
	valid  bool
}

func normalizeTemplateRaw(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return raw
}
