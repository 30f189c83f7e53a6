package parser

// Numeric-literal scanning, grounded on mcgru-funxy's internal/lexer.
// readNumber (hex/octal/binary prefixes, float dot, numeric separators),
// generalized to add the `n` BigInt suffix spec.md §3 requires as a
// distinct token type (rather than funxy's single Num token), since JS's
// BigIntLiteral/NumericLiteral are separate AST node types. BigInt payloads
// are normalized through math/big.Int at scan time so a literal's value is
// exact and radix-independent regardless of how large it is or whether it
// was written in hex/octal/binary/decimal (spec.md §4.D).

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) readNumber(start int, startPos token.Position, newlineBefore bool) token.Token {
	isFloat := false
	if s.curByte() == '0' && (s.byteAt(1) == 'x' || s.byteAt(1) == 'X') {
		return s.readRadixNumber(start, startPos, newlineBefore, 16, 2)
	}
	if s.curByte() == '0' && (s.byteAt(1) == 'o' || s.byteAt(1) == 'O') {
		return s.readRadixNumber(start, startPos, newlineBefore, 8, 2)
	}
	if s.curByte() == '0' && (s.byteAt(1) == 'b' || s.byteAt(1) == 'B') {
		return s.readRadixNumber(start, startPos, newlineBefore, 2, 2)
	}
	// Legacy octal: a leading 0 followed by more digits, no dot/exponent.
	if s.curByte() == '0' && isDigit(s.byteAt(1)) {
		return s.readLegacyOctalNumber(start, startPos, newlineBefore)
	}

	s.consumeDigits()
	if s.curByte() == '.' {
		isFloat = true
		s.pos++
		s.consumeDigits()
	}
	if s.curByte() == 'e' || s.curByte() == 'E' {
		isFloat = true
		s.pos++
		if s.curByte() == '+' || s.curByte() == '-' {
			s.pos++
		}
		s.consumeDigits()
	}

	raw := s.input[start:s.pos]
	clean := strings.ReplaceAll(raw, "_", "")

	if !isFloat && s.curByte() == 'n' {
		s.pos++
		s.rejectIdentifierAfterNumber(start)
		bi, ok := new(big.Int).SetString(clean, 10)
		if !ok {
			s.raise(start, diagnostics.KindLex, diagnostics.ErrInvalidBigIntLiteral)
		}
		return s.finishToken(token.BigInt, bi, start, startPos, newlineBefore)
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		s.raise(start, diagnostics.KindLex, diagnostics.ErrInvalidBigIntLiteral)
	}
	s.rejectIdentifierAfterNumber(start)
	return s.finishToken(token.Num, v, start, startPos, newlineBefore)
}

func (s *State) readRadixNumber(start int, startPos token.Position, newlineBefore bool, radix int, skip int) token.Token {
	s.pos += skip
	digitsStart := s.pos
	for isRadixDigit(s.curByte(), radix) || s.curByte() == '_' {
		s.pos++
	}
	if s.pos == digitsStart {
		s.raise(start, diagnostics.KindLex, diagnostics.ErrForbiddenCharacter, string(s.curByte()))
	}
	clean := strings.ReplaceAll(s.input[digitsStart:s.pos], "_", "")
	if s.curByte() == 'n' {
		s.pos++
		s.rejectIdentifierAfterNumber(start)
		bi, ok := new(big.Int).SetString(clean, radix)
		if !ok {
			s.raise(start, diagnostics.KindLex, diagnostics.ErrInvalidBigIntLiteral)
		}
		return s.finishToken(token.BigInt, bi, start, startPos, newlineBefore)
	}
	v, err := strconv.ParseInt(clean, radix, 64)
	if err != nil {
		s.raise(start, diagnostics.KindLex, diagnostics.ErrForbiddenCharacter, clean)
	}
	s.rejectIdentifierAfterNumber(start)
	return s.finishToken(token.Num, float64(v), start, startPos, newlineBefore)
}

// readLegacyOctalNumber handles `0777`-style literals (spec.md §4.D),
// recording their position the same way readLegacyOctalEscape does so
// strict mode can reject them retroactively.
func (s *State) readLegacyOctalNumber(start int, startPos token.Position, newlineBefore bool) token.Token {
	for isDigit(s.curByte()) {
		s.pos++
	}
	text := s.input[start:s.pos]
	allOctal := true
	for _, c := range text {
		if c > '7' {
			allOctal = false
			break
		}
	}
	if s.octalPos < 0 {
		s.octalPos = start
		s.octalMessage = "legacy octal literal"
	}
	var v int64
	if allOctal {
		v, _ = strconv.ParseInt(text, 8, 64)
	} else {
		f, _ := strconv.ParseFloat(text, 64)
		v = int64(f)
	}
	s.rejectIdentifierAfterNumber(start)
	return s.finishToken(token.Num, float64(v), start, startPos, newlineBefore)
}

func (s *State) consumeDigits() {
	for isDigit(s.curByte()) || s.curByte() == '_' {
		s.pos++
	}
}

func (s *State) rejectIdentifierAfterNumber(start int) {
	c := s.curByte()
	if isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$' {
		s.raise(start, diagnostics.KindLex, diagnostics.ErrIdentifierAfterNumber)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRadixDigit(c byte, radix int) bool {
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}
