package parser

// Punctuation/operator scanning: the multi-char micro-state-machines spec.md
// §4.D enumerates, grounded directly on mcgru-funxy's internal/lexer.
// NextToken switch/peekChar pattern (one case per leading byte, each
// resolving 1-, 2-, or 3-character operators via further peekChar calls).

import (
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) readPunctuation(r rune, w int, start int, startPos token.Position, newlineBefore bool) token.Token {
	switch r {
	case '(':
		s.pos++
		return s.finishToken(token.ParenL, nil, start, startPos, newlineBefore)
	case ')':
		s.pos++
		return s.finishToken(token.ParenR, nil, start, startPos, newlineBefore)
	case '[':
		s.pos++
		return s.finishToken(token.BracketL, nil, start, startPos, newlineBefore)
	case ']':
		s.pos++
		return s.finishToken(token.BracketR, nil, start, startPos, newlineBefore)
	case '{':
		s.pos++
		return s.finishToken(token.BraceL, nil, start, startPos, newlineBefore)
	case '}':
		s.pos++
		return s.finishToken(token.BraceR, nil, start, startPos, newlineBefore)
	case ';':
		s.pos++
		return s.finishToken(token.Semi, nil, start, startPos, newlineBefore)
	case ',':
		s.pos++
		return s.finishToken(token.Comma, nil, start, startPos, newlineBefore)
	case '@':
		s.pos++
		return s.finishToken(token.At, nil, start, startPos, newlineBefore)
	case '#':
		s.pos++
		return s.finishToken(token.Hash, nil, start, startPos, newlineBefore)

	case '.':
		if s.byteAt(1) == '.' && s.byteAt(2) == '.' {
			s.pos += 3
			return s.finishToken(token.Ellipsis, nil, start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Dot, nil, start, startPos, newlineBefore)

	case '?':
		if s.byteAt(1) == '.' && !isDigit(s.byteAt(2)) {
			s.pos += 2
			return s.finishToken(token.QuestionDot, nil, start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '?' {
			s.pos += 2
			if s.curByte() == '=' {
				s.pos++
				return s.finishToken(token.Assign, "??=", start, startPos, newlineBefore)
			}
			return s.finishToken(token.NullishCoalesce, nil, start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Question, nil, start, startPos, newlineBefore)

	case ':':
		s.pos++
		return s.finishToken(token.Colon, nil, start, startPos, newlineBefore)

	case '=':
		if s.byteAt(1) == '>' {
			s.pos += 2
			return s.finishToken(token.Arrow, nil, start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' && s.byteAt(2) == '=' {
			s.pos += 3
			return s.finishToken(token.Equality, "===", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Equality, "==", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Eq, "=", start, startPos, newlineBefore)

	case '!':
		if s.byteAt(1) == '=' && s.byteAt(2) == '=' {
			s.pos += 3
			return s.finishToken(token.Equality, "!==", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Equality, "!=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Prefix, "!", start, startPos, newlineBefore)

	case '<':
		if s.byteAt(1) == '<' {
			if s.byteAt(2) == '=' {
				s.pos += 3
				return s.finishToken(token.Assign, "<<=", start, startPos, newlineBefore)
			}
			s.pos += 2
			return s.finishToken(token.BitShift, "<<", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Relational, "<=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Relational, "<", start, startPos, newlineBefore)

	case '>':
		if s.byteAt(1) == '>' && s.byteAt(2) == '>' {
			if s.byteAt(3) == '=' {
				s.pos += 4
				return s.finishToken(token.Assign, ">>>=", start, startPos, newlineBefore)
			}
			s.pos += 3
			return s.finishToken(token.BitShift, ">>>", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '>' {
			if s.byteAt(2) == '=' {
				s.pos += 3
				return s.finishToken(token.Assign, ">>=", start, startPos, newlineBefore)
			}
			s.pos += 2
			return s.finishToken(token.BitShift, ">>", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Relational, ">=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Relational, ">", start, startPos, newlineBefore)

	case '+':
		if s.byteAt(1) == '+' {
			s.pos += 2
			return s.finishToken(token.IncDec, "++", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "+=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.PlusMin, "+", start, startPos, newlineBefore)

	case '-':
		if s.byteAt(1) == '-' {
			s.pos += 2
			return s.finishToken(token.IncDec, "--", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "-=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.PlusMin, "-", start, startPos, newlineBefore)

	case '*':
		if s.byteAt(1) == '*' {
			if s.byteAt(2) == '=' {
				s.pos += 3
				return s.finishToken(token.Assign, "**=", start, startPos, newlineBefore)
			}
			s.pos += 2
			return s.finishToken(token.StarStar, "**", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "*=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Star, "*", start, startPos, newlineBefore)

	case '%':
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "%=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Modulo, "%", start, startPos, newlineBefore)

	case '/':
		if s.exprAllowed {
			return s.readRegexp(start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "/=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.Slash, "/", start, startPos, newlineBefore)

	case '&':
		if s.byteAt(1) == '&' {
			if s.byteAt(2) == '=' {
				s.pos += 3
				return s.finishToken(token.Assign, "&&=", start, startPos, newlineBefore)
			}
			s.pos += 2
			return s.finishToken(token.LogicalAND, "&&", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "&=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.BitwiseAND, "&", start, startPos, newlineBefore)

	case '|':
		if s.byteAt(1) == '|' {
			if s.byteAt(2) == '=' {
				s.pos += 3
				return s.finishToken(token.Assign, "||=", start, startPos, newlineBefore)
			}
			s.pos += 2
			return s.finishToken(token.LogicalOR, "||", start, startPos, newlineBefore)
		}
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "|=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.BitwiseOR, "|", start, startPos, newlineBefore)

	case '^':
		if s.byteAt(1) == '=' {
			s.pos += 2
			return s.finishToken(token.Assign, "^=", start, startPos, newlineBefore)
		}
		s.pos++
		return s.finishToken(token.BitwiseXOR, "^", start, startPos, newlineBefore)

	case '~':
		s.pos++
		return s.finishToken(token.Prefix, "~", start, startPos, newlineBefore)
	}

	s.raise(start, diagnostics.KindLex, diagnostics.ErrForbiddenCharacter, string(r))
	s.pos += w
	return s.finishToken(token.Illegal, nil, start, startPos, newlineBefore)
}

// readRegexp scans a /pattern/flags literal. Only reachable when exprAllowed
// is true (component C's contract: a `/` after an operand is always
// division, never a regex start).
func (s *State) readRegexp(start int, startPos token.Position, newlineBefore bool) token.Token {
	s.pos++ // leading /
	inClass := false
	for {
		if s.eof() {
			s.raise(start, diagnostics.KindLex, diagnostics.ErrUnterminatedRegexp)
		}
		c := s.curByte()
		if c == '\n' || c == '\r' {
			s.raise(start, diagnostics.KindLex, diagnostics.ErrUnterminatedRegexp)
		}
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			s.pos++
			break
		}
		s.pos++
	}
	patternEnd := s.pos - 1
	flagsStart := s.pos
	for isIdentContinueASCII(s.curByte()) {
		s.pos++
	}
	flags := s.input[flagsStart:s.pos]
	if !validRegexpFlags(flags) {
		s.raise(flagsStart, diagnostics.KindLex, diagnostics.ErrInvalidRegexpFlags)
	}
	pattern := s.input[start+1 : patternEnd]
	return s.finishToken(token.Regexp, token.RegexpValue{Pattern: pattern, Flags: flags}, start, startPos, newlineBefore)
}

func isIdentContinueASCII(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

func validRegexpFlags(flags string) bool {
	seen := map[byte]bool{}
	for i := 0; i < len(flags); i++ {
		c := flags[i]
		switch c {
		case 'g', 'i', 'm', 's', 'u', 'y', 'd', 'v':
			if seen[c] {
				return false
			}
			seen[c] = true
		default:
			return false
		}
	}
	return true
}
