package charclass

import "testing"

func TestIsIdentifierStart(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'Z', true}, {'_', true}, {'$', true},
		{'0', false}, {'-', false}, {' ', false},
		{0x00C0, true},  // Latin capital A with grave (BMP ID_Start)
		{0x0039, false}, // ASCII digit '9'
		{0x10000, true}, // Linear B Syllabary (astral ID_Start)
	}
	for _, c := range cases {
		if got := IsIdentifierStart(c.r); got != c.want {
			t.Errorf("IsIdentifierStart(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsIdentifierChar(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'9', true}, {'_', true},
		{0x0300, true},  // combining grave accent (BMP ID_Continue)
		{0x101FD, true}, // Phaistos disc combining mark (astral ID_Continue)
		{'-', false},
	}
	for _, c := range cases {
		if got := IsIdentifierChar(c.r); got != c.want {
			t.Errorf("IsIdentifierChar(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsNewLine(t *testing.T) {
	for _, r := range []rune{'\n', '\r', 0x2028, 0x2029} {
		if !IsNewLine(r) {
			t.Errorf("IsNewLine(%U) = false, want true", r)
		}
	}
	if IsNewLine('a') {
		t.Error("IsNewLine('a') = true, want false")
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\v', '\f', 0x00A0, 0xFEFF} {
		if !IsWhitespace(r) {
			t.Errorf("IsWhitespace(%U) = false, want true", r)
		}
	}
	if IsWhitespace('\n') {
		t.Error("IsWhitespace('\\n') should be false; newlines are handled by IsNewLine")
	}
}

func TestDecodeRune(t *testing.T) {
	s := "aé\U0001F600"
	r, w := DecodeRune(s, 0)
	if r != 'a' || w != 1 {
		t.Fatalf("DecodeRune at 0 = (%q, %d), want ('a', 1)", r, w)
	}
	r, w = DecodeRune(s, 1)
	if r != 'é' || w != 2 {
		t.Fatalf("DecodeRune at 1 = (%q, %d), want ('\\u00e9', 2)", r, w)
	}
	if _, w := DecodeRune(s, len(s)); w != 0 {
		t.Fatalf("DecodeRune past end returned width %d, want 0", w)
	}
}
