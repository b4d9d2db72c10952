package morse

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    byte
		expected SymbolSequence
	}{
		{name: "Letter A", input: 'A', expected: SymbolSequence{Dot, Dash}},
		{name: "Letter S", input: 'S', expected: SymbolSequence{Dot, Dot, Dot}},
		{name: "Letter O", input: 'O', expected: SymbolSequence{Dash, Dash, Dash}},
		{name: "Lowercase q", input: 'q', expected: SymbolSequence{Dash, Dash, Dot, Dash}},
		{name: "Digit 0", input: '0', expected: SymbolSequence{Dash, Dash, Dash, Dash, Dash}},
		{name: "Digit 5", input: '5', expected: SymbolSequence{Dot, Dot, Dot, Dot, Dot}},
		{name: "Comma", input: ',', expected: SymbolSequence{Dash, Dash, Dot, Dot, Dash, Dash}},
		{name: "Period", input: '.', expected: SymbolSequence{Dot, Dash, Dot, Dash, Dot, Dash}},
		{name: "Equals", input: '=', expected: SymbolSequence{Dash, Dot, Dot, Dot, Dash}},
		{name: "Question mark", input: '?', expected: SymbolSequence{Dot, Dot, Dash, Dash, Dot, Dot}},
		{name: "Space", input: ' ', expected: SymbolSequence{WordSpace}},
		{name: "Tab", input: '\t', expected: SymbolSequence{WordSpace}},
		{name: "NUL control byte", input: 0x00, expected: SymbolSequence{}},
		{name: "Newline", input: '\n', expected: SymbolSequence{}},
		{name: "Unmapped punctuation", input: '!', expected: SymbolSequence{}},
		{name: "Non-ASCII byte", input: 0xC8, expected: SymbolSequence{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.input)
			if !equalSequences(got, tt.expected) {
				t.Errorf("Lookup(%#x) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		lower := Lookup(c)
		upper := Lookup(c - 'a' + 'A')
		if !equalSequences(lower, upper) {
			t.Errorf("Lookup(%q) = %v, but Lookup(%q) = %v", c, lower, c-'a'+'A', upper)
		}
	}
}

func TestLookupCoverage(t *testing.T) {
	// 26 letters twice, 10 digits, 4 punctuation marks, space and tab.
	const wantMapped = 26 + 26 + 10 + 4 + 2

	mapped := 0
	for b := 0; b < 256; b++ {
		if len(Lookup(byte(b))) > 0 {
			mapped++
		}
	}
	if mapped != wantMapped {
		t.Errorf("mapped byte values = %d, want %d", mapped, wantMapped)
	}
}

func equalSequences(a, b SymbolSequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
