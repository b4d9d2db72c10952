package morse

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/tcort/text-to-cw/internal/apperrors"
	"github.com/tcort/text-to-cw/internal/config"
)

func testConfig(wpm, fwpm int) *config.Config {
	cfg := &config.Config{WPM: wpm, FWPM: fwpm, ToneFrequency: 600}
	cfg.Normalize()
	return cfg
}

func TestGeneratorSOS(t *testing.T) {
	g := NewGenerator(testConfig(20, 20))
	if err := g.Run(strings.NewReader("SOS")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// dit intra dit intra dit, inter-char, dah intra dah intra dah,
	// inter-char, dit intra dit intra dit. No leading space.
	expected := concat(
		g.dit, g.intraCharacterSpace, g.dit, g.intraCharacterSpace, g.dit,
		g.interCharacterSpace,
		g.dah, g.intraCharacterSpace, g.dah, g.intraCharacterSpace, g.dah,
		g.interCharacterSpace,
		g.dit, g.intraCharacterSpace, g.dit, g.intraCharacterSpace, g.dit,
	)

	if !equalSamples(g.Samples(), expected) {
		t.Fatalf("SOS output = %d samples, want %d samples with identical content", g.Len(), len(expected))
	}
}

func TestGeneratorWordSpace(t *testing.T) {
	g := NewGenerator(testConfig(18, 12))
	if err := g.Run(strings.NewReader("A B")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The space byte is treated like any other byte: it gets its own
	// leading inter-character space, then emits the 5-unit word space,
	// and the following byte adds another inter-character space. The
	// three combine into the conventional 7-unit word gap.
	expected := concat(
		g.dit, g.intraCharacterSpace, g.dah,
		g.interCharacterSpace,
		g.interWordSpace,
		g.interCharacterSpace,
		g.dah, g.intraCharacterSpace, g.dit, g.intraCharacterSpace, g.dit, g.intraCharacterSpace, g.dit,
	)

	if !equalSamples(g.Samples(), expected) {
		t.Fatalf("output = %d samples, want %d samples with identical content", g.Len(), len(expected))
	}
}

func TestGeneratorUnsupportedByte(t *testing.T) {
	g := NewGenerator(testConfig(20, 20))
	if err := g.Run(bytes.NewReader([]byte{0x01, 'E'})); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The unsupported byte emits no tone but still costs the
	// inter-character space for the transition to the next byte.
	expected := concat(g.interCharacterSpace, g.dit)
	if !equalSamples(g.Samples(), expected) {
		t.Fatalf("output = %d samples, want %d", g.Len(), len(expected))
	}
	for i := 0; i < len(g.interCharacterSpace); i++ {
		if g.Samples()[i] != 0 {
			t.Fatalf("sample %d = %d, want silence before the supported byte", i, g.Samples()[i])
		}
	}
}

func TestGeneratorSingleByteHasNoSpaces(t *testing.T) {
	g := NewGenerator(testConfig(18, 18))
	if err := g.Run(strings.NewReader("E")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !equalSamples(g.Samples(), g.dit) {
		t.Fatalf("output = %d samples, want a bare dit of %d samples", g.Len(), len(g.dit))
	}
}

func TestGeneratorAdditivity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		wpm := 1 + rng.Intn(100)
		fwpm := 1 + rng.Intn(100)
		g := NewGenerator(testConfig(wpm, fwpm))

		input := make([]byte, rng.Intn(64))
		for i := range input {
			input[i] = byte(rng.Intn(256))
		}

		if err := g.Run(bytes.NewReader(input)); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		// Reference accumulator: sum segment lengths independently.
		want := 0
		for i, c := range input {
			if i != 0 {
				want += len(g.interCharacterSpace)
			}
			for k, sym := range Lookup(c) {
				if k > 0 {
					want += len(g.intraCharacterSpace)
				}
				switch sym {
				case Dot:
					want += len(g.dit)
				case Dash:
					want += len(g.dah)
				case WordSpace:
					want += len(g.interWordSpace)
				}
			}
		}

		if g.Len() != want {
			t.Fatalf("wpm=%d fwpm=%d input=%q: buffer length = %d, want %d", wpm, fwpm, input, g.Len(), want)
		}
	}
}

func TestBufferLimit(t *testing.T) {
	b := &Buffer{limit: 5}

	if err := b.Append(make(Segment, 3)); err != nil {
		t.Fatalf("append within limit failed: %v", err)
	}
	err := b.Append(make(Segment, 3))
	if err == nil {
		t.Fatal("append beyond limit succeeded, want allocation failure")
	}
	if !errors.Is(err, &apperrors.Error{Code: apperrors.CodeAllocation}) {
		t.Fatalf("error = %v, want allocation code", err)
	}
	if b.Len() != 3 {
		t.Fatalf("buffer length after failed append = %d, want 3", b.Len())
	}
}

func concat(segs ...Segment) []int16 {
	var out []int16
	for _, seg := range segs {
		out = append(out, seg...)
	}
	return out
}

func equalSamples(a, b []int16) bool {
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
