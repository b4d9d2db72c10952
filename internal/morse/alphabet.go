// Package morse converts a byte stream into a timed CW audio waveform.
//
// The pipeline is fully sequential: each input byte is looked up in a
// static alphabet, its dot/dash elements are mapped to pre-synthesized
// tone and silence segments, and the segments are appended in time
// order to a single growable sample buffer.
package morse

// Symbol is one signal element of a character's morse sequence.
type Symbol byte

// Signal elements.
const (
	// Dot is the short tone element, one unit long.
	Dot Symbol = iota
	// Dash is the long tone element, three units long.
	Dash
	// WordSpace is the silent gap separating words.
	WordSpace
)

// SymbolSequence is the ordered morse sequence for one character.
// Most byte values have no morse mapping and carry the empty sequence;
// that is a valid silent result, not an error.
type SymbolSequence []Symbol

// alphabet maps each byte value to its morse sequence in compact
// dot/dash notation. Letters are case-insensitive; the space and tab
// bytes map to a word space. Everything else is untransmittable and
// stays empty.
var alphabet = [256]string{
	'\t': " ",
	' ':  " ",

	',': "--..--",
	'.': ".-.-.-",
	'=': "-...-",
	'?': "..--..",

	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",

	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",

	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
	'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
	'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
	'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
	'z': "--..",
}

// sequences is the decoded form of alphabet, built once at startup.
var sequences [256]SymbolSequence

func init() {
	for b, code := range alphabet {
		seq := make(SymbolSequence, 0, len(code))
		for i := 0; i < len(code); i++ {
			switch code[i] {
			case '.':
				seq = append(seq, Dot)
			case '-':
				seq = append(seq, Dash)
			case ' ':
				seq = append(seq, WordSpace)
			}
		}
		sequences[b] = seq
	}
}

// Lookup returns the morse sequence for a byte value. Bytes without a
// mapping return the empty sequence.
func Lookup(b byte) SymbolSequence {
	return sequences[b]
}
