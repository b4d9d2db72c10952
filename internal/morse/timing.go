package morse

import (
	"math"

	"github.com/tcort/text-to-cw/internal/audio"
)

// sampleRate is the fixed output sample rate the timing model is
// defined at. It matches audio.FormatCW.
const sampleRate = int(audio.SampleRate44100)

// unitSamples returns the base time unit in samples for a sending
// speed. The standard word PARIS is 50 units long, so one unit lasts
// 60/(50*wpm) seconds.
// Timing reference: https://morsecode.world/international/timing.html
func unitSamples(wpm int) int {
	return int(math.Round(float64(sampleRate) * 60.0 / (50.0 * float64(wpm))))
}

func ditSamples(wpm int) int { return 1 * unitSamples(wpm) }
func dahSamples(wpm int) int { return 3 * unitSamples(wpm) }

// intraCharacterSpaceSamples runs at the send speed, not the Farnsworth
// speed, so the rhythm inside a character is unchanged by spacing.
func intraCharacterSpaceSamples(wpm int) int { return 1 * unitSamples(wpm) }

func interCharacterSpaceSamples(fwpm int) int { return 3 * unitSamples(fwpm) }

// interWordSpaceSamples is 5 units rather than the standard 7 because
// an inter-character space is emitted before and after the space byte
// itself, bringing the audible word gap up to 7.
func interWordSpaceSamples(fwpm int) int { return 5 * unitSamples(fwpm) }

// Tone edges are shaped over 10% of a dit so keying is not harsh.
func riseSamples(wpm int) int { return ditSamples(wpm) / 10 }
func fallSamples(wpm int) int { return ditSamples(wpm) / 10 }
