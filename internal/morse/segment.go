package morse

import "math"

// amplitude is the peak value of generated tones: half of 16384, well
// inside the int16 range so the envelope math can never overflow.
const amplitude = 16384 * 0.50

// Segment is an immutable run of signed 16-bit samples. Each of the
// five segment kinds (dit tone, dah tone and the three silences) is
// synthesized once per run and reused for every occurrence.
type Segment []int16

// synthesizeTone generates a sine tone of the given duration with a
// linear fade-in over the first rise samples and a linear fade-out
// over the last fall samples.
func synthesizeTone(duration int, frequency float64, rate int, peak float64, rise, fall int) Segment {
	samples := make(Segment, duration)
	for i := range samples {
		t := float64(i) / float64(rate)
		v := peak * math.Sin(2*math.Pi*frequency*t)
		if i < rise {
			v *= float64(i) / float64(rise)
		} else if i > duration-fall {
			v *= float64(duration-i) / float64(fall)
		}
		samples[i] = int16(v)
	}
	return samples
}

// synthesizeSilence generates a segment of all-zero samples.
func synthesizeSilence(duration int) Segment {
	return make(Segment, duration)
}
