package morse

import "github.com/tcort/text-to-cw/internal/apperrors"

// maxTotalSamples bounds the output waveform. At 44.1 kHz this is over
// six hours of audio; growth beyond it is treated as an allocation
// failure and aborts the run with no partial output.
const maxTotalSamples = 1 << 30

// Buffer is the append-only accumulator for the finished waveform.
// Its length always equals the sum of the lengths of all appended
// segments; append order is time order.
type Buffer struct {
	samples []int16
	limit   int
}

func newBuffer() *Buffer {
	return &Buffer{limit: maxTotalSamples}
}

// Append concatenates a segment after all previously appended samples.
func (b *Buffer) Append(seg Segment) error {
	if len(b.samples)+len(seg) > b.limit {
		return apperrors.Allocation("sample buffer would exceed %d samples", b.limit)
	}
	b.samples = append(b.samples, seg...)
	return nil
}

// Samples returns the accumulated waveform.
func (b *Buffer) Samples() []int16 {
	return b.samples
}

// Len returns the number of accumulated samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}
