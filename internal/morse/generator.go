package morse

import (
	"bufio"
	"errors"
	"io"

	"github.com/tcort/text-to-cw/internal/apperrors"
	"github.com/tcort/text-to-cw/internal/config"
)

// Generator converts a byte stream into CW audio samples. It owns the
// five pre-synthesized segments and the output buffer for one run; a
// Generator is not reusable across runs and not safe for concurrent
// use (the pipeline is deliberately single-threaded).
type Generator struct {
	dit                 Segment
	dah                 Segment
	intraCharacterSpace Segment
	interCharacterSpace Segment
	interWordSpace      Segment

	buf     *Buffer
	started bool
}

// NewGenerator synthesizes the dit/dah tones and the three silences
// for the configured speeds and returns a Generator ready to consume
// input. The config must already be normalized.
func NewGenerator(cfg *config.Config) *Generator {
	wpm := cfg.WPM
	fwpm := cfg.FWPM
	frequency := float64(cfg.ToneFrequency)
	rise := riseSamples(wpm)
	fall := fallSamples(wpm)

	return &Generator{
		dit:                 synthesizeTone(ditSamples(wpm), frequency, sampleRate, amplitude, rise, fall),
		dah:                 synthesizeTone(dahSamples(wpm), frequency, sampleRate, amplitude, rise, fall),
		intraCharacterSpace: synthesizeSilence(intraCharacterSpaceSamples(wpm)),
		interCharacterSpace: synthesizeSilence(interCharacterSpaceSamples(fwpm)),
		interWordSpace:      synthesizeSilence(interWordSpaceSamples(fwpm)),
		buf:                 newBuffer(),
	}
}

// WriteByte appends the audio for one input byte. Every byte after the
// first is preceded by an inter-character space, even when the byte
// has no morse mapping: unsupported bytes produce an audible timing
// gap but no tone.
func (g *Generator) WriteByte(c byte) error {
	if g.started {
		if err := g.buf.Append(g.interCharacterSpace); err != nil {
			return err
		}
	}
	g.started = true

	for k, sym := range Lookup(c) {
		if k > 0 {
			if err := g.buf.Append(g.intraCharacterSpace); err != nil {
				return err
			}
		}
		var seg Segment
		switch sym {
		case Dot:
			seg = g.dit
		case Dash:
			seg = g.dah
		case WordSpace:
			seg = g.interWordSpace
		}
		if err := g.buf.Append(seg); err != nil {
			return err
		}
	}
	return nil
}

// Run consumes the whole byte stream in order. No trailing space is
// appended after the last byte.
func (g *Generator) Run(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return apperrors.InputUnavailable("could not read input").Wrap(err)
		}
		if err := g.WriteByte(c); err != nil {
			return err
		}
	}
}

// Samples returns the accumulated waveform in time order.
func (g *Generator) Samples() []int16 {
	return g.buf.Samples()
}

// Len returns the total number of accumulated samples.
func (g *Generator) Len() int {
	return g.buf.Len()
}
