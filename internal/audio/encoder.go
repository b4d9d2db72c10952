// Package audio encodes finished sample buffers into audio container
// files. The synthesis core hands it raw signed 16-bit samples plus
// the fixed format parameters; this package is the system of record
// for container framing and compression.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// flacBlockSize is the number of samples encoded per FLAC frame.
const flacBlockSize = 4096

// CodecForPath selects the container codec from the output file
// extension. Unknown extensions encode as FLAC, the historical
// default for this tool.
func CodecForPath(path string) Codec {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return CodecWAV
	}
	return CodecFLAC
}

// Encode writes the complete sample buffer to path in the container
// selected by the path's extension. The file is written to a
// temporary name in the target directory and renamed into place, so a
// failed encode never leaves a partial output file.
func Encode(path string, samples []int16, format Format) error {
	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	f, err := os.Create(tmp)
	if err != nil {
		return NewEncodeError(OpWriteOutput, path, err)
	}

	// Each codec owns closing f: the FLAC encoder closes its
	// underlying writer on Close, so a shared close here would
	// double-close the file.
	codec := CodecForPath(path)
	switch codec {
	case CodecWAV:
		err = encodeWAV(f, samples, format)
	default:
		err = encodeFLAC(f, samples, format)
	}
	if err != nil {
		_ = os.Remove(tmp)
		op := OpEncodeFLAC
		if codec == CodecWAV {
			op = OpEncodeWAV
		}
		return NewEncodeError(op, path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return NewEncodeError(OpWriteOutput, path, err)
	}
	return nil
}

// encodeFLAC writes the samples as a FLAC stream with verbatim
// mono subframes. The encoder's Close also closes f.
func encodeFLAC(f *os.File, samples []int16, format Format) error {
	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(format.SampleRate),
		NChannels:     uint8(format.Channels),
		BitsPerSample: uint8(format.BitDepth),
		NSamples:      uint64(len(samples)),
	}

	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		_ = f.Close()
		return err
	}

	for start := 0; start < len(samples); start += flacBlockSize {
		end := start + flacBlockSize
		if end > len(samples) {
			end = len(samples)
		}
		block := samples[start:end]

		sub := &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			NSamples:  len(block),
			Samples:   make([]int32, len(block)),
		}
		for i, s := range block {
			sub.Samples[i] = int32(s)
		}

		fr := &frame.Frame{
			Header: frame.Header{
				// Variable block size, so Num is the index of the
				// frame's first sample.
				Num:               uint64(start),
				HasFixedBlockSize: false,
				BlockSize:         uint16(len(block)),
				SampleRate:        uint32(format.SampleRate),
				Channels:          frame.ChannelsMono,
				BitsPerSample:     uint8(format.BitDepth),
			},
			Subframes: []*frame.Subframe{sub},
		}
		if err := enc.WriteFrame(fr); err != nil {
			_ = enc.Close()
			return err
		}
	}

	return enc.Close()
}

// encodeWAV writes the samples as a 16-bit PCM RIFF WAVE file and
// closes f.
func encodeWAV(f *os.File, samples []int16, format Format) error {
	enc := wav.NewEncoder(f, int(format.SampleRate), int(format.BitDepth), int(format.Channels), 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(format.Channels),
			SampleRate:  int(format.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(format.BitDepth),
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
