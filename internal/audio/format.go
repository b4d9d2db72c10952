package audio

// SampleRate represents an audio sample rate in Hz.
type SampleRate int

// Sample rates for audio output.
const (
	// SampleRate44100 represents CD-quality audio at 44.1 kHz
	SampleRate44100 SampleRate = 44100
)

// ChannelCount represents the number of audio channels.
type ChannelCount int

// Channel configurations.
const (
	// Mono represents single-channel audio
	Mono ChannelCount = 1
)

// BitDepth represents the number of bits per sample.
type BitDepth int

// Bit depths for audio output.
const (
	// BitDepth16 is 16-bit signed PCM
	BitDepth16 BitDepth = 16
)

// Codec represents the audio container format.
type Codec string

// Audio codecs for encoding.
const (
	// CodecFLAC is Free Lossless Audio Codec
	CodecFLAC Codec = "flac"
	// CodecWAV is 16-bit signed little-endian PCM in a RIFF WAVE container
	CodecWAV Codec = "wav"
)

// Format defines a complete audio format specification.
type Format struct {
	SampleRate SampleRate
	Channels   ChannelCount
	BitDepth   BitDepth
}

// FormatCW defines the output format for generated morse code audio
// (44.1 kHz, mono, 16-bit). The timing model is defined at this fixed
// sample rate; it is not configurable.
var FormatCW = Format{
	SampleRate: SampleRate44100,
	Channels:   Mono,
	BitDepth:   BitDepth16,
}
