// SPDX-License-Identifier: EPL-2.0

package aiff

import "fmt"

const (
	// MaxChannels bounds the per-channel predictor state
	MaxChannels = 4

	MinSampleRate = 300
	MaxSampleRate = 128000

	// DefaultMaxFileSize is used when Config.MaxFileSize is zero
	DefaultMaxFileSize = 64 * 1024 * 1024
)

// CompressionMode selects the decode path of a Stream.
type CompressionMode int

const (
	// CompressionNone is linear big-endian PCM
	CompressionNone CompressionMode = iota
	// CompressionSDX2 is the 2:1 square-root-delta codec
	CompressionSDX2
)

func (m CompressionMode) String() string {
	switch m {
	case CompressionNone:
		return "none"
	case CompressionSDX2:
		return "SDX2"
	default:
		return fmt.Sprintf("CompressionMode(%d)", int(m))
	}
}

// AudioFormat describes the decoded output layout.
type AudioFormat int

const (
	Mono8 AudioFormat = iota
	Mono16
	Stereo8
	Stereo16
)

func (f AudioFormat) String() string {
	switch f {
	case Mono8:
		return "mono 8-bit"
	case Mono16:
		return "mono 16-bit"
	case Stereo8:
		return "stereo 8-bit"
	case Stereo16:
		return "stereo 16-bit"
	default:
		return fmt.Sprintf("AudioFormat(%d)", int(f))
	}
}

// Channels returns 1 for mono formats and 2 for stereo formats.
func (f AudioFormat) Channels() int {
	if f == Stereo8 || f == Stereo16 {
		return 2
	}
	return 1
}

// Is16Bit reports whether samples are two bytes wide.
func (f AudioFormat) Is16Bit() bool { return f == Mono16 || f == Stereo16 }

// Config controls how a Stream is opened. The zero value is ready to use
// and produces little-endian output.
type Config struct {
	// WantBigEndian selects the byte order of 16-bit output
	WantBigEndian bool

	// MaxFileSize rejects larger inputs; 0 means DefaultMaxFileSize
	MaxFileSize int
}

// FileSizeLimit returns the largest accepted input size in bytes.
func (c Config) FileSizeLimit() int {
	if c.MaxFileSize > 0 {
		return c.MaxFileSize
	}
	return DefaultMaxFileSize
}

// layout is the validated description of a stream.
type layout struct {
	mode          CompressionMode
	channels      int
	bitsPerSample int
	sampleRate    int
	totalFrames   uint64
	frameSize     int // decoded bytes per frame
	blockSize     int // stored bytes per frame
}

// validate checks the parsed header against the supported combinations
// and derives the frame strides.
func validate(h *header) (layout, error) {
	c := h.common

	bits := (int(c.sampleSize) + 7) &^ 7
	if bits == 0 || bits > 16 {
		return layout{}, fmt.Errorf("%w %d", ErrUnsupportedBitDepth, c.sampleSize)
	}
	if c.channels != 1 && c.channels != 2 {
		return layout{}, fmt.Errorf("%w %d", ErrUnsupportedChannels, c.channels)
	}
	if c.sampleRate < MinSampleRate || c.sampleRate > MaxSampleRate {
		return layout{}, fmt.Errorf("%w %d Hz", ErrUnsupportedSampleRate, c.sampleRate)
	}
	if c.frames == 0 {
		return layout{}, ErrEmptyStream
	}

	l := layout{
		channels:      int(c.channels),
		bitsPerSample: bits,
		sampleRate:    int(c.sampleRate),
		totalFrames:   uint64(c.frames),
	}

	switch {
	case h.formType == formTypeAIF && c.compression == compressionNone:
		l.mode = CompressionNone
	case h.formType == formTypeAFC && c.compression == compressionSDX2:
		l.mode = CompressionSDX2
	default:
		return layout{}, fmt.Errorf("%w %q in %s file", ErrUnsupportedCompression, c.compression, h.formType)
	}

	l.frameSize = bits / 8 * l.channels
	l.blockSize = l.frameSize

	if l.mode == CompressionSDX2 {
		if bits != 16 {
			return layout{}, fmt.Errorf("%w %d for SDX2", ErrUnsupportedBitDepth, bits)
		}
		if l.channels > MaxChannels {
			return layout{}, fmt.Errorf("%w %d for SDX2", ErrUnsupportedChannels, l.channels)
		}
		l.blockSize = l.frameSize / 2
	}
	return l, nil
}
