// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Stream is an open AIFF or AIFC file.
//
// A Stream borrows the buffer given to Open and never modifies it; the
// buffer must outlive the Stream. It is not safe for concurrent use.
type Stream struct {
	name string

	mode          CompressionMode
	channels      int
	bitsPerSample int
	sampleRate    int
	frameSize     int
	blockSize     int

	totalFrames uint64
	curFrame    uint64
	// always curFrame * blockSize
	dataOffset int
	payload    []byte

	prev [MaxChannels]int16

	needSwap bool
	order    binary.ByteOrder

	lastErr error
}

// Open parses and validates data and returns a Stream positioned at the
// first frame. name only labels errors. On failure no Stream is returned.
func Open(data []byte, name string, cfg Config) (*Stream, error) {
	if len(data) > cfg.FileSizeLimit() {
		return nil, fmt.Errorf("%s: %w: %d bytes", label(name), ErrFileTooLarge, len(data))
	}

	h, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label(name), err)
	}
	l, err := validate(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label(name), err)
	}

	// The declared frame count wins; a short payload only shows up
	// while decoding.
	start := min(h.sound.dataStart, len(data))
	end := len(data)
	if want := l.totalFrames * uint64(l.blockSize); want < uint64(end-start) {
		end = start + int(want)
	}

	s := &Stream{
		name:          name,
		mode:          l.mode,
		channels:      l.channels,
		bitsPerSample: l.bitsPerSample,
		sampleRate:    l.sampleRate,
		frameSize:     l.frameSize,
		blockSize:     l.blockSize,
		totalFrames:   l.totalFrames,
		payload:       data[start:end:end],
		needSwap:      !cfg.WantBigEndian,
		order:         binary.BigEndian,
	}
	if s.needSwap {
		s.order = binary.LittleEndian
	}
	return s, nil
}

func label(name string) string {
	if name == "" {
		return "aiff"
	}
	return name
}

// Decode fills out with whole decoded frames and returns the number of
// bytes written. It returns io.EOF once every frame has been decoded.
//
// PCM output is the file's data verbatim except that 8-bit samples are
// made unsigned; 16-bit PCM stays big-endian and must be swapped by the
// caller when NeedsSwap reports true. SDX2 output is already in the
// configured byte order.
func (s *Stream) Decode(out []byte) (int, error) {
	if s == nil || s.frameSize == 0 {
		return 0, io.EOF
	}

	var (
		n   int
		err error
	)
	switch s.mode {
	case CompressionNone:
		n, err = s.decodePCM(out)
	case CompressionSDX2:
		n, err = s.decodeSDX2(out)
	default:
		err = fmt.Errorf("%w: compression mode %v", ErrDecode, s.mode)
	}
	if err != nil && err != io.EOF {
		s.lastErr = err
	}
	return n, err
}

// frames returns how many frames the next decode into a buffer of outLen
// bytes may produce.
func (s *Stream) frames(outLen int) (int, error) {
	remaining := s.totalFrames - s.curFrame
	if remaining == 0 {
		return 0, io.EOF
	}

	n := uint64(outLen / s.frameSize)
	if n == 0 {
		return 0, nil
	}
	n = min(n, remaining)

	avail := (len(s.payload) - s.dataOffset) / s.blockSize
	if avail <= 0 {
		return 0, fmt.Errorf("%s: %w: frame %d of %d", label(s.name), ErrTruncated, s.curFrame, s.totalFrames)
	}
	return int(min(n, uint64(avail))), nil
}

func (s *Stream) advance(frames int) {
	s.curFrame += uint64(frames)
	s.dataOffset += frames * s.blockSize
}

// Seek moves to frame pos, clamped to TotalFrames, and returns the frame
// landed on. The SDX2 predictors restart from zero.
func (s *Stream) Seek(pos uint64) (uint64, error) {
	if s == nil {
		return 0, nil
	}

	pos = min(pos, s.totalFrames)
	s.curFrame = pos
	s.dataOffset = int(pos) * s.blockSize
	s.prev = [MaxChannels]int16{}
	return pos, nil
}

// Close releases the payload and resets the stream. It may be called any
// number of times, including on a nil Stream.
func (s *Stream) Close() {
	if s == nil {
		return
	}
	*s = Stream{}
}

// LastError returns the last error other than io.EOF reported by Decode
// and clears it.
func (s *Stream) LastError() error {
	if s == nil {
		return nil
	}
	err := s.lastErr
	s.lastErr = nil
	return err
}

func (s *Stream) Name() string                 { return s.name }
func (s *Stream) Compression() CompressionMode { return s.mode }
func (s *Stream) Channels() int                { return s.channels }
func (s *Stream) BitsPerSample() int           { return s.bitsPerSample }
func (s *Stream) SampleRate() int              { return s.sampleRate }
func (s *Stream) TotalFrames() uint64          { return s.totalFrames }
func (s *Stream) Frame() uint64                { return s.curFrame }

// NeedsSwap reports whether 16-bit PCM output must be byte swapped to
// reach the configured byte order.
func (s *Stream) NeedsSwap() bool { return s.needSwap }

// FrameSize is the number of decoded bytes per frame.
func (s *Stream) FrameSize() int { return s.frameSize }

// BlockSize is the number of stored bytes per frame.
func (s *Stream) BlockSize() int { return s.blockSize }

// ByteOrder is the order of 16-bit samples once NeedsSwap has been honoured.
func (s *Stream) ByteOrder() binary.ByteOrder { return s.order }

// Length is the duration in seconds.
func (s *Stream) Length() float64 {
	if s.sampleRate == 0 {
		return 0
	}
	return float64(s.totalFrames) / float64(s.sampleRate)
}

// Format returns the decoded sample layout.
func (s *Stream) Format() AudioFormat {
	switch {
	case s.channels == 1 && s.bitsPerSample == 8:
		return Mono8
	case s.channels == 1:
		return Mono16
	case s.bitsPerSample == 8:
		return Stereo8
	default:
		return Stereo16
	}
}
