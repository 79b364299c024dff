// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/aifcdec/audio"
	"github.com/ik5/aifcdec/utils"
)

// Source adapts a Stream to audio.Source and to go-audio's IntBuffer
// reader. It plays the role of the playback pipeline: 16-bit PCM is
// swapped here when the stream asks for it.
type Source struct {
	dec    *Stream
	order  binary.ByteOrder
	raw    []byte
	closed bool
}

var _ audio.Source = (*Source)(nil)

// NewSource wraps s. Closing the source closes s.
func NewSource(s *Stream) *Source {
	return &Source{dec: s, order: s.ByteOrder()}
}

func (s *Source) SampleRate() int { return s.dec.SampleRate() }
func (s *Source) Channels() int   { return s.dec.Channels() }

func (s *Source) BufSize() int {
	if s.raw != nil {
		return cap(s.raw) / s.bytesPerSample()
	}
	return 4096
}

func (s *Source) Close() error {
	if !s.closed {
		s.dec.Close()
		s.closed = true
	}
	return nil
}

// Format describes the stream for go-audio consumers.
func (s *Source) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: s.dec.Channels(),
		SampleRate:  s.dec.SampleRate(),
	}
}

// BitDepth is the width of the samples returned by PCMBuffer.
func (s *Source) BitDepth() int { return s.dec.BitsPerSample() }

// Seek moves the underlying stream to frame pos.
func (s *Source) Seek(pos uint64) (uint64, error) { return s.dec.Seek(pos) }

func (s *Source) bytesPerSample() int { return max(1, s.dec.BitsPerSample()/8) }

// read decodes up to samples interleaved samples into s.raw, in the
// adapter's byte order, and returns the number of samples decoded.
func (s *Source) read(samples int) (int, error) {
	channels := s.dec.Channels()
	if s.closed || channels == 0 {
		return 0, io.EOF
	}

	frames := samples / channels
	if frames == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	size := frames * s.dec.FrameSize()
	if cap(s.raw) < size {
		s.raw = make([]byte, size)
	}
	s.raw = s.raw[:size]

	n, err := s.dec.Decode(s.raw)
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("decoding aiff data: %w", err)
	}

	if s.dec.Compression() == CompressionNone && s.dec.BitsPerSample() == 16 && s.dec.NeedsSwap() {
		utils.SwapBytes16(s.raw[:n])
	}
	return n / s.bytesPerSample(), nil
}

func (s *Source) sample(i int) int {
	if s.dec.BitsPerSample() == 8 {
		return int(s.raw[i]) - 128
	}
	return int(int16(s.order.Uint16(s.raw[2*i:])))
}

// ReadSamples fills dst with interleaved float32 samples in [-1, 1).
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.read(len(dst))
	if err != nil {
		return 0, err
	}

	if s.dec.BitsPerSample() == 8 {
		for i := range n {
			dst[i] = utils.Uint8ToFloat32(s.raw[i])
		}
		return n, nil
	}
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(s.sample(i)))
	}
	return n, nil
}

// PCMBuffer fills buf.Data with signed integer samples at the stream's
// bit depth and returns the number of samples written.
func (s *Source) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil || len(buf.Data) == 0 {
		return 0, nil
	}
	if buf.Format == nil {
		buf.Format = s.Format()
	}
	buf.SourceBitDepth = s.dec.BitsPerSample()

	n, err := s.read(len(buf.Data))
	if err != nil {
		return 0, err
	}
	for i := range n {
		buf.Data[i] = s.sample(i)
	}
	return n, nil
}

// Decoder reads a whole AIFF or AIFC file and opens it.
type Decoder struct {
	Config Config
}

// Decode reads r to the end and returns a source over the decoded audio.
// Reading stops with ErrFileTooLarge once Config.FileSizeLimit is passed.
// The returned source also implements PCMBuffer(*audio.IntBuffer) and
// Format() from github.com/go-audio/audio.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	var name string
	if n, ok := r.(interface{ Name() string }); ok {
		name = n.Name()
	}

	// one byte past the limit is enough to tell an oversize input apart
	limit := d.Config.FileSizeLimit()
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}
	if len(data) > limit {
		return nil, fmt.Errorf("%s: %w: more than %d bytes", label(name), ErrFileTooLarge, limit)
	}

	stream, err := Open(data, name, d.Config)
	if err != nil {
		return nil, err
	}
	return NewSource(stream), nil
}
