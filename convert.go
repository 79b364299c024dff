// SPDX-License-Identifier: EPL-2.0

package aifcdec

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/aifcdec/formats/aiff"
	"github.com/ik5/aifcdec/formats/wav"
	"github.com/ik5/aifcdec/utils"
)

// DefaultBufferSize is the number of samples handled per decode call when
// callers pass a non-positive buffer size.
const DefaultBufferSize = 4096

// OpenFile reads the AIFF or AIFC file at path and opens it. The path is
// used as the stream name in errors.
func OpenFile(path string, cfg aiff.Config) (*aiff.Stream, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > int64(cfg.FileSizeLimit()) {
		return nil, fmt.Errorf("%s: %w: %d bytes", path, aiff.ErrFileTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return aiff.Open(data, path, cfg)
}

// DecodeAll decodes s from its current frame to the end and returns the
// samples in the byte order the stream was opened with. 8-bit samples are
// unsigned. On a decode error the samples decoded so far are returned
// together with the error.
//
// Example:
//
//	s, _ := aifcdec.OpenFile("voice.aifc", aiff.Config{})
//	defer s.Close()
//	pcm, err := aifcdec.DecodeAll(s, 4096)
func DecodeAll(s *aiff.Stream, bufferSize int) ([]byte, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if s.Channels() == 0 {
		return nil, nil
	}

	frames := max(1, bufferSize/s.Channels())
	buf := make([]byte, frames*s.FrameSize())

	remaining := s.TotalFrames() - s.Frame()
	out := make([]byte, 0, remaining*uint64(s.FrameSize()))
	swap := s.Compression() == aiff.CompressionNone && s.BitsPerSample() == 16 && s.NeedsSwap()

	for {
		n, err := s.Decode(buf)
		if n > 0 {
			if swap {
				utils.SwapBytes16(buf[:n])
			}
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// ConvertToWAV decodes s from its current frame to the end and writes it
// to w as a 16-bit PCM WAV file. 8-bit streams are scaled up.
func ConvertToWAV(w io.WriteSeeker, s *aiff.Stream, bufferSize int) error {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	src := aiff.NewSource(s)
	if err := wav.Encode(w, src, src.BitDepth(), bufferSize); err != nil {
		return fmt.Errorf("converting %s: %w", s.Name(), err)
	}
	return nil
}
