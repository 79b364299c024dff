// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// PCMSource produces interleaved signed integer samples. aiff.Source
// implements it.
type PCMSource interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Encode drains src into w as a 16-bit PCM WAV file. srcBitDepth is the
// width of the samples src returns; narrower samples are scaled up.
// bufSize is the number of samples read per call.
func Encode(w io.WriteSeeker, src PCMSource, srcBitDepth, bufSize int) error {
	if srcBitDepth <= 0 || srcBitDepth > 16 {
		return ErrUnsupportedBitDepth
	}
	f := src.Format()
	if f == nil || f.NumChannels <= 0 || f.SampleRate <= 0 {
		return ErrInvalidFormat
	}
	bufSize -= bufSize % f.NumChannels
	if bufSize <= 0 {
		return ErrInvalidBufferSize
	}

	enc := wav.NewEncoder(w, f.SampleRate, 16, f.NumChannels, wavFormatPCM)

	data := make([]int, bufSize)
	in := &goaudio.IntBuffer{Format: f, Data: data}
	out := &goaudio.IntBuffer{Format: f, SourceBitDepth: 16}
	shift := 16 - srcBitDepth

	for {
		in.Data = data
		n, err := src.PCMBuffer(in)
		if n > 0 {
			for i := range n {
				data[i] <<= shift
			}
			out.Data = data[:n]
			if werr := enc.Write(out); werr != nil {
				return fmt.Errorf("writing wav data: %w", werr)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}
	return nil
}
