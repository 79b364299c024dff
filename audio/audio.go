// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a stream of interleaved float32 samples, as produced by
// aiff.Source.
type Source interface {
	// SampleRate in Hz.
	SampleRate() int
	// Channels per frame.
	Channels() int
	// ReadSamples fills dst with whole frames of samples in [-1,1] and
	// returns the number of values written, not frames. (0, io.EOF) ends
	// the stream; a dst shorter than one frame is ErrInvalidDstSize.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is a reasonable dst length for ReadSamples.
	BufSize() int

	Close() error
}

// Decoder opens a Source over everything r holds.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
