// SPDX-License-Identifier: EPL-2.0

// Package audio defines the interfaces shared by the format packages.
//
// # Source Interface
//
// A Source produces interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are normalized to [-1.0, 1.0], with 0.0 as silence. dst must
// hold at least one whole frame, otherwise ErrInvalidDstSize is returned.
//
// # Decoders
//
// A Decoder turns a reader into a Source:
//
//	var dec audio.Decoder = aiff.Decoder{}
//	src, err := dec.Decode(file)
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
