// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and AIFF-C (AIFC) files held in memory.
//
// AIFF is Apple's chunked audio container. Everything is big-endian and
// the sample rate is stored as an 80-bit IEEE 754 extended float.
//
// # Supported Formats
//
//   - AIFF, uncompressed PCM, 8-bit and 16-bit (sample sizes are rounded
//     up to whole bytes, so 1 to 16 bits are accepted)
//   - AIFC with SDX2 compression, decoded to 16-bit
//   - Mono and stereo
//   - Sample rates from 300 Hz to 128 kHz
//
// Every other combination returns an error wrapping ErrUnsupportedFormat.
// Malformed files return an error wrapping ErrInvalidData.
//
// # Streams
//
// Open parses the whole buffer once and returns a Stream that borrows it:
//
//	data, _ := os.ReadFile("music.aif")
//	s, err := aiff.Open(data, "music.aif", aiff.Config{})
//	if err != nil {
//	    // errors.Is(err, aiff.ErrUnsupportedFormat) ...
//	}
//	defer s.Close()
//
//	buf := make([]byte, 4096)
//	for {
//	    n, err := s.Decode(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    // play buf[:n]
//	}
//
// Decode always writes whole frames. 8-bit PCM is returned unsigned.
// 16-bit PCM is returned in file order (big-endian); when NeedsSwap
// reports true the caller swaps it, for example with utils.SwapBytes16.
// SDX2 output is produced directly in the byte order chosen by
// Config.WantBigEndian.
//
// Seek moves to any frame, clamping to the end of the stream, and resets
// the SDX2 predictors.
//
// # SDX2
//
// SDX2 stores each 16-bit sample as one signed byte. The byte is squared,
// keeping its sign, and doubled. Odd bytes are added to the previous
// sample of the same channel; even bytes replace it. Results saturate to
// the int16 range.
//
// # Audio Sources
//
// Decoder and NewSource adapt a Stream to audio.Source, returning float32
// samples in [-1.0, 1.0). The returned source also implements
// PCMBuffer(*audio.IntBuffer) and Format() from github.com/go-audio/audio,
// so it can feed go-audio encoders:
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// # Concurrency
//
// A Stream is not safe for concurrent use. Callers sharing one must
// serialize access.
package aiff
