// SPDX-License-Identifier: EPL-2.0

// Package aifcdec decodes AIFF and AIFC audio files into raw PCM.
//
// Two container variants are understood: uncompressed AIFF with 8 or 16
// bit signed big-endian samples, and AIFC with SDX2 ("squareroot-delta-exact")
// compression, which stores each 16-bit sample as one signed byte.
// Mono and stereo streams between 300 Hz and 128 kHz are accepted.
//
// # Quick Start
//
// Open a file and decode it all at once:
//
//	s, err := aifcdec.OpenFile("voice.aifc", aiff.Config{})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	pcm, err := aifcdec.DecodeAll(s, 4096)
//
// 16-bit output is little-endian unless aiff.Config.WantBigEndian is set.
// 8-bit output is unsigned, centered on 128.
//
// # Streaming
//
// For more control use the formats/aiff package directly. A Stream decodes
// into caller buffers, seeks by frame and reports its layout:
//
//	s, err := aiff.Open(data, "voice.aifc", aiff.Config{})
//	buf := make([]byte, 1024*s.FrameSize())
//	for {
//	    n, err := s.Decode(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    // play buf[:n]
//	}
//
// aiff.NewSource wraps a Stream as an audio.Source producing float32
// samples, and as a go-audio IntBuffer reader.
//
// # Writing WAV Files
//
// ConvertToWAV writes a decoded stream as 16-bit PCM WAV:
//
//	out, _ := os.Create("voice.wav")
//	defer out.Close()
//	err := aifcdec.ConvertToWAV(out, s, 4096)
//
// See the individual subpackages for more detailed documentation.
package aifcdec
