// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded audio as PCM WAV files.
//
// The encoding itself is done by github.com/go-audio/wav; this package
// drains a PCMSource, such as the source returned by aiff.Decoder, into it.
// Output is always 16-bit little-endian PCM at the source's sample rate and
// channel count. 8-bit input is scaled up.
//
//	src := aiff.NewSource(stream)
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, src, src.BitDepth(), 4096)
//
// Encode needs an io.WriteSeeker because the RIFF sizes are patched once
// every sample is written.
package wav
