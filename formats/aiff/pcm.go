// SPDX-License-Identifier: EPL-2.0

package aiff

// decodePCM copies whole frames from the payload. AIFF stores 8-bit samples
// signed; they are shifted to unsigned for playback.
func (s *Stream) decodePCM(out []byte) (int, error) {
	frames, err := s.frames(len(out))
	if err != nil || frames == 0 {
		return 0, err
	}

	size := frames * s.blockSize
	copy(out[:size], s.payload[s.dataOffset:s.dataOffset+size])

	if s.bitsPerSample == 8 {
		for i := range out[:size] {
			out[i] += 128
		}
	}

	s.advance(frames)
	return size, nil
}
