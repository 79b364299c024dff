// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/ik5/aifcdec/utils"

// sdx2Sample decodes one SDX2 byte against the channel predictor.
//
// The byte is squared keeping its sign and doubled. An odd byte is a delta
// on the previous sample, an even byte replaces it.
func sdx2Sample(prev int16, b int8) int16 {
	v := int32(b) * int32(b) << 1
	if b < 0 {
		v = -v
	}
	if b&1 != 0 {
		v += int32(prev)
	}
	return utils.ClampInt16(v)
}

// decodeSDX2 expands one byte per channel per frame into 16-bit samples
// written in the stream's output byte order.
func (s *Stream) decodeSDX2(out []byte) (int, error) {
	frames, err := s.frames(len(out))
	if err != nil || frames == 0 {
		return 0, err
	}

	src := s.payload[s.dataOffset : s.dataOffset+frames*s.blockSize]
	ch := 0
	for i, b := range src {
		s.prev[ch] = sdx2Sample(s.prev[ch], int8(b))
		s.order.PutUint16(out[2*i:], uint16(s.prev[ch]))

		if ch++; ch == s.channels {
			ch = 0
		}
	}

	s.advance(frames)
	return frames * s.frameSize, nil
}
