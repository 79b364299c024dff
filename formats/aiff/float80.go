// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"math"
)

const (
	f80Bias        = 16383
	f80ExpInfinity = 0x7FFF
)

// DecodeF80 converts an 80-bit IEEE 754 extended precision value, as stored
// in the COMM chunk, to the nearest integer.
//
// The layout is big-endian: 1 sign bit, 15 exponent bits and a 64-bit
// significand with an explicit integer bit. A zero exponent decodes to 0;
// an all-ones exponent (infinity or NaN) returns ErrInvalidSampleRate.
// Magnitudes above math.MaxInt32 saturate.
func DecodeF80(b [10]byte) (int32, error) {
	se := binary.BigEndian.Uint16(b[0:2])
	mant := binary.BigEndian.Uint64(b[2:10])

	exp := int(se & 0x7FFF)
	switch exp {
	case 0:
		return 0, nil
	case f80ExpInfinity:
		return 0, ErrInvalidSampleRate
	}

	// value = mant * 2^shift
	shift := exp - f80Bias - 63

	var mag uint64
	switch {
	case mant == 0:
	case shift >= 0:
		if shift > 31 || mant > math.MaxInt32>>uint(shift) {
			mag = math.MaxInt32
		} else {
			mag = mant << uint(shift)
		}
	case shift > -64:
		n := uint(-shift)
		mag = mant >> n
		// round half up on the first discarded bit
		if (mant>>(n-1))&1 == 1 {
			mag++
		}
	case shift == -64:
		if mant>>63 == 1 {
			mag = 1
		}
	}

	if mag > math.MaxInt32 {
		mag = math.MaxInt32
	}

	v := int32(mag)
	if se&0x8000 != 0 {
		v = -v
	}
	return v, nil
}
