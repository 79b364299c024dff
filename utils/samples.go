// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampInt16 saturates v to the int16 range.
func ClampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// SwapBytes16 reverses the byte order of every 16-bit word in buf.
// A trailing odd byte is left alone.
func SwapBytes16(buf []byte) {
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = buf[i+1], buf[i]
	}
}

// Int16ToFloat32 scales a 16-bit sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Uint8ToFloat32 scales an unsigned (offset 128) 8-bit sample to [-1, 1).
func Uint8ToFloat32(v uint8) float32 {
	return float32(int(v)-128) / 128.0
}
