// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"math"
	"testing"
)

func TestClampInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int32
		want  int16
	}{
		{"zero", 0, 0},
		{"positive in range", 512, 512},
		{"negative in range", -512, -512},
		{"max", math.MaxInt16, math.MaxInt16},
		{"min", math.MinInt16, math.MinInt16},
		{"one over max", math.MaxInt16 + 1, math.MaxInt16},
		{"one under min", math.MinInt16 - 1, math.MinInt16},
		{"way over max", 1 << 20, math.MaxInt16},
		{"way under min", -(1 << 20), math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClampInt16(tt.input); got != tt.want {
				t.Errorf("ClampInt16(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSwapBytes16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"one word", []byte{0x12, 0x34}, []byte{0x34, 0x12}},
		{"two words", []byte{0x01, 0x02, 0x03, 0x04}, []byte{0x02, 0x01, 0x04, 0x03}},
		{"odd tail untouched", []byte{0x01, 0x02, 0x03}, []byte{0x02, 0x01, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := append([]byte(nil), tt.input...)
			SwapBytes16(buf)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("SwapBytes16(% x) = % x, want % x", tt.input, buf, tt.want)
			}
		})
	}
}

func TestSwapBytes16_Twice(t *testing.T) {
	t.Parallel()

	orig := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x80}
	buf := append([]byte(nil), orig...)
	SwapBytes16(buf)
	SwapBytes16(buf)

	if !bytes.Equal(buf, orig) {
		t.Errorf("double swap = % x, want % x", buf, orig)
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int16
		want  float32
	}{
		{0, 0},
		{16384, 0.5},
		{-16384, -0.5},
		{math.MinInt16, -1},
		{math.MaxInt16, 32767.0 / 32768.0},
	}

	for _, tt := range tests {
		if got := Int16ToFloat32(tt.input); got != tt.want {
			t.Errorf("Int16ToFloat32(%d) = %f, want %f", tt.input, got, tt.want)
		}
	}
}

func TestUint8ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input uint8
		want  float32
	}{
		{128, 0},
		{0, -1},
		{192, 0.5},
		{64, -0.5},
		{255, 127.0 / 128.0},
	}

	for _, tt := range tests {
		if got := Uint8ToFloat32(tt.input); got != tt.want {
			t.Errorf("Uint8ToFloat32(%d) = %f, want %f", tt.input, got, tt.want)
		}
	}
}

func BenchmarkSwapBytes16(b *testing.B) {
	buf := make([]byte, 8192)
	for i := range buf {
		buf[i] = byte(i)
	}

	for b.Loop() {
		SwapBytes16(buf)
	}
}
