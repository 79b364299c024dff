// SPDX-License-Identifier: EPL-2.0

package aifcdec_test

import (
	"fmt"

	"github.com/ik5/aifcdec"
	"github.com/ik5/aifcdec/formats/aiff"
	"github.com/ik5/aifcdec/internal/audiotest"
)

func ExampleDecodeAll() {
	data := audiotest.AIFF(1, 16, 8000, audiotest.PCM16(1, -2))

	s, err := aiff.Open(data, "example.aiff", aiff.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	pcm, err := aifcdec.DecodeAll(s, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("% x\n", pcm)
	// Output: 01 00 fe ff
}

func ExampleDecodeAll_eightBit() {
	data := audiotest.AIFF(1, 8, 8000, []byte{0x00, 0x7f, 0x80})

	s, _ := aiff.Open(data, "example.aiff", aiff.Config{})
	defer s.Close()

	pcm, _ := aifcdec.DecodeAll(s, 0)

	fmt.Printf("% x\n", pcm)
	// Output: 80 ff 00
}

func ExampleConvertToWAV() {
	data := audiotest.AIFC(2, 22050, []byte{16, 16, 17, 0xf0})

	s, err := aiff.Open(data, "example.aifc", aiff.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	out := &audiotest.WriteSeeker{}
	if err := aifcdec.ConvertToWAV(out, s, 4096); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s %d bytes\n", out.Bytes()[8:12], len(out.Bytes()))
	// Output: WAVE 52 bytes
}
