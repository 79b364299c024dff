// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds AIFF and AIFC files in memory for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// Chunk is one tagged chunk of a FORM container.
type Chunk struct {
	ID   string
	Data []byte
}

// Common describes a COMM chunk.
type Common struct {
	Channels   uint16
	Frames     uint32
	SampleSize uint16
	SampleRate int

	// Rate overrides SampleRate with a raw 80-bit value when set.
	Rate *[10]byte

	// Compression is written after the rate when not empty, followed by
	// the Pascal string Name.
	Compression string
	Name        string
}

// Chunk encodes c as a COMM chunk.
func (c Common) Chunk() Chunk {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, c.Channels)
	binary.Write(&b, binary.BigEndian, c.Frames)
	binary.Write(&b, binary.BigEndian, c.SampleSize)

	rate := goaudio.IntToIEEEFloat(c.SampleRate)
	if c.Rate != nil {
		rate = *c.Rate
	}
	b.Write(rate[:])

	if c.Compression != "" {
		b.WriteString(c.Compression)
		b.WriteByte(byte(len(c.Name)))
		b.WriteString(c.Name)
		if (len(c.Name)+1)%2 == 1 {
			b.WriteByte(0)
		}
	}
	return Chunk{ID: "COMM", Data: b.Bytes()}
}

// SoundData returns an SSND chunk whose samples start offset bytes after
// the chunk header.
func SoundData(offset uint32, samples []byte) Chunk {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, offset)
	binary.Write(&b, binary.BigEndian, uint32(0))
	b.Write(make([]byte, offset))
	b.Write(samples)
	return Chunk{ID: "SSND", Data: b.Bytes()}
}

// Container writes a FORM container of formType holding chunks. Odd sized
// chunks are padded to an even length.
func Container(formType string, chunks ...Chunk) []byte {
	var body bytes.Buffer
	body.WriteString(formType)
	for _, c := range chunks {
		body.WriteString(c.ID)
		binary.Write(&body, binary.BigEndian, uint32(len(c.Data)))
		body.Write(c.Data)
		if len(c.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer
	out.WriteString("FORM")
	binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// AIFF returns an uncompressed file of big-endian signed PCM samples.
func AIFF(channels, bits, rate int, samples []byte) []byte {
	frameSize := (bits + 7) / 8 * channels
	return Container("AIFF",
		Common{
			Channels:   uint16(channels),
			Frames:     uint32(len(samples) / frameSize),
			SampleSize: uint16(bits),
			SampleRate: rate,
		}.Chunk(),
		SoundData(0, samples),
	)
}

// AIFC returns an SDX2 compressed file with one byte per sample.
func AIFC(channels, rate int, compressed []byte) []byte {
	return Container("AIFC",
		Chunk{ID: "FVER", Data: []byte{0xa2, 0x80, 0x51, 0x40}},
		Common{
			Channels:    uint16(channels),
			Frames:      uint32(len(compressed) / channels),
			SampleSize:  16,
			SampleRate:  rate,
			Compression: "SDX2",
			Name:        "SDX2 compressed",
		}.Chunk(),
		SoundData(0, compressed),
	)
}

// PCM16 encodes samples as big-endian 16-bit words.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.BigEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}
