// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
)

// Container and chunk identifiers
const (
	formID      = "FORM"
	formTypeAIF = "AIFF"
	formTypeAFC = "AIFC"
	commonID    = "COMM"
	soundDataID = "SSND"

	compressionNone = "NONE"
	compressionSDX2 = "SDX2"
)

const (
	prologueSize       = 12
	chunkHeaderSize    = 8
	commonChunkSize    = 18
	extCommonChunkSize = 22
	soundDataHdrSize   = 8
)

// byteReader is a bounds checked big-endian cursor over the input buffer.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) next(n int) ([]byte, error) {
	if n < 0 || len(r.buf)-r.pos < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.pos, len(r.buf)-r.pos)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) uint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *byteReader) uint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteReader) id() (string, error) {
	b, err := r.next(4)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type chunkHeader struct {
	id   string
	size uint32
}

// chunk reads one chunk header and its body, then skips the pad byte that
// follows odd sized bodies. A missing pad byte at the very end of the
// buffer is tolerated. bodyStart is the absolute offset of the body.
func (r *byteReader) chunk() (hdr chunkHeader, body []byte, bodyStart int, err error) {
	if hdr.id, err = r.id(); err != nil {
		return hdr, nil, 0, err
	}
	if hdr.size, err = r.uint32(); err != nil {
		return hdr, nil, 0, err
	}

	bodyStart = r.pos
	if uint64(hdr.size) > uint64(len(r.buf)-r.pos) {
		return hdr, nil, 0, fmt.Errorf("%w: chunk %q declares %d bytes, %d left",
			ErrTruncated, hdr.id, hdr.size, len(r.buf)-r.pos)
	}
	body, _ = r.next(int(hdr.size))

	if hdr.size&1 == 1 {
		r.pos = min(r.pos+1, len(r.buf))
	}
	return hdr, body, bodyStart, nil
}

// commonChunk holds the COMM fields this decoder uses.
type commonChunk struct {
	channels    uint16
	frames      uint32
	sampleSize  uint16
	sampleRate  int32
	compression string
}

// soundDataChunk holds the SSND header and the absolute offset of the
// first sample byte.
type soundDataChunk struct {
	offset    uint32
	blockSize uint32
	dataStart int
}

// header is the result of one pass over the container.
type header struct {
	formType  string
	common    commonChunk
	sound     soundDataChunk
	hasCommon bool
	hasSound  bool
}

func parseCommonChunk(body []byte) (commonChunk, error) {
	var c commonChunk
	if len(body) < commonChunkSize {
		return c, fmt.Errorf("%w: %d bytes", ErrCommonChunkTooSmall, len(body))
	}

	c.channels = binary.BigEndian.Uint16(body[0:2])
	c.frames = binary.BigEndian.Uint32(body[2:6])
	c.sampleSize = binary.BigEndian.Uint16(body[6:8])

	rate, err := DecodeF80([10]byte(body[8:18]))
	if err != nil {
		return c, err
	}
	c.sampleRate = rate

	c.compression = compressionNone
	if len(body) >= extCommonChunkSize {
		c.compression = string(body[18:22])
	}
	// anything after the compression id (its display name) is ignored
	return c, nil
}

// parseSoundDataChunk clamps dataStart to bufLen so an oversized offset
// leaves an empty payload.
func parseSoundDataChunk(body []byte, bodyStart, bufLen int) (soundDataChunk, error) {
	var s soundDataChunk
	if len(body) < soundDataHdrSize {
		return s, fmt.Errorf("%w: sound data chunk is %d bytes", ErrTruncated, len(body))
	}

	s.offset = binary.BigEndian.Uint32(body[0:4])
	s.blockSize = binary.BigEndian.Uint32(body[4:8])
	start := uint64(bodyStart) + soundDataHdrSize + uint64(s.offset)
	s.dataStart = int(min(start, uint64(bufLen)))
	return s, nil
}

// parseHeader validates the container prologue and walks every chunk,
// keeping the last COMM and SSND chunk seen.
func parseHeader(buf []byte) (*header, error) {
	r := &byteReader{buf: buf}

	id, err := r.id()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	if id != formID {
		return nil, fmt.Errorf("%w: container tag %q", ErrNotAiffFile, id)
	}
	formSize, err := r.uint32()
	if err != nil {
		return nil, err
	}
	h := &header{}
	if h.formType, err = r.id(); err != nil {
		return nil, err
	}
	if h.formType != formTypeAIF && h.formType != formTypeAFC {
		return nil, fmt.Errorf("%w: form type %q", ErrNotAiffFile, h.formType)
	}

	// trailing bytes beyond the declared form are not chunks
	end := len(buf)
	if limit := uint64(chunkHeaderSize) + uint64(formSize); limit < uint64(end) {
		end = int(limit)
	}

	for r.pos < end {
		hdr, body, bodyStart, err := r.chunk()
		if err != nil {
			return nil, err
		}

		switch hdr.id {
		case commonID:
			if h.common, err = parseCommonChunk(body); err != nil {
				return nil, err
			}
			h.hasCommon = true
		case soundDataID:
			if h.sound, err = parseSoundDataChunk(body, bodyStart, len(buf)); err != nil {
				return nil, err
			}
			h.hasSound = true
		}
	}

	if !h.hasCommon {
		return nil, fmt.Errorf("%w: %s", ErrMissingChunk, commonID)
	}
	if !h.hasSound {
		return nil, fmt.Errorf("%w: %s", ErrMissingChunk, soundDataID)
	}
	return h, nil
}
