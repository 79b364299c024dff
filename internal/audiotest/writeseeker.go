// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker for the go-audio encoders.
type WriteSeeker struct {
	buf []byte
	pos int
}

// Bytes returns everything written so far.
func (ws *WriteSeeker) Bytes() []byte { return ws.buf }

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	if end := ws.pos + len(p); end > len(ws.buf) {
		ws.buf = append(ws.buf, make([]byte, end-len(ws.buf))...)
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos += len(p)
	return len(p), nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(ws.pos) + offset
	case io.SeekEnd:
		pos = int64(len(ws.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	ws.pos = int(pos)
	return pos, nil
}
