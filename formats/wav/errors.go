// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("source bit depth must be 1 to 16")
	ErrInvalidFormat       = errors.New("source has no channels or sample rate")
	ErrInvalidBufferSize   = errors.New("buffer must hold at least one frame")
)
