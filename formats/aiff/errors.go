// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData indicates malformed, truncated or structurally incomplete input
	ErrInvalidData = errors.New("invalid AIFF data")

	// ErrUnsupportedFormat indicates a well formed file this decoder does not implement
	ErrUnsupportedFormat = errors.New("unsupported AIFF format")

	// ErrDecode indicates an inconsistent decoder state
	ErrDecode = errors.New("AIFF decoder error")
)

var (
	// ErrNotAiffFile indicates the input is not a FORM container of type AIFF or AIFC
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", ErrInvalidData)

	// ErrTruncated indicates the input ends before a declared structure or frame
	ErrTruncated = fmt.Errorf("%w: unexpected end of data", ErrInvalidData)

	// ErrMissingChunk indicates there is no COMM or no SSND chunk
	ErrMissingChunk = fmt.Errorf("%w: missing required chunk", ErrInvalidData)

	// ErrCommonChunkTooSmall indicates a COMM chunk shorter than 18 bytes
	ErrCommonChunkTooSmall = fmt.Errorf("%w: common chunk too small", ErrInvalidData)

	// ErrInvalidSampleRate indicates an 80-bit sample rate with an all-ones exponent
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate is infinite or NaN", ErrInvalidData)

	// ErrEmptyStream indicates a COMM chunk declaring zero frames
	ErrEmptyStream = fmt.Errorf("%w: no sample frames", ErrInvalidData)

	// ErrFileTooLarge indicates input above Config.FileSizeLimit
	ErrFileTooLarge = fmt.Errorf("%w: file too large", ErrInvalidData)

	// ErrUnsupportedBitDepth indicates a sample size outside 1..16 bits, or not 16 for SDX2
	ErrUnsupportedBitDepth = fmt.Errorf("%w: bits per sample", ErrUnsupportedFormat)

	// ErrUnsupportedChannels indicates a channel count other than mono or stereo
	ErrUnsupportedChannels = fmt.Errorf("%w: channel count", ErrUnsupportedFormat)

	// ErrUnsupportedSampleRate indicates a rate outside MinSampleRate..MaxSampleRate
	ErrUnsupportedSampleRate = fmt.Errorf("%w: sample rate", ErrUnsupportedFormat)

	// ErrUnsupportedCompression indicates any form type and compression pair except AIFF/NONE and AIFC/SDX2
	ErrUnsupportedCompression = fmt.Errorf("%w: compression", ErrUnsupportedFormat)
)
