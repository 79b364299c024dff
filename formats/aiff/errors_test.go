// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = []error{
	ErrInvalidData,
	ErrUnsupportedFormat,
	ErrDecode,
	ErrNotAiffFile,
	ErrTruncated,
	ErrMissingChunk,
	ErrCommonChunkTooSmall,
	ErrInvalidSampleRate,
	ErrEmptyStream,
	ErrFileTooLarge,
	ErrUnsupportedBitDepth,
	ErrUnsupportedChannels,
	ErrUnsupportedSampleRate,
	ErrUnsupportedCompression,
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	messages := make(map[string]bool)
	for _, err := range allErrors {
		msg := err.Error()
		if msg == "" {
			t.Errorf("Error %#v has empty message", err)
		}
		if messages[msg] {
			t.Errorf("Duplicate error message: %s", msg)
		}
		messages[msg] = true
	}
}

func TestErrors_Taxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		parent error
	}{
		{ErrNotAiffFile, ErrInvalidData},
		{ErrTruncated, ErrInvalidData},
		{ErrMissingChunk, ErrInvalidData},
		{ErrCommonChunkTooSmall, ErrInvalidData},
		{ErrInvalidSampleRate, ErrInvalidData},
		{ErrEmptyStream, ErrInvalidData},
		{ErrFileTooLarge, ErrInvalidData},
		{ErrUnsupportedBitDepth, ErrUnsupportedFormat},
		{ErrUnsupportedChannels, ErrUnsupportedFormat},
		{ErrUnsupportedSampleRate, ErrUnsupportedFormat},
		{ErrUnsupportedCompression, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.parent) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.parent)
			}
			for _, other := range []error{ErrInvalidData, ErrUnsupportedFormat, ErrDecode} {
				if other != tt.parent && errors.Is(tt.err, other) {
					t.Errorf("%v also matches %v", tt.err, other)
				}
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, baseErr := range allErrors {
		t.Run(baseErr.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("song.aif: %w", baseErr)
			if !errors.Is(wrapped, baseErr) {
				t.Errorf("Wrapped error doesn't match base error %v", baseErr)
			}

			joined := errors.Join(errors.New("context"), baseErr)
			if !errors.Is(joined, baseErr) {
				t.Errorf("Joined error doesn't match base error %v", baseErr)
			}
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		message string
	}{
		{ErrInvalidData, "invalid AIFF data"},
		{ErrUnsupportedFormat, "unsupported AIFF format"},
		{ErrDecode, "AIFF decoder error"},
		{ErrNotAiffFile, "invalid AIFF data: not an AIFF file"},
		{ErrMissingChunk, "invalid AIFF data: missing required chunk"},
		{ErrUnsupportedChannels, "unsupported AIFF format: channel count"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("Error message = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}
