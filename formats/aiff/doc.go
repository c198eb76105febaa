// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio with github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported, at any sample rate and
// channel count. Input that is not an io.ReadSeeker is buffered in memory
// first, because the underlying decoder seeks between chunks.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // skip the file
//	}
package aiff
