// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into a single slice of interleaved samples, reading
// bufferSize values at a time. The stream is read until io.EOF; any other
// error aborts and is returned wrapped.
//
// ReadAll does not close src.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		return nil, ErrInvalidBufSize
	}
	if ch := src.Channels(); ch > 1 && bufferSize%ch != 0 {
		// round down to whole frames, a resampler rejects partial frames
		bufferSize -= bufferSize % ch
		if bufferSize == 0 {
			bufferSize = ch
		}
	}

	buf := make([]float32, bufferSize)
	out := make([]float32, 0, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			// some decoders signal the end with (0, nil)
			break
		}
	}

	return out, nil
}
