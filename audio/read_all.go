// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// MaxEmptyReads bounds how many (0, nil) reads in a row a drain loop
// tolerates before failing with io.ErrNoProgress.
const MaxEmptyReads = 16

// ReadAll drains src and returns every interleaved sample it produced.
// bufSize is the per-read buffer size; values below 1 use src.BufSize().
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize < 1 {
		bufSize = src.BufSize()
	}
	if bufSize < 1 {
		bufSize = 4096
	}
	if ch := src.Channels(); ch > 1 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	var out []float32
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("read samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= MaxEmptyReads {
				return out, io.ErrNoProgress
			}
		}
	}
}
