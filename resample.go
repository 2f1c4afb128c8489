// SPDX-License-Identifier: EPL-2.0

package audstim

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/utils"
)

// DefaultBufferSize is the read size used when callers pass 0.
const DefaultBufferSize = 4096

// ResampleToMono16 downmixes src to mono, resamples it to targetRate and
// collects the result as 16-bit PCM. It reads src to the end; io.EOF is
// not reported as an error. A source that stops producing samples without
// reaching the end fails with io.ErrNoProgress.
//
// Sources already at targetRate skip the resampler, so their length is
// preserved exactly.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, targetRate)
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	var pipeline audio.Source = src
	if src.Channels() > 1 {
		pipeline = audio.NewMonoMixer(pipeline)
	}
	if src.SampleRate() != targetRate {
		pipeline = audio.NewResampler(pipeline, targetRate)
	}

	// Roughly the expected output for a one second source, grown as needed.
	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)
	empty := 0

	for {
		n, err := pipeline.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = append(pcm16, make([]int16, n)...)
			utils.Float32SliceToInt16(pcm16[start:], buf[:n])
			empty = 0
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("resample to mono16: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= audio.MaxEmptyReads {
				return nil, targetRate, fmt.Errorf("resample to mono16: %w", io.ErrNoProgress)
			}
		}
	}

	return pcm16, targetRate, nil
}
