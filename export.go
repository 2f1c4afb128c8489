// SPDX-License-Identifier: EPL-2.0

package audstim

import (
	"fmt"
	"io"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/formats/wav"
	"github.com/ik5/audstim/sound"
)

// WriteWAV16 converts src with ResampleToMono16 and writes the result as a
// mono 16-bit WAV file.
func WriteWAV16(w io.Writer, src audio.Source, targetRate int) error {
	pcm16, rate, err := ResampleToMono16(src, targetRate, DefaultBufferSize)
	if err != nil {
		return err
	}

	if err := wav.WriteWAV16(w, rate, pcm16); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}

	return nil
}

// Export writes the rendered samples of s as a WAV file at targetRate, or
// at the backend rate when targetRate is 0. Sounds built without a backend
// have nothing rendered and fail with sound.ErrBackendUnconfigured.
func Export(w io.Writer, s sound.Sound, targetRate int) error {
	cfg := s.Backend()
	if !cfg.Configured() {
		return sound.ErrBackendUnconfigured
	}
	if targetRate == 0 {
		targetRate = cfg.SampleRate
	}

	return WriteWAV16(w, audio.NewTable(s.Samples(), cfg.SampleRate, 1), targetRate)
}
