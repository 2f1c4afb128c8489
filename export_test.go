// SPDX-License-Identifier: EPL-2.0

package audstim

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/backend"
	"github.com/ik5/audstim/formats/wav"
	"github.com/ik5/audstim/internal/audiotest"
	"github.com/ik5/audstim/sound"
	"github.com/ik5/audstim/utils"
)

func TestExport_BackendRate(t *testing.T) {
	t.Parallel()

	cfg := backend.Config{Kind: backend.Streaming, SampleRate: 8000, BlockSize: 256}
	tone, err := sound.NewTone(440, 100, 0.5, cfg)
	if err != nil {
		t.Fatalf("NewTone() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, tone, 0); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if got, want := buf.Len(), 44+2*800; got != want {
		t.Fatalf("wrote %d bytes, want %d", got, want)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode exported file: %v", err)
	}
	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Fatalf("exported %d Hz, %d channels; want 8000 Hz mono", src.SampleRate(), src.Channels())
	}

	decoded, err := audio.ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	for i, s := range tone.Samples() {
		want := float32(utils.Float32ToInt16(s)) / 32768
		if decoded[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, decoded[i], want)
		}
	}
}

func TestExport_OutRate(t *testing.T) {
	t.Parallel()

	cfg := backend.Config{Kind: backend.NodeGraph, SampleRate: 48000, BlockSize: 256}
	noise, err := sound.NewNoise(500, 0.1, cfg, sound.WithSeed(3))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, noise, 16000); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	frames := (buf.Len() - 44) / 2
	if frames < 7900 || frames > 8100 {
		t.Errorf("exported %d frames, want ≈8000", frames)
	}
}

func TestExport_Unconfigured(t *testing.T) {
	t.Parallel()

	tone, err := sound.NewTone(440, 100, 0.5, backend.Config{})
	if err != nil {
		t.Fatalf("NewTone() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, tone, 8000); !errors.Is(err, sound.ErrBackendUnconfigured) {
		t.Errorf("Export() error = %v, want ErrBackendUnconfigured", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an unrendered sound", buf.Len())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteWAV16_WriterError(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(failingWriter{}, audiotest.NewSilentSource(8000, 1, 100), 8000)
	if err == nil {
		t.Fatal("WriteWAV16() error = nil, want write failure")
	}
}
