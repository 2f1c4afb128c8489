// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/ik5/audstim/internal/audiotest"
)

func TestMonoMixer_Downmix(t *testing.T) {
	t.Parallel()

	// Channel c carries c/10, so the mean of n channels is (n-1)/20.
	for channels := 1; channels <= 8; channels++ {
		src := audiotest.NewMockSource(8000, channels, 64, func(_, ch int) float32 {
			return float32(ch) / 10
		})
		mixer := NewMonoMixer(src)

		if got := mixer.Channels(); got != 1 {
			t.Fatalf("%d channels: Channels() = %d, want 1", channels, got)
		}
		if got := mixer.SourceChannels(); got != channels {
			t.Errorf("%d channels: SourceChannels() = %d", channels, got)
		}

		mono, err := ReadAll(mixer, 16)
		if err != nil {
			t.Fatalf("%d channels: ReadAll() error = %v", channels, err)
		}
		if len(mono) != 64 {
			t.Fatalf("%d channels: got %d frames, want 64", channels, len(mono))
		}

		want := float64(channels-1) / 20
		for i, s := range mono {
			if math.Abs(float64(s)-want) > 1e-6 {
				t.Fatalf("%d channels: mono[%d] = %v, want %v", channels, i, s, want)
			}
		}
	}
}

func TestMonoMixer_StereoFollowsFrames(t *testing.T) {
	t.Parallel()

	// Left ramps up while right ramps down, so every frame averages to 0.5.
	src := audiotest.NewMockSource(16000, 2, 10, func(frame, ch int) float32 {
		if ch == 0 {
			return float32(frame) * 0.05
		}
		return 1 - float32(frame)*0.05
	})

	buf := make([]float32, 10)
	n, err := NewMonoMixer(src).ReadSamples(buf)
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() error = %v, want io.EOF with the final frames", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i, s := range buf {
		if math.Abs(float64(s)-0.5) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestMonoMixer_Reads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		frames   int
		bufLen   int
		wantN    int
		wantErr  error
		thenDone bool
	}{
		{"empty buffer", 100, 0, 0, nil, false},
		{"short read", 100, 10, 10, nil, false},
		{"past the end", 5, 10, 5, io.EOF, true},
		{"exact end", 50, 50, 50, io.EOF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, tt.frames))

			n, err := mixer.ReadSamples(make([]float32, tt.bufLen))
			if n != tt.wantN || !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadSamples() = %d, %v; want %d, %v", n, err, tt.wantN, tt.wantErr)
			}

			if tt.thenDone {
				n, err = mixer.ReadSamples(make([]float32, tt.bufLen))
				if n != 0 || !errors.Is(err, io.EOF) {
					t.Errorf("read after end = %d, %v; want 0, io.EOF", n, err)
				}
			}
		})
	}
}

func TestMonoMixer_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mixer := NewMonoMixer(audiotest.NewFailingSource(8000, 2, boom))

	if _, err := mixer.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 6, 100)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", mixer.SampleRate())
	}
	if mixer.BufSize() != src.BufSize() {
		t.Errorf("BufSize() = %d, want %d", mixer.BufSize(), src.BufSize())
	}
	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestMonoMixer_ZeroAllocs(t *testing.T) {
	src := audiotest.NewSineSource(8000, 2, 100000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	_, _ = mixer.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		src.Reset()
		_, _ = mixer.ReadSamples(buf)
	})
	if allocs > 0 {
		t.Errorf("ReadSamples() allocated %v times, want 0", allocs)
	}
}

func BenchmarkMonoMixer(b *testing.B) {
	for _, channels := range []int{1, 2, 8} {
		b.Run(fmt.Sprintf("%dch", channels), func(b *testing.B) {
			src := audiotest.NewSineSource(48000, channels, 48000, 440.0)
			mixer := NewMonoMixer(src)
			buf := make([]float32, 1024)

			b.ReportAllocs()
			for b.Loop() {
				src.Reset()
				for {
					if _, err := mixer.ReadSamples(buf); err != nil {
						break
					}
				}
			}
		})
	}
}
