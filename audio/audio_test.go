// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/audstim/internal/audiotest"
)

// rateDecoder produces a short silent source at a fixed rate, which tells
// the tests which decoder handled a request.
type rateDecoder struct {
	rate int
}

func (d *rateDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(d.rate, 1, 10), nil
}

func TestRegistry_Routing(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &rateDecoder{rate: 8000})
	registry.Register("mp3", &rateDecoder{rate: 44100})
	registry.Register("ogg", &rateDecoder{rate: 48000})

	tests := []struct {
		format   string
		wantRate int
		wantOK   bool
	}{
		{"wav", 8000, true},
		{"mp3", 44100, true},
		{"ogg", 48000, true},
		{"WAV", 0, false},
		{"flac", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			dec, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if !ok {
				return
			}

			src, err := dec.Decode(nil)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != tt.wantRate {
				t.Errorf("Get(%q) routed to the %d Hz decoder, want %d Hz", tt.format, src.SampleRate(), tt.wantRate)
			}
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first, second := &rateDecoder{rate: 1}, &rateDecoder{rate: 2}

	registry.Register("wav", first)
	registry.Register("wav", second)

	if got, _ := registry.Get("wav"); got != second {
		t.Errorf("Get() = %v, want the later registration", got)
	}
	if got := registry.Formats(); !slices.Equal(got, []string{"wav"}) {
		t.Errorf("Formats() = %v, want [wav]", got)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if got := registry.Formats(); len(got) != 0 {
		t.Errorf("empty registry Formats() = %v", got)
	}

	for _, ext := range []string{"wav", "aiff", "mp3", "aif", "oga"} {
		registry.Register(ext, &rateDecoder{})
	}

	want := []string{"aif", "aiff", "mp3", "oga", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		ext := fmt.Sprintf("f%02d", i)
		wg.Go(func() { registry.Register(ext, &rateDecoder{rate: i}) })
		wg.Go(func() { _, _ = registry.Get(ext) })
		wg.Go(func() { _ = registry.Formats() })
	}
	wg.Wait()

	if got := len(registry.Formats()); got != 16 {
		t.Errorf("registered %d formats, want 16", got)
	}
	for i := range 16 {
		if _, ok := registry.Get(fmt.Sprintf("f%02d", i)); !ok {
			t.Errorf("f%02d missing", i)
		}
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &rateDecoder{})

	b.ReportAllocs()
	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
