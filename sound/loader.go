// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/formats/aiff"
	"github.com/ik5/audstim/formats/mp3"
	"github.com/ik5/audstim/formats/vorbis"
	"github.com/ik5/audstim/formats/wav"
)

// MaxChannels is the widest payload a file sound accepts before downmix.
const MaxChannels = 8

// Payload is a decoded audio file, downmixed to mono. Payloads may be
// shared through a Loader cache and must not be modified.
type Payload struct {
	Samples    []float32
	SampleRate int
	// Channels is the channel count of the file before downmix.
	Channels int
}

// Frames is the number of sample frames in the file.
func (p *Payload) Frames() int { return len(p.Samples) }

// DurationMS is the playing time at the file's own rate.
func (p *Payload) DurationMS() float64 {
	return float64(len(p.Samples)) / float64(p.SampleRate) * 1000
}

// Loader opens audio files and decodes them by extension.
type Loader struct {
	decoders *audio.Registry
	cache    *cache.Cache
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCache keeps decoded payloads for ttl, keyed by absolute path.
func WithCache(ttl time.Duration) LoaderOption {
	return func(l *Loader) {
		l.cache = cache.New(ttl, 2*ttl)
	}
}

// WithDecoder registers d for files ending in .ext.
func WithDecoder(ext string, d audio.Decoder) LoaderOption {
	return func(l *Loader) {
		l.decoders.Register(strings.ToLower(strings.TrimPrefix(ext, ".")), d)
	}
}

// NewLoader returns a loader knowing WAV, AIFF, MP3 and Ogg Vorbis.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{decoders: audio.NewRegistry()}

	for _, ext := range []string{"wav", "wave"} {
		l.decoders.Register(ext, wav.Decoder{})
	}
	for _, ext := range []string{"aif", "aiff"} {
		l.decoders.Register(ext, aiff.Decoder{})
	}
	l.decoders.Register("mp3", mp3.Decoder{})
	for _, ext := range []string{"ogg", "oga"} {
		l.decoders.Register(ext, vorbis.Decoder{})
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

var defaultLoader = NewLoader()

// Formats lists the known file extensions.
func (l *Loader) Formats() []string { return l.decoders.Formats() }

// Load decodes path. Errors wrap ErrUnsupportedFormat for sample formats
// the decoders reject and ErrSourceUnavailable for everything else.
func (l *Loader) Load(path string) (*Payload, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if l.cache != nil {
		if p, ok := l.cache.Get(abs); ok {
			return p.(*Payload), nil
		}
	}

	p, err := l.decode(abs)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Set(abs, p, cache.DefaultExpiration)
	}

	return p, nil
}

func (l *Loader) decode(path string) (*Payload, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := l.decoders.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q files", ErrSourceUnavailable, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, classify(path, err)
	}
	defer src.Close()

	channels := src.Channels()
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %s has %d channels, at most %d supported",
			ErrUnsupportedFormat, path, channels, MaxChannels)
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %s reports sample rate %d", ErrSourceUnavailable, path, src.SampleRate())
	}

	mono := src
	if channels > 1 {
		mono = audio.NewMonoMixer(src)
	}

	samples, err := audio.ReadAll(mono, 0)
	if err != nil {
		return nil, classify(path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s has no samples", ErrSourceUnavailable, path)
	}

	return &Payload{
		Samples:    samples,
		SampleRate: src.SampleRate(),
		Channels:   channels,
	}, nil
}

func classify(path string, err error) error {
	if errors.Is(err, ErrUnsupportedFormat) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
}
