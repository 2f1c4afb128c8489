// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

// Source is a pull-based stream of interleaved float32 samples. Decoders,
// the resampler, the downmixer and playback tables all implement it, so
// they chain into pipelines.
type Source interface {
	SampleRate() int
	Channels() int
	// ReadSamples fills dst with interleaved samples normalized to [-1, 1]
	// and returns the number of values written, not frames. The final
	// values may arrive together with io.EOF; after that every call
	// returns 0, io.EOF. len(dst) must be a multiple of Channels().
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size the source prefers.
	BufSize() int
	Close() error
}

// Decoder opens one container format.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys, usually lower-case file extensions, to
// decoders. It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
