// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/audstim/backend"
)

// Constructor builds a sound from a serialized parameter set.
type Constructor func(v Values, cfg backend.Config, opts ...Option) (Sound, error)

type registration struct {
	ctor   Constructor
	params []string
}

// Registry maps case-sensitive type names to constructors.
type Registry struct {
	types map[string]registration

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]registration),
		mtx:   &sync.RWMutex{},
	}
}

// NewDefaultRegistry knows Tone, Noise, File and Speech, plus the
// lower-case alias speech.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(TypeTone, toneFromValues, KeyFrequency, KeyDuration, KeyAmplitude)
	r.Register(TypeNoise, noiseFromValues, KeyDuration, KeyAmplitude)
	r.Register(TypeFile, fileFromValues, KeyPath, KeyAmplitude)

	speechParams := []string{KeyPath, KeyAmplitude, KeySpeaker, KeyConsonant, KeyVowel, KeyToken}
	r.Register(TypeSpeech, speechFromValues, speechParams...)
	r.Register("speech", speechFromValues, speechParams...)

	return r
}

// Register adds or replaces name. params lists the parameter keys the
// constructor reads, in display order.
func (r *Registry) Register(name string, c Constructor, params ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.types[name] = registration{ctor: c, params: slices.Clone(params)}
}

// Lookup matches name exactly.
func (r *Registry) Lookup(name string) (Constructor, error) {
	reg, err := r.get(name)
	if err != nil {
		return nil, err
	}

	return reg.ctor, nil
}

// ParamNames returns the parameter keys registered for name.
func (r *Registry) ParamNames(name string) ([]string, error) {
	reg, err := r.get(name)
	if err != nil {
		return nil, err
	}

	return slices.Clone(reg.params), nil
}

func (r *Registry) get(name string) (registration, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	reg, ok := r.types[name]
	if !ok {
		return registration{}, fmt.Errorf("%w: %q", ErrUnknownSoundType, name)
	}

	return reg, nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// New builds the sound named by the type key of v.
func (r *Registry) New(v Values, cfg backend.Config, opts ...Option) (Sound, error) {
	name, err := v.Type()
	if err != nil {
		return nil, err
	}

	ctor, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	return ctor(v, cfg, opts...)
}
