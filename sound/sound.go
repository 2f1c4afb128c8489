// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/backend"
)

// Registered type names.
const (
	TypeTone   = "Tone"
	TypeNoise  = "Noise"
	TypeFile   = "File"
	TypeSpeech = "Speech"
)

// Parameter keys.
const (
	KeyType         = "type"
	KeyFrequency    = "frequency"
	KeyDuration     = "duration"
	KeyAmplitude    = "amplitude"
	KeyPhase        = "phase"
	KeyDistribution = "distribution"
	KeySeed         = "seed"
	KeyPath         = "path"
	KeySpeaker      = "speaker"
	KeyConsonant    = "consonant"
	KeyVowel        = "vowel"
	KeyToken        = "token"
)

// Param is one named parameter of a sound.
type Param struct {
	Name  string
	Value any
}

// Sound is a stimulus rendered for one backend. Buffers are computed when
// the sound is built and never change afterwards.
type Sound interface {
	// Type is the registered type name.
	Type() string
	// Duration in milliseconds.
	Duration() float64
	Amplitude() float64
	// Params lists the parameters needed to rebuild the sound, in a
	// fixed order per type.
	Params() []Param
	// Values is Params as a mapping, including the type key. It can be
	// passed back to Registry.New.
	Values() Values

	// Samples is the mono table at the backend rate. Nil without a backend.
	Samples() []float32
	// Chunks holds the zero-padded blocks for a streaming backend.
	Chunks() [][]float32
	// Node is the playback handle for a node-graph backend.
	Node() audio.Source
	Backend() backend.Config

	// AttachTrigger registers a one-shot callback fired when playback
	// reaches the end of the sound, replacing any earlier one.
	AttachTrigger(fn func()) error
	Play(out backend.Output) error
}

// SampleCount is the table length for a sound of durationMS at rate.
func SampleCount(durationMS float64, rate int) int {
	return int(math.Ceil(durationMS / 1000 * float64(rate)))
}
