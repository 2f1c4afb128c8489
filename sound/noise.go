// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math/rand/v2"
	"slices"

	"github.com/ik5/audstim/backend"
)

// DefaultNoiseAmplitude is used when a parameter set has no amplitude.
const DefaultNoiseAmplitude = 0.01

// Distribution selects the range Noise samples are drawn from.
type Distribution string

const (
	// Bipolar is zero-mean uniform noise in [-amplitude, amplitude).
	Bipolar Distribution = "bipolar"
	// Unipolar is uniform noise in [0, amplitude), which carries a DC
	// offset of amplitude/2.
	Unipolar Distribution = "unipolar"
)

// Noise is uniform white noise.
type Noise struct {
	base

	distribution Distribution
	seed         *uint64
}

var _ Sound = (*Noise)(nil)

// NewNoise renders duration ms of uniform noise. Without WithSeed every
// call draws a different table.
func NewNoise(duration, amplitude float64, cfg backend.Config, opts ...Option) (*Noise, error) {
	o := newOptions(opts)

	n := &Noise{distribution: o.distribution, seed: o.seed}
	n.typ = TypeNoise
	n.cfg = cfg

	if err := n.checkBackend(); err != nil {
		return nil, err
	}
	if err := n.validate(duration, amplitude); err != nil {
		return nil, err
	}
	if n.distribution != Bipolar && n.distribution != Unipolar {
		return nil, invalid(TypeNoise, KeyDistribution, "want %q or %q, got %q", Bipolar, Unipolar, n.distribution)
	}

	n.duration = duration
	n.amplitude = amplitude

	if !cfg.Configured() {
		return n, nil
	}

	var rng *rand.Rand
	if n.seed != nil {
		rng = rand.New(rand.NewPCG(*n.seed, *n.seed^0x9e3779b97f4a7c15))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	table := make([]float32, SampleCount(duration, cfg.SampleRate))
	for i := range table {
		u := rng.Float64()
		if n.distribution == Bipolar {
			u = 2*u - 1
		}
		table[i] = float32(amplitude * u)
	}

	if err := n.initialize(table); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Noise) Distribution() Distribution { return n.distribution }

// Seed reports the seed the table was drawn with, if any.
func (n *Noise) Seed() (uint64, bool) {
	if n.seed == nil {
		return 0, false
	}
	return *n.seed, true
}

func (n *Noise) Params() []Param {
	return []Param{
		{KeyDuration, n.duration},
		{KeyAmplitude, n.amplitude},
	}
}

func (n *Noise) Values() Values {
	v := paramValues(n.typ, n.Params())
	v[KeyDistribution] = string(n.distribution)
	if n.seed != nil {
		v[KeySeed] = *n.seed
	}

	return v
}

func noiseFromValues(v Values, cfg backend.Config, opts ...Option) (Sound, error) {
	duration, err := v.floatParam(TypeNoise, KeyDuration)
	if err != nil {
		return nil, err
	}
	amplitude, err := v.floatParamOr(TypeNoise, KeyAmplitude, DefaultNoiseAmplitude)
	if err != nil {
		return nil, err
	}
	extra, err := v.extraOptions(TypeNoise, KeyDistribution, KeySeed)
	if err != nil {
		return nil, err
	}

	n, err := NewNoise(duration, amplitude, cfg, slices.Concat(opts, extra)...)
	if err != nil {
		return nil, err
	}

	return n, nil
}
