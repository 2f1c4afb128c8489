// SPDX-License-Identifier: EPL-2.0

package sound

// Option adjusts how a sound is built.
type Option func(*options)

type options struct {
	loader       *Loader
	phase        float64
	distribution Distribution
	seed         *uint64
}

func newOptions(opts []Option) *options {
	o := &options{distribution: Bipolar}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithLoader sets the loader File and Speech read their payload with.
func WithLoader(l *Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithPhase sets the starting phase of a Tone in radians.
func WithPhase(phase float64) Option {
	return func(o *options) { o.phase = phase }
}

// WithDistribution picks the Noise sample distribution.
func WithDistribution(d Distribution) Option {
	return func(o *options) { o.distribution = d }
}

// WithSeed makes Noise reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = &seed }
}

func (o *options) fileLoader() *Loader {
	if o.loader != nil {
		return o.loader
	}
	return defaultLoader
}
