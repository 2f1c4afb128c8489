// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math"
	"slices"

	"github.com/ik5/audstim/backend"
)

// DefaultToneAmplitude is used when a parameter set has no amplitude.
const DefaultToneAmplitude = 0.01

// Tone is a pure sinusoid.
type Tone struct {
	base

	frequency float64
	phase     float64
}

var _ Sound = (*Tone)(nil)

// NewTone renders frequency Hz for duration ms at amplitude gain. The
// frequency must be below the Nyquist rate of a configured backend.
func NewTone(frequency, duration, amplitude float64, cfg backend.Config, opts ...Option) (*Tone, error) {
	o := newOptions(opts)

	t := &Tone{frequency: frequency, phase: o.phase}
	t.typ = TypeTone
	t.cfg = cfg

	if err := t.checkBackend(); err != nil {
		return nil, err
	}
	if err := t.validate(duration, amplitude); err != nil {
		return nil, err
	}
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency <= 0 {
		return nil, invalid(TypeTone, KeyFrequency, "must be a finite number of Hz > 0, got %v", frequency)
	}
	if cfg.Configured() && frequency > cfg.Nyquist() {
		return nil, invalid(TypeTone, KeyFrequency, "%v Hz is above the %v Hz Nyquist rate", frequency, cfg.Nyquist())
	}
	if math.IsNaN(o.phase) || math.IsInf(o.phase, 0) {
		return nil, invalid(TypeTone, KeyPhase, "must be finite, got %v", o.phase)
	}

	t.duration = duration
	t.amplitude = amplitude

	if !cfg.Configured() {
		return t, nil
	}

	table := make([]float32, SampleCount(duration, cfg.SampleRate))
	step := 2 * math.Pi * frequency / float64(cfg.SampleRate)
	for i := range table {
		table[i] = float32(amplitude * math.Sin(step*float64(i)+t.phase))
	}

	if err := t.initialize(table); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tone) Frequency() float64 { return t.frequency }
func (t *Tone) Phase() float64     { return t.phase }

func (t *Tone) Params() []Param {
	return []Param{
		{KeyFrequency, t.frequency},
		{KeyDuration, t.duration},
		{KeyAmplitude, t.amplitude},
	}
}

func (t *Tone) Values() Values {
	v := paramValues(t.typ, t.Params())
	if t.phase != 0 {
		v[KeyPhase] = t.phase
	}

	return v
}

func toneFromValues(v Values, cfg backend.Config, opts ...Option) (Sound, error) {
	frequency, err := v.floatParam(TypeTone, KeyFrequency)
	if err != nil {
		return nil, err
	}
	duration, err := v.floatParam(TypeTone, KeyDuration)
	if err != nil {
		return nil, err
	}
	amplitude, err := v.floatParamOr(TypeTone, KeyAmplitude, DefaultToneAmplitude)
	if err != nil {
		return nil, err
	}
	extra, err := v.extraOptions(TypeTone, KeyPhase)
	if err != nil {
		return nil, err
	}

	t, err := NewTone(frequency, duration, amplitude, cfg, slices.Concat(opts, extra)...)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// paramValues builds a Values mapping from params and the type name.
func paramValues(typ string, params []Param) Values {
	v := make(Values, len(params)+1)
	v[KeyType] = typ
	for _, p := range params {
		v[p.Name] = p.Value
	}

	return v
}
