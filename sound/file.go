// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/backend"
)

// DefaultFileAmplitude is used when a parameter set has no amplitude.
const DefaultFileAmplitude = 0.01

// File plays a recorded audio file. The payload is downmixed to mono,
// resampled to the backend rate and scaled by the amplitude.
type File struct {
	base

	path           string
	sourceRate     int
	sourceChannels int
}

var _ Sound = (*File)(nil)

// NewFile loads path with the default loader, or the one set by
// WithLoader. The duration comes from the file's own rate and length.
func NewFile(path string, amplitude float64, cfg backend.Config, opts ...Option) (*File, error) {
	f := &File{}
	if err := f.load(TypeFile, path, amplitude, cfg, newOptions(opts)); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File) load(typ, path string, amplitude float64, cfg backend.Config, o *options) error {
	f.typ = typ
	f.cfg = cfg
	f.path = path

	if err := f.checkBackend(); err != nil {
		return err
	}
	if path == "" {
		return invalid(typ, KeyPath, "missing")
	}
	if err := f.validateAmplitude(amplitude); err != nil {
		return err
	}

	p, err := o.fileLoader().Load(path)
	if err != nil {
		return &ParamError{Type: typ, Param: KeyPath, Err: err}
	}

	f.amplitude = amplitude
	f.duration = p.DurationMS()
	f.sourceRate = p.SampleRate
	f.sourceChannels = p.Channels

	if !cfg.Configured() {
		return nil
	}

	table := p.Samples
	if p.SampleRate != cfg.SampleRate {
		table, err = audio.Resample(p.Samples, p.SampleRate, cfg.SampleRate)
		if err != nil {
			return &ParamError{Type: typ, Param: KeyPath, Err: err}
		}
	}

	return f.initialize(scale(table, amplitude))
}

func (f *File) Path() string { return f.path }

// SourceRate is the sample rate of the file before resampling.
func (f *File) SourceRate() int { return f.sourceRate }

// SourceChannels is the channel count of the file before downmix.
func (f *File) SourceChannels() int { return f.sourceChannels }

func (f *File) Params() []Param {
	return []Param{
		{KeyPath, f.path},
		{KeyAmplitude, f.amplitude},
	}
}

func (f *File) Values() Values { return paramValues(f.typ, f.Params()) }

func fileFromValues(v Values, cfg backend.Config, opts ...Option) (Sound, error) {
	path, err := v.stringParam(TypeFile, KeyPath)
	if err != nil {
		return nil, err
	}
	amplitude, err := v.floatParamOr(TypeFile, KeyAmplitude, DefaultFileAmplitude)
	if err != nil {
		return nil, err
	}
	if _, err := v.extraOptions(TypeFile); err != nil {
		return nil, err
	}

	f, err := NewFile(path, amplitude, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return f, nil
}
