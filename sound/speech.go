// SPDX-License-Identifier: EPL-2.0

package sound

import "github.com/ik5/audstim/backend"

// DefaultSpeechAmplitude is used when a parameter set has no amplitude.
const DefaultSpeechAmplitude = 0.05

// Speech is a recorded speech token. It plays exactly like File; the
// speaker and phonetic labels only describe the recording.
type Speech struct {
	File

	speaker   string
	consonant string
	vowel     string
	token     int
}

var _ Sound = (*Speech)(nil)

// SpeechLabels describes a speech recording.
type SpeechLabels struct {
	Speaker   string
	Consonant string
	Vowel     string
	Token     int
}

func NewSpeech(path string, labels SpeechLabels, amplitude float64, cfg backend.Config, opts ...Option) (*Speech, error) {
	s := &Speech{
		speaker:   labels.Speaker,
		consonant: labels.Consonant,
		vowel:     labels.Vowel,
		token:     labels.Token,
	}
	if err := s.load(TypeSpeech, path, amplitude, cfg, newOptions(opts)); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Speech) Speaker() string   { return s.speaker }
func (s *Speech) Consonant() string { return s.consonant }
func (s *Speech) Vowel() string     { return s.vowel }
func (s *Speech) Token() int        { return s.token }

func (s *Speech) Params() []Param {
	return []Param{
		{KeyPath, s.path},
		{KeyAmplitude, s.amplitude},
		{KeySpeaker, s.speaker},
		{KeyConsonant, s.consonant},
		{KeyVowel, s.vowel},
		{KeyToken, s.token},
	}
}

func (s *Speech) Values() Values { return paramValues(s.typ, s.Params()) }

func speechFromValues(v Values, cfg backend.Config, opts ...Option) (Sound, error) {
	path, err := v.stringParam(TypeSpeech, KeyPath)
	if err != nil {
		return nil, err
	}

	var labels SpeechLabels
	for _, field := range []struct {
		key string
		dst *string
	}{
		{KeySpeaker, &labels.Speaker},
		{KeyConsonant, &labels.Consonant},
		{KeyVowel, &labels.Vowel},
	} {
		if *field.dst, err = v.stringParam(TypeSpeech, field.key); err != nil {
			return nil, err
		}
	}
	if labels.Token, err = v.intParam(TypeSpeech, KeyToken); err != nil {
		return nil, err
	}

	amplitude, err := v.floatParamOr(TypeSpeech, KeyAmplitude, DefaultSpeechAmplitude)
	if err != nil {
		return nil, err
	}
	if _, err := v.extraOptions(TypeSpeech); err != nil {
		return nil, err
	}

	s, err := NewSpeech(path, labels, amplitude, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}
