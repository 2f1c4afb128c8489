// SPDX-License-Identifier: EPL-2.0

// Package sound builds auditory stimuli for an experiment rig.
//
// A sound is rendered once, when it is constructed, for the backend named
// in its backend.Config:
//   - streaming backends get the mono table split into zero-padded
//     blocks of the configured block size
//   - node-graph backends get the table wrapped in an audio.Table node
//   - without a backend only parameters and duration are computed
//
// Four types are provided: Tone, Noise, File and Speech. A Registry maps
// type names to constructors so sounds can be built from Values, e.g. as
// decoded by DecodeValues:
//
//	reg := sound.NewDefaultRegistry()
//	s, err := reg.New(sound.Values{"type": "Tone", "frequency": 440, "duration": 100}, cfg)
//
// Construction errors are *ParamError values naming the type and the
// offending parameter; use errors.Is with the package sentinels to
// classify them.
package sound
