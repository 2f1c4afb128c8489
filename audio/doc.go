// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks for stimuli.
//
// Samples are float32 in [-1.0, 1.0]. Everything that produces audio
// implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted; a final read
// may return samples together with io.EOF.
//
// # Streaming
//
// Resampler and MonoMixer wrap a Source and can be chained:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// ReadAll drains any Source into memory.
//
// # Buffers
//
// Stimuli are rendered up front, so the package also works on whole
// buffers:
//   - Resample converts a mono buffer to a new rate with an exact length
//   - Chunk splits a buffer into zero-padded fixed-size blocks
//   - IntToFloat32 and NormalizeInt scale 16 and 32 bit integer PCM
//   - Table plays a prepared buffer as a Source and reports when it ends
//
// # Decoders
//
// A Registry maps file extensions to Decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
package audio
