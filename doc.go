// SPDX-License-Identifier: EPL-2.0

// Package audstim prepares short auditory stimuli (tones, noise bursts,
// recorded files and speech tokens) for playback on a node-graph or a
// streaming audio engine.
//
// The work is split across subpackages:
//   - audio: the Source pull interface, sample normalization, resampling,
//     downmixing and block chunking
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//     producing audio.Source values, and a 16-bit WAV writer
//   - backend: the backend configuration every sound is rendered for, and
//     the in-process Mixer and Queue engines
//   - sound: the Tone, Noise, File and Speech stimuli and the type registry
//
// # Quick Start
//
//	cfg := backend.Defaults(backend.Streaming)
//	tone, err := sound.NewTone(440, 100, 0.05, cfg)
//	if err != nil {
//		return err
//	}
//	for _, block := range tone.Chunks() {
//		// hand block to the device callback
//	}
//
// # Export
//
// This package turns any audio.Source, or a rendered sound, into mono
// 16-bit PCM:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, _ := audstim.ResampleToMono16(src, 8000, 4096)
//
//	out, _ := os.Create("tone.wav")
//	_ = audstim.Export(out, tone, 0)
package audstim
