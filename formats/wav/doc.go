// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into audio.Source values and writes
// mono 16-bit PCM files.
//
// Parsing is done by github.com/go-audio/wav. The decoder accepts:
//   - integer PCM (format tag 1 or WAVE_FORMAT_EXTENSIBLE) at 16 or 32 bits
//   - IEEE float (format tag 3) at 32 bits
//   - up to MaxChannels interleaved channels at any positive sample rate
//
// Integer samples are normalized by 2^(bits-1), so 16-bit full scale is
// 32768 and 32-bit full scale is 2147483648. Every other width or format
// tag fails with an error wrapping audio.ErrUnsupportedFormat.
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// The decoder prefers an io.ReadSeeker. Any other reader is buffered in
// memory first.
//
// WriteWAV16 emits the canonical 44-byte header followed by the samples
// and works on any io.Writer:
//
//	err := wav.WriteWAV16(out, 48000, pcm)
package wav
