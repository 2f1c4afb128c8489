// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Only 16 and 32 bit integer PCM is accepted; other widths fail with an
// error wrapping audio.ErrUnsupportedFormat. Samples are normalized by
// 2^(bits-1) like the WAV decoder.
//
//	f, _ := os.Open("prompt.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
