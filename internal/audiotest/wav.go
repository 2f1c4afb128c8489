// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WAVE format tags used by the fixtures.
const (
	WAVFormatPCM        = 1
	WAVFormatFloat      = 3
	WAVFormatExtensible = 0xFFFE
)

// WAV builds a RIFF/WAVE file with a single fmt chunk followed by a data
// chunk. Each value in words is written little-endian using bitDepth/8
// bytes, so callers control the exact encoded payload.
func WAV(format, sampleRate, channels, bitDepth int, words []int) []byte {
	width := bitDepth / 8
	fmtSize := 16
	if format == WAVFormatExtensible {
		fmtSize = 40
	}

	dataSize := len(words) * width
	out := make([]byte, 0, 12+8+fmtSize+8+dataSize)

	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(4+8+fmtSize+8+dataSize))
	out = append(out, "WAVE"...)

	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, uint32(fmtSize))
	out = binary.LittleEndian.AppendUint16(out, uint16(format))
	out = binary.LittleEndian.AppendUint16(out, uint16(channels))
	out = binary.LittleEndian.AppendUint32(out, uint32(sampleRate))
	out = binary.LittleEndian.AppendUint32(out, uint32(sampleRate*channels*width))
	out = binary.LittleEndian.AppendUint16(out, uint16(channels*width))
	out = binary.LittleEndian.AppendUint16(out, uint16(bitDepth))
	if format == WAVFormatExtensible {
		out = binary.LittleEndian.AppendUint16(out, 22)
		out = binary.LittleEndian.AppendUint16(out, uint16(bitDepth))
		out = binary.LittleEndian.AppendUint32(out, 0)
		// KSDATAFORMAT_SUBTYPE_PCM
		out = append(out,
			0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
			0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71)
	}

	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(dataSize))
	for _, w := range words {
		v := uint32(w)
		for b := range width {
			out = append(out, byte(v>>(8*b)))
		}
	}

	return out
}

// WAV16 encodes normalized samples as 16-bit integer PCM.
func WAV16(sampleRate, channels int, samples []float32) []byte {
	words := make([]int, len(samples))
	for i, s := range samples {
		words[i] = int(math.Round(float64(s) * 32767))
	}

	return WAV(WAVFormatPCM, sampleRate, channels, 16, words)
}

// WAVFloat32 encodes samples as 32-bit IEEE float PCM.
func WAVFloat32(sampleRate, channels int, samples []float32) []byte {
	words := make([]int, len(samples))
	for i, s := range samples {
		words[i] = int(math.Float32bits(s))
	}

	return WAV(WAVFormatFloat, sampleRate, channels, 32, words)
}

// WriteFile writes data to dir/name and returns the path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("write fixture %s: %v", path, err)
	}

	return path
}
