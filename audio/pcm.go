// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
)

// IntToFloat32 normalizes integer PCM of the given bit depth into dst by
// dividing every value by 2^(bitDepth-1), so full scale maps to 1.0.
// Only 16 and 32 bit depths are accepted. Each value is narrowed to the
// declared width first, which keeps the sign correct for decoders that
// return words zero-extended into int.
// It returns the number of samples written, min(len(dst), len(src)).
func IntToFloat32(dst []float32, src []int, bitDepth int) (int, error) {
	n := min(len(dst), len(src))

	switch bitDepth {
	case 16:
		const scale = 1.0 / 32768.0
		for i := range n {
			dst[i] = float32(float64(int16(uint16(src[i]))) * scale)
		}
	case 32:
		const scale = 1.0 / 2147483648.0
		for i := range n {
			dst[i] = float32(float64(int32(uint32(src[i]))) * scale)
		}
	default:
		return 0, fmt.Errorf("%w: %d-bit integer PCM", ErrUnsupportedFormat, bitDepth)
	}

	return n, nil
}

// NormalizeInt is the allocating form of IntToFloat32.
func NormalizeInt(src []int, bitDepth int) ([]float32, error) {
	dst := make([]float32, len(src))
	if _, err := IntToFloat32(dst, src, bitDepth); err != nil {
		return nil, err
	}

	return dst, nil
}

// PCM16LEToFloat32 converts little-endian signed 16-bit PCM bytes into dst.
// A trailing odd byte is ignored. Returns the number of samples written.
func PCM16LEToFloat32(dst []float32, b []byte) int {
	n := min(len(dst), len(b)/2)
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(b[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768.0
	}

	return n
}
