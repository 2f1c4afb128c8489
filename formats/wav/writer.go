// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const headerSize = 44

// writeChunk is the number of samples encoded per Write call.
const writeChunk = 8192

// WriteWAV16 writes mono 16-bit PCM at sampleRate to w. Only the 44-byte
// canonical header is produced, so w needs no Seek.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}

	const (
		channels  = 1
		byteWidth = 2
	)
	dataSize := uint32(len(samples) * byteWidth)

	header := make([]byte, 0, headerSize)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, 36+dataSize)
	header = append(header, "WAVEfmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, formatPCM)
	header = binary.LittleEndian.AppendUint16(header, channels)
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate*channels*byteWidth))
	header = binary.LittleEndian.AppendUint16(header, channels*byteWidth)
	header = binary.LittleEndian.AppendUint16(header, 8*byteWidth)
	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	buf := make([]byte, 0, min(len(samples), writeChunk)*byteWidth)
	for start := 0; start < len(samples); start += writeChunk {
		buf = buf[:0]
		for _, s := range samples[start:min(start+writeChunk, len(samples))] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("wav: write samples: %w", err)
		}
	}

	return nil
}
