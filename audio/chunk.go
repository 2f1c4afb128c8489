// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Chunk splits samples into consecutive blocks of exactly blockSize values.
// A short final block is padded with zeros. All blocks share one backing
// array but have capped capacity, so appending to a block never writes
// into its neighbour. An empty input yields no blocks.
func Chunk(samples []float32, blockSize int) ([][]float32, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	count := (len(samples) + blockSize - 1) / blockSize
	backing := make([]float32, count*blockSize)
	copy(backing, samples)

	chunks := make([][]float32, count)
	for i := range count {
		start := i * blockSize
		end := start + blockSize
		chunks[i] = backing[start:end:end]
	}

	return chunks, nil
}
