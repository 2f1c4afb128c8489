// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestChunk_PadsLastBlock(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 4800)
	for i := range samples {
		samples[i] = 1
	}

	chunks, err := Chunk(samples, 1024)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}

	if len(chunks) != 5 {
		t.Fatalf("len(chunks) = %d, want 5", len(chunks))
	}

	last := chunks[4]
	if len(last) != 1024 {
		t.Fatalf("len(last) = %d, want 1024", len(last))
	}
	for i := range 704 {
		if last[i] != 1 {
			t.Fatalf("last[%d] = %v, want 1", i, last[i])
		}
	}
	for i := 704; i < 1024; i++ {
		if last[i] != 0 {
			t.Fatalf("last[%d] = %v, want 0 (padding)", i, last[i])
		}
	}
}

func TestChunk_ExactMultiple(t *testing.T) {
	t.Parallel()

	chunks, err := Chunk(make([]float32, 2048), 1024)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Errorf("len(chunks) = %d, want 2", len(chunks))
	}
}

func TestChunk_Empty(t *testing.T) {
	t.Parallel()

	chunks, err := Chunk(nil, 256)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("len(chunks) = %d, want 0", len(chunks))
	}
}

func TestChunk_InvalidBlockSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		if _, err := Chunk([]float32{1}, size); !errors.Is(err, ErrInvalidBlockSize) {
			t.Errorf("Chunk(blockSize=%d) error = %v, want ErrInvalidBlockSize", size, err)
		}
	}
}

func TestChunk_AppendDoesNotClobberNeighbour(t *testing.T) {
	t.Parallel()

	chunks, err := Chunk([]float32{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}

	_ = append(chunks[0], 99)
	if chunks[1][0] != 3 {
		t.Errorf("chunks[1][0] = %v, want 3", chunks[1][0])
	}
}

func TestChunk_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	samples := []float32{1, 2, 3}
	chunks, err := Chunk(samples, 4)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}

	samples[0] = 42
	if chunks[0][0] != 1 {
		t.Errorf("chunks[0][0] = %v, want 1", chunks[0][0])
	}
}

func TestChunk_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 5000).Draw(t, "n")
		blockSize := rapid.IntRange(1, 2048).Draw(t, "blockSize")

		samples := make([]float32, n)
		for i := range samples {
			// Never zero, so padding is distinguishable from data.
			samples[i] = float32(i%7) + 1
		}

		chunks, err := Chunk(samples, blockSize)
		if err != nil {
			t.Fatalf("Chunk() error = %v", err)
		}

		want := (n + blockSize - 1) / blockSize
		if len(chunks) != want {
			t.Fatalf("len(chunks) = %d, want %d", len(chunks), want)
		}

		total := 0
		for i, c := range chunks {
			if len(c) != blockSize {
				t.Fatalf("len(chunks[%d]) = %d, want %d", i, len(c), blockSize)
			}
			total += len(c)
		}
		if total != want*blockSize {
			t.Fatalf("total = %d, want %d", total, want*blockSize)
		}

		for i := range n {
			if got := chunks[i/blockSize][i%blockSize]; got != samples[i] {
				t.Fatalf("sample %d = %v, want %v", i, got, samples[i])
			}
		}

		if rem := n % blockSize; rem != 0 {
			last := chunks[len(chunks)-1]
			for i := rem; i < blockSize; i++ {
				if last[i] != 0 {
					t.Fatalf("padding at %d = %v, want 0", i, last[i])
				}
			}
		}
	})
}

func BenchmarkChunk(b *testing.B) {
	samples := make([]float32, 48000)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Chunk(samples, 1024)
	}
}
