// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"fmt"
	"sync"
)

type queued struct {
	chunks [][]float32
	done   func()
}

// Queue is an in-process streaming engine. Sounds are played back to back
// in the order they were enqueued, one block per Next call.
type Queue struct {
	blockSize int

	mtx   sync.Mutex
	items []queued
	pos   int // next block of items[0]
}

var _ StreamOutput = (*Queue)(nil)

func NewQueue(blockSize int) *Queue {
	return &Queue{blockSize: blockSize}
}

func (q *Queue) Kind() Kind     { return Streaming }
func (q *Queue) BlockSize() int { return q.blockSize }

// Enqueue appends a sound. Every chunk must be exactly BlockSize long.
// An empty sound completes at once.
func (q *Queue) Enqueue(chunks [][]float32, done func()) error {
	for i, c := range chunks {
		if len(c) != q.blockSize {
			return fmt.Errorf("%w: block %d has %d samples, want %d", ErrBlockSize, i, len(c), q.blockSize)
		}
	}

	if len(chunks) == 0 {
		if done != nil {
			done()
		}
		return nil
	}

	q.mtx.Lock()
	defer q.mtx.Unlock()

	q.items = append(q.items, queued{chunks: chunks, done: done})

	return nil
}

// Next copies the next block into out. When nothing is queued it writes
// silence and returns false. Handing out the last block of a sound calls
// its done callback.
func (q *Queue) Next(out []float32) bool {
	q.mtx.Lock()

	if len(q.items) == 0 {
		q.mtx.Unlock()
		clear(out)
		return false
	}

	head := q.items[0]
	n := copy(out, head.chunks[q.pos])
	clear(out[n:])
	q.pos++

	var done func()
	if q.pos == len(head.chunks) {
		done = head.done
		q.items[0] = queued{}
		q.items = q.items[1:]
		q.pos = 0
	}
	q.mtx.Unlock()

	if done != nil {
		done()
	}

	return true
}

// Pending is the number of blocks not yet handed out.
func (q *Queue) Pending() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	total := -q.pos
	for _, it := range q.items {
		total += len(it.chunks)
	}

	return total
}
