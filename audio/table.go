// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Table is an in-memory Source over a prepared sample buffer. It is the
// playback node handed to a node-graph engine: it plays the buffer once,
// reports io.EOF at the end and fires its end hook the first time the end
// is reached after each Reset.
type Table struct {
	samples    []float32
	sampleRate int
	channels   int

	mtx   sync.Mutex
	pos   int
	ended bool
	onEnd func()
}

// NewTable wraps samples without copying. The caller must not modify
// samples while the table is in use.
func NewTable(samples []float32, sampleRate, channels int) *Table {
	if channels < 1 {
		channels = 1
	}

	return &Table{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (t *Table) SampleRate() int { return t.sampleRate }
func (t *Table) Channels() int   { return t.channels }
func (t *Table) BufSize() int    { return 4096 }
func (t *Table) Close() error    { return nil }

// Len is the number of samples in the table.
func (t *Table) Len() int { return len(t.samples) }

// OnEnd sets the hook fired when playback reaches the end of the table.
func (t *Table) OnEnd(fn func()) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.onEnd = fn
}

// Reset rewinds the table so it can be played again.
func (t *Table) Reset() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.pos = 0
	t.ended = false
}

func (t *Table) ReadSamples(dst []float32) (int, error) {
	if len(dst)%t.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	t.mtx.Lock()
	n := copy(dst, t.samples[t.pos:])
	t.pos += n

	var fire func()
	done := t.pos >= len(t.samples)
	if done && !t.ended {
		t.ended = true
		fire = t.onEnd
	}
	t.mtx.Unlock()

	// The hook runs outside the lock so it may call back into the table.
	if fire != nil {
		fire()
	}

	if done {
		return n, io.EOF
	}

	return n, nil
}
