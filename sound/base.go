// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"math"
	"sync"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/backend"
)

// base carries what every variant shares: the rendered buffers, the
// backend they were rendered for and the completion trigger.
type base struct {
	typ       string
	duration  float64
	amplitude float64
	cfg       backend.Config

	samples []float32
	chunks  [][]float32
	node    *audio.Table

	mtx     sync.Mutex
	trigger func()
}

// checkBackend rejects a configuration no table can be rendered for.
func (b *base) checkBackend() error {
	if err := b.cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", b.typ, err)
	}

	return nil
}

// validate checks the parameters every variant has.
func (b *base) validate(duration, amplitude float64) error {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return invalid(b.typ, KeyDuration, "must be a finite number of milliseconds > 0, got %v", duration)
	}

	return b.validateAmplitude(amplitude)
}

func (b *base) validateAmplitude(amplitude float64) error {
	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) || amplitude < 0 {
		return invalid(b.typ, KeyAmplitude, "must be finite and >= 0, got %v", amplitude)
	}

	return nil
}

// initialize hands the rendered table to the backend specific form. It
// runs once, at the end of construction.
func (b *base) initialize(table []float32) error {
	switch b.cfg.Kind {
	case backend.Streaming:
		chunks, err := audio.Chunk(table, b.cfg.BlockSize)
		if err != nil {
			return fmt.Errorf("%s: chunking: %w", b.typ, err)
		}
		b.samples = table
		b.chunks = chunks
	case backend.NodeGraph:
		b.samples = table
		b.node = audio.NewTable(table, b.cfg.SampleRate, 1)
		b.node.OnEnd(b.fire)
	}

	return nil
}

func (b *base) Type() string            { return b.typ }
func (b *base) Duration() float64       { return b.duration }
func (b *base) Amplitude() float64      { return b.amplitude }
func (b *base) Samples() []float32      { return b.samples }
func (b *base) Chunks() [][]float32     { return b.chunks }
func (b *base) Backend() backend.Config { return b.cfg }

func (b *base) Node() audio.Source {
	if b.node == nil {
		return nil
	}
	return b.node
}

func (b *base) AttachTrigger(fn func()) error {
	if !b.cfg.Configured() {
		return ErrBackendUnconfigured
	}
	if !b.cfg.SupportsCompletionTrigger() {
		return fmt.Errorf("%w: completion trigger on %s backend", ErrUnsupportedOperation, b.cfg.Kind)
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.trigger = fn

	return nil
}

// fire runs and clears the trigger.
func (b *base) fire() {
	b.mtx.Lock()
	fn := b.trigger
	b.trigger = nil
	b.mtx.Unlock()

	if fn != nil {
		fn()
	}
}

// Play starts the sound on out. A node-graph sound is rewound first, so
// playing it again restarts it.
func (b *base) Play(out backend.Output) error {
	if !b.cfg.Configured() || out == nil {
		return ErrBackendUnconfigured
	}
	if out.Kind() != b.cfg.Kind {
		return fmt.Errorf("%w: %s sound rendered for %s, output is %s",
			backend.ErrKindMismatch, b.typ, b.cfg.Kind, out.Kind())
	}

	switch o := out.(type) {
	case backend.GraphOutput:
		b.node.Reset()
		return o.Out(b.node)
	case backend.StreamOutput:
		return o.Enqueue(b.chunks, b.fire)
	default:
		return fmt.Errorf("%w: %T", backend.ErrKindMismatch, out)
	}
}

// scale multiplies samples by gain into a new slice.
func scale(samples []float32, gain float64) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(float64(s) * gain)
	}

	return out
}
