// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audstim/audio"
)

func TestMixer_SumsAndDrops(t *testing.T) {
	t.Parallel()

	m := NewMixer(8000)
	a := audio.NewTable([]float32{0.1, 0.1, 0.1, 0.1}, 8000, 1)
	b := audio.NewTable([]float32{0.2, 0.2}, 8000, 1)

	var ended atomic.Int32
	b.OnEnd(func() { ended.Add(1) })

	require.NoError(t, m.Out(a))
	require.NoError(t, m.Out(b))
	assert.Equal(t, 2, m.Active())

	out := make([]float32, 2)
	active := m.Process(out)
	assert.InDeltaSlice(t, []float32{0.3, 0.3}, out, 1e-6)
	assert.Equal(t, 1, active, "b reached its end")
	assert.EqualValues(t, 1, ended.Load())

	active = m.Process(out)
	assert.InDeltaSlice(t, []float32{0.1, 0.1}, out, 1e-6)
	assert.Equal(t, 0, active)

	m.Process(out)
	assert.Equal(t, []float32{0, 0}, out)
}

func TestMixer_PartialBlock(t *testing.T) {
	t.Parallel()

	m := NewMixer(8000)
	require.NoError(t, m.Out(audio.NewTable([]float32{1}, 8000, 1)))

	out := []float32{9, 9, 9}
	m.Process(out)
	assert.Equal(t, []float32{1, 0, 0}, out)
}

func TestMixer_Rejects(t *testing.T) {
	t.Parallel()

	m := NewMixer(44100)

	assert.ErrorIs(t, m.Out(nil), ErrNilNode)
	assert.ErrorIs(t, m.Out(audio.NewTable(nil, 48000, 1)), ErrRateMismatch)
	assert.ErrorIs(t, m.Out(audio.NewTable(nil, 44100, 2)), ErrChannelMismatch)
	assert.Equal(t, 0, m.Active())
}

func TestMixer_OutTwiceIsOneNode(t *testing.T) {
	t.Parallel()

	m := NewMixer(8000)
	node := audio.NewTable([]float32{1, 1}, 8000, 1)

	require.NoError(t, m.Out(node))
	require.NoError(t, m.Out(node))
	assert.Equal(t, 1, m.Active())
	assert.Equal(t, NodeGraph, m.Kind())
}

func TestMixer_HookMayRestartNode(t *testing.T) {
	t.Parallel()

	m := NewMixer(8000)
	node := audio.NewTable([]float32{1}, 8000, 1)

	var loops atomic.Int32
	node.OnEnd(func() {
		if loops.Add(1) == 1 {
			node.Reset()
			_ = m.Out(node)
		}
	})
	require.NoError(t, m.Out(node))

	out := make([]float32, 1)
	assert.Equal(t, 1, m.Process(out), "restarted node stays active")
	assert.EqualValues(t, 1, loops.Load())

	assert.Equal(t, 0, m.Process(out))
	assert.Equal(t, []float32{1}, out)
	assert.EqualValues(t, 2, loops.Load())
}
