// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/audstim/audio"
)

type activeNode struct {
	src audio.Source
	gen uint64 // bumped every time the node is (re)activated
}

// Mixer is an in-process node-graph engine. Out activates a mono node and
// Process, called once per device period, sums every active node into the
// output block. Nodes are dropped when they report an error or io.EOF.
type Mixer struct {
	sampleRate int

	mtx     sync.Mutex
	nodes   []activeNode
	gen     uint64
	scratch []float32
}

var _ GraphOutput = (*Mixer)(nil)

func NewMixer(sampleRate int) *Mixer {
	return &Mixer{sampleRate: sampleRate}
}

func (m *Mixer) Kind() Kind      { return NodeGraph }
func (m *Mixer) SampleRate() int { return m.sampleRate }

// Out starts mixing node. Activating a node that is already active keeps
// a single entry for it.
func (m *Mixer) Out(node audio.Source) error {
	if node == nil {
		return ErrNilNode
	}
	if node.SampleRate() != m.sampleRate {
		return fmt.Errorf("%w: %d Hz, engine runs at %d Hz", ErrRateMismatch, node.SampleRate(), m.sampleRate)
	}
	if node.Channels() != 1 {
		return fmt.Errorf("%w: %d channels", ErrChannelMismatch, node.Channels())
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.gen++
	if i := m.index(node); i >= 0 {
		m.nodes[i].gen = m.gen
		return nil
	}
	m.nodes = append(m.nodes, activeNode{src: node, gen: m.gen})

	return nil
}

func (m *Mixer) index(node audio.Source) int {
	return slices.IndexFunc(m.nodes, func(n activeNode) bool { return n.src == node })
}

// Active is the number of nodes still playing.
func (m *Mixer) Active() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return len(m.nodes)
}

// Process fills out with the sum of all active nodes and returns how many
// remain active. Nodes are read without holding the lock, so their end
// hooks may call Out; a node re-activated that way keeps playing.
// Process itself must not run concurrently.
func (m *Mixer) Process(out []float32) int {
	m.mtx.Lock()
	nodes := slices.Clone(m.nodes)
	if cap(m.scratch) < len(out) {
		m.scratch = make([]float32, len(out))
	}
	scratch := m.scratch[:len(out)]
	m.mtx.Unlock()

	clear(out)

	var finished []activeNode
	for _, node := range nodes {
		n, err := node.src.ReadSamples(scratch)
		for i, s := range scratch[:n] {
			out[i] += s
		}
		if err != nil {
			finished = append(finished, node)
		}
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	if len(finished) > 0 {
		m.nodes = slices.DeleteFunc(m.nodes, func(n activeNode) bool {
			return slices.Contains(finished, n)
		})
	}

	return len(m.nodes)
}
