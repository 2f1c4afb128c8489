// SPDX-License-Identifier: EPL-2.0

package backend

import "github.com/ik5/audstim/audio"

// Output is a running audio engine a sound can be played on.
type Output interface {
	Kind() Kind
}

// GraphOutput accepts table nodes and mixes them until they end.
type GraphOutput interface {
	Output
	Out(node audio.Source) error
}

// StreamOutput accepts a sound as fixed-size blocks. done is called after
// the last block has been handed to the device.
type StreamOutput interface {
	Output
	Enqueue(chunks [][]float32, done func()) error
}
