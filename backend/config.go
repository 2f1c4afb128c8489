// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"fmt"
	"strings"
)

// Kind selects how rendered sounds reach the audio device.
type Kind string

const (
	// None renders nothing; sounds only validate and compute durations.
	None Kind = ""
	// NodeGraph plays each sound as a table node inside a running engine.
	NodeGraph Kind = "nodegraph"
	// Streaming hands each sound to the device as fixed-size blocks.
	Streaming Kind = "streaming"
)

func (k Kind) String() string {
	if k == None {
		return "none"
	}
	return string(k)
}

// ParseKind resolves a backend name. The engine names pyo and jack are
// accepted as aliases for NodeGraph and Streaming.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "nodegraph", "node-graph", "pyo":
		return NodeGraph, nil
	case "streaming", "jack":
		return Streaming, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Config describes the active backend. It is passed by value to every
// sound constructor.
type Config struct {
	Kind       Kind
	SampleRate int
	BlockSize  int

	// CompletionTrigger reports whether the backend can tell a sound that
	// it finished playing.
	CompletionTrigger bool

	// Args holds engine specific options the library does not interpret.
	Args map[string]string
}

// Defaults returns the stock configuration for kind.
func Defaults(kind Kind) Config {
	switch kind {
	case NodeGraph:
		return Config{Kind: NodeGraph, SampleRate: 44100, BlockSize: 256, CompletionTrigger: true}
	case Streaming:
		return Config{Kind: Streaming, SampleRate: 48000, BlockSize: 1024, CompletionTrigger: true}
	default:
		return Config{Kind: kind}
	}
}

// Configured is false for the None backend.
func (c Config) Configured() bool { return c.Kind != None }

func (c Config) SupportsCompletionTrigger() bool {
	return c.Configured() && c.CompletionTrigger
}

// Nyquist is half the sample rate, or 0 when unconfigured.
func (c Config) Nyquist() float64 {
	if !c.Configured() {
		return 0
	}
	return float64(c.SampleRate) / 2
}

// Validate checks the kind and, for configured kinds, the rate and block size.
func (c Config) Validate() error {
	switch c.Kind {
	case None:
		return nil
	case NodeGraph, Streaming:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, string(c.Kind))
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	}

	return nil
}
