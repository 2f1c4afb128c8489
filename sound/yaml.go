// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeValues reads parameter sets from YAML. The document may be a
// sequence of mappings or a single mapping. An empty document yields none.
//
//	- type: Tone
//	  frequency: 440
//	  duration: 100
//	- type: Noise
//	  duration: 250
//	  amplitude: 0.02
func DecodeValues(r io.Reader) ([]Values, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding parameter sets: %w", err)
	}

	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.MappingNode:
		var v Values
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding parameter set: %w", err)
		}
		return []Values{v}, nil
	case yaml.SequenceNode:
		var list []Values
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("decoding parameter sets: %w", err)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("%w: parameter sets must be a mapping or a list of mappings (line %d)",
			ErrInvalidParameter, node.Line)
	}
}
