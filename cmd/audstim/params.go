// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audstim/sound"
)

// paramFlags are the ways a subcommand receives parameter sets.
type paramFlags struct {
	params []string
	file   string
}

func (p *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&p.params, "param", "p", nil, "sound parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&p.file, "file", "f", "", "YAML file holding one or more parameter sets")
	cmd.MarkFlagsMutuallyExclusive("param", "file")
}

// sets returns the parameter sets named on the command line: either the
// contents of --file, or one set built from the type argument and --param.
func (p *paramFlags) sets(args []string) ([]sound.Values, error) {
	if p.file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("a type argument cannot be combined with --file")
		}

		f, err := os.Open(p.file)
		if err != nil {
			return nil, fmt.Errorf("opening parameter file: %w", err)
		}
		defer f.Close()

		sets, err := sound.DecodeValues(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.file, err)
		}
		if len(sets) == 0 {
			return nil, fmt.Errorf("%s: no parameter sets", p.file)
		}

		return sets, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("expected a sound type argument or --file")
	}

	v := sound.Values{sound.KeyType: args[0]}
	for _, param := range p.params {
		key, value, ok := strings.Cut(param, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", sound.ErrInvalidParameter, param)
		}
		v[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return []sound.Values{v}, nil
}
