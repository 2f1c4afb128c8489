// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ik5/audstim/sound"
)

func newInspectCmd(a *app) *cobra.Command {
	var pf paramFlags

	cmd := &cobra.Command{
		Use:   "inspect [type]",
		Short: "Build sounds and describe their rendered layout",
		Long: `inspect builds each parameter set for the configured backend and prints
its type, duration, sample count and block layout. Without a backend only
the parameters are validated and the duration is reported.`,
		Example: `  audstim inspect Tone -p frequency=440 -p duration=100 --backend streaming
  audstim inspect --file stimuli.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := pf.sets(args)
			if err != nil {
				return err
			}

			cfg, err := a.backend()
			if err != nil {
				return err
			}

			for i, v := range sets {
				s, err := a.registry.New(v, cfg)
				if err != nil {
					return fmt.Errorf("parameter set %d: %w", i+1, err)
				}
				a.log.Debug("sound built", "type", s.Type(), "duration_ms", s.Duration())

				describe(cmd.OutOrStdout(), s)
			}

			return nil
		},
	}
	pf.register(cmd)

	return cmd
}

func describe(w io.Writer, s sound.Sound) {
	fmt.Fprintf(w, "%s  duration=%gms  samples=%d", s.Type(), s.Duration(), len(s.Samples()))

	if chunks := s.Chunks(); len(chunks) > 0 {
		block := len(chunks[0])
		tail := len(s.Samples()) - (len(chunks)-1)*block
		fmt.Fprintf(w, "  blocks=%dx%d  tail=%d", len(chunks), block, tail)
	}
	if s.Node() != nil {
		fmt.Fprint(w, "  node=table")
	}
	fmt.Fprintln(w)

	for _, p := range s.Params() {
		fmt.Fprintf(w, "  %-10s %v\n", p.Name+":", p.Value)
	}
}
