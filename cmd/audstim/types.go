// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered sound types and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.registry.Names()

			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				params, err := a.registry.ParamNames(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-*s  %s\n", width, name, strings.Join(params, ", "))
			}

			return nil
		},
	}
}
