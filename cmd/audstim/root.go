// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audstim/backend"
	"github.com/ik5/audstim/sound"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v        *viper.Viper
	log      *slog.Logger
	registry *sound.Registry

	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:        viper.New(),
		log:      slog.New(slog.DiscardHandler),
		registry: sound.NewDefaultRegistry(),
	}

	root := &cobra.Command{
		Use:   "audstim",
		Short: "Build auditory stimuli for node-graph and streaming audio engines",
		Long: `audstim builds Tone, Noise, File and Speech stimuli for a configured
audio backend, reports how they are laid out, and renders them to WAV.

The backend comes from --config, AUDSTIM_* environment variables and the
flags below, in increasing order of precedence.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "backend config file (yaml, toml or json)")
	flags.String("backend", "", "backend kind: node-graph, streaming or none")
	flags.Int("sample-rate", 0, "engine sample rate in Hz")
	flags.Int("block-size", 0, "engine block size in samples")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	for key, flag := range map[string]string{
		backend.KeyBackend:    "backend",
		backend.KeySampleRate: "sample-rate",
		backend.KeyBlockSize:  "block-size",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	root.AddCommand(
		newTypesCmd(a),
		newInspectCmd(a),
		newRenderCmd(a),
	)

	return root
}

// backend resolves the backend configuration for this invocation.
func (a *app) backend() (backend.Config, error) {
	cfg, err := backend.LoadViper(a.v, a.cfgFile)
	if err != nil {
		return backend.Config{}, err
	}

	a.log.Debug("backend resolved",
		"kind", cfg.Kind.String(),
		"sample_rate", cfg.SampleRate,
		"block_size", cfg.BlockSize,
		"completion_trigger", cfg.CompletionTrigger)

	return cfg, nil
}
