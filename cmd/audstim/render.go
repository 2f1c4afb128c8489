// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audstim"
	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/backend"
	"github.com/ik5/audstim/sound"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		pf      paramFlags
		output  string
		outRate int
	)

	cmd := &cobra.Command{
		Use:   "render [type]",
		Short: "Play a sound through the in-process engine and save it as WAV",
		Long: `render builds one sound, plays it through the in-process engine of the
configured backend until its completion trigger fires, and writes what was
played as mono 16-bit WAV.`,
		Example: `  audstim render Noise -p duration=250 -p amplitude=0.05 --backend node-graph -o noise.wav
  audstim render --file tone.yaml --backend streaming --out-rate 16000 -o tone.wav`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := pf.sets(args)
			if err != nil {
				return err
			}
			if len(sets) != 1 {
				return fmt.Errorf("render takes one parameter set, got %d", len(sets))
			}

			cfg, err := a.backend()
			if err != nil {
				return err
			}
			if !cfg.Configured() {
				return fmt.Errorf("render: %w", sound.ErrBackendUnconfigured)
			}

			s, err := a.registry.New(sets[0], cfg)
			if err != nil {
				return err
			}
			a.log.Debug("sound built", "type", s.Type(), "duration_ms", s.Duration())

			played, err := play(s, cfg, a.log)
			if err != nil {
				return err
			}

			rate := cfg.SampleRate
			if cmd.Flags().Changed("out-rate") {
				rate = outRate
			}

			// The file is only created once the WAV is fully encoded.
			var buf bytes.Buffer
			if err := audstim.WriteWAV16(&buf, audio.NewTable(played, cfg.SampleRate, 1), rate); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			a.log.Info("rendered", "type", s.Type(), "path", output, "sample_rate", rate)

			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "WAV file to write")
	cmd.Flags().IntVar(&outRate, "out-rate", 0, "sample rate of the WAV file (default: backend rate)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// play runs s on a fresh engine for cfg and collects the blocks it
// produces until the completion trigger fires, or until the engine runs
// dry when the backend has no trigger. The result is cut to the rendered
// length, dropping the padding of the last block.
func play(s sound.Sound, cfg backend.Config, log *slog.Logger) ([]float32, error) {
	fired := false
	if cfg.SupportsCompletionTrigger() {
		err := s.AttachTrigger(func() {
			fired = true
			log.Debug("completion trigger fired", "type", s.Type())
		})
		if err != nil {
			return nil, err
		}
	}

	block := make([]float32, cfg.BlockSize)
	played := make([]float32, 0, len(s.Samples())+cfg.BlockSize)

	switch cfg.Kind {
	case backend.NodeGraph:
		mixer := backend.NewMixer(cfg.SampleRate)
		if err := s.Play(mixer); err != nil {
			return nil, err
		}
		for !fired {
			active := mixer.Process(block)
			played = append(played, block...)
			if active == 0 {
				break
			}
		}
	case backend.Streaming:
		queue := backend.NewQueue(cfg.BlockSize)
		if err := s.Play(queue); err != nil {
			return nil, err
		}
		for !fired && queue.Next(block) {
			played = append(played, block...)
		}
	default:
		return nil, sound.ErrBackendUnconfigured
	}

	return played[:min(len(played), len(s.Samples()))], nil
}
