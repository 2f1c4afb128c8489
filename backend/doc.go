// SPDX-License-Identifier: EPL-2.0

// Package backend describes the audio engine sounds are rendered for.
//
// A Config is an explicit value: the kind of engine, its sample rate and
// block size, and whether it can report playback completion. Load builds
// one from a config file and AUDSTIM_* environment variables through
// spf13/viper.
//
// Mixer and Queue are the in-process engine bodies for the two kinds. A
// device callback calls Mixer.Process or Queue.Next once per period.
package backend
