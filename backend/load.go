// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys. Environment variables use the AUDSTIM_ prefix and
// upper case, e.g. AUDSTIM_SAMPLE_RATE.
const (
	KeyBackend           = "backend"
	KeySampleRate        = "sample_rate"
	KeyBlockSize         = "block_size"
	KeyCompletionTrigger = "completion_trigger"
	KeyArgs              = "args"

	EnvPrefix = "AUDSTIM"
)

// Load reads the backend configuration from an optional file at path
// (YAML, TOML or JSON by extension) and the environment. Unset values
// fall back to Defaults for the resolved kind.
func Load(path string) (Config, error) {
	return LoadViper(viper.New(), path)
}

// LoadViper is Load on a caller supplied viper instance, so command line
// flags bound to the keys above take part in the lookup.
func LoadViper(v *viper.Viper, path string) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading backend config %s: %w", path, err)
		}
	}

	kind, err := ParseKind(v.GetString(KeyBackend))
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults(kind)
	if v.IsSet(KeySampleRate) {
		cfg.SampleRate = v.GetInt(KeySampleRate)
	}
	if v.IsSet(KeyBlockSize) {
		cfg.BlockSize = v.GetInt(KeyBlockSize)
	}
	if v.IsSet(KeyCompletionTrigger) {
		cfg.CompletionTrigger = v.GetBool(KeyCompletionTrigger)
	}
	if v.IsSet(KeyArgs) {
		cfg.Args = v.GetStringMapString(KeyArgs)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
