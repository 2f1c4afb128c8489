// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"maps"
	"slices"

	"github.com/spf13/cast"
)

// Values is a serialized parameter set: a type key plus the parameters of
// that type. Scalars may be numbers, booleans or their string forms, as
// they come from YAML, JSON, flags or the environment.
type Values map[string]any

// untyped names the sound in errors raised before its type is known.
const untyped = "sound"

// Type returns the type key.
func (v Values) Type() (string, error) {
	raw, ok := v[KeyType]
	if !ok || raw == nil {
		return "", invalid(untyped, KeyType, "missing")
	}

	name, err := cast.ToStringE(raw)
	if err != nil || name == "" {
		return "", invalid(untyped, KeyType, "not a type name: %v", raw)
	}

	return name, nil
}

// Keys returns the keys in sorted order.
func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

func (v Values) has(key string) bool {
	raw, ok := v[key]
	return ok && raw != nil
}

func (v Values) floatParam(typ, key string) (float64, error) {
	if !v.has(key) {
		return 0, invalid(typ, key, "missing")
	}

	f, err := cast.ToFloat64E(v[key])
	if err != nil {
		return 0, invalid(typ, key, "not a number: %v", v[key])
	}

	return f, nil
}

func (v Values) floatParamOr(typ, key string, def float64) (float64, error) {
	if !v.has(key) {
		return def, nil
	}
	return v.floatParam(typ, key)
}

func (v Values) stringParam(typ, key string) (string, error) {
	if !v.has(key) {
		return "", invalid(typ, key, "missing")
	}

	s, err := cast.ToStringE(v[key])
	if err != nil {
		return "", invalid(typ, key, "not a string: %v", v[key])
	}

	return s, nil
}

func (v Values) intParam(typ, key string) (int, error) {
	if !v.has(key) {
		return 0, invalid(typ, key, "missing")
	}

	n, err := cast.ToIntE(v[key])
	if err != nil {
		return 0, invalid(typ, key, "not an integer: %v", v[key])
	}

	return n, nil
}

func (v Values) uintParam(typ, key string) (uint64, error) {
	if !v.has(key) {
		return 0, invalid(typ, key, "missing")
	}

	n, err := cast.ToUint64E(v[key])
	if err != nil {
		return 0, invalid(typ, key, "not an unsigned integer: %v", v[key])
	}

	return n, nil
}

// optionKeys are the optional keys that only some types accept.
var optionKeys = []string{KeyPhase, KeyDistribution, KeySeed}

// extraOptions turns the optional keys present in v into options. own lists
// the optional keys typ accepts; any other optional key is rejected.
func (v Values) extraOptions(typ string, own ...string) ([]Option, error) {
	for _, key := range optionKeys {
		if v.has(key) && !slices.Contains(own, key) {
			return nil, invalid(typ, key, "not a %s parameter", typ)
		}
	}

	var opts []Option

	if v.has(KeyPhase) {
		phase, err := v.floatParam(typ, KeyPhase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPhase(phase))
	}
	if v.has(KeyDistribution) {
		d, err := v.stringParam(typ, KeyDistribution)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDistribution(Distribution(d)))
	}
	if v.has(KeySeed) {
		seed, err := v.uintParam(typ, KeySeed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSeed(seed))
	}

	return opts, nil
}
