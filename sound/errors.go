// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"

	"github.com/ik5/audstim/audio"
	"github.com/ik5/audstim/backend"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrSourceUnavailable    = errors.New("sound source unavailable")
	ErrUnknownSoundType     = errors.New("unknown sound type")
	ErrUnsupportedOperation = errors.New("operation not supported by the backend")

	// Shared with the packages that raise them.
	ErrUnsupportedFormat   = audio.ErrUnsupportedFormat
	ErrBackendUnconfigured = backend.ErrBackendUnconfigured
)

// ParamError reports a parameter that stopped a sound from being built.
type ParamError struct {
	Type  string // requested sound type
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %v", e.Type, e.Param, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

func invalid(typ, param, format string, args ...any) error {
	return &ParamError{
		Type:  typ,
		Param: param,
		Err:   fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...),
	}
}
