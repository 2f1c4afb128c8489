// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile   = errors.New("not a WAV file")
	ErrMissingData  = errors.New("WAV file has no data chunk")
	ErrInvalidRate  = errors.New("WAV sample rate must be positive")
	ErrTooManyChans = errors.New("too many WAV channels")
)
