// SPDX-License-Identifier: EPL-2.0

package backend

import "errors"

var (
	ErrUnknownBackend      = errors.New("unknown audio backend")
	ErrBackendUnconfigured = errors.New("no audio backend configured")
	ErrInvalidConfig       = errors.New("invalid backend configuration")
	ErrKindMismatch        = errors.New("output does not match the backend kind")
	ErrRateMismatch        = errors.New("node sample rate differs from the engine rate")
	ErrChannelMismatch     = errors.New("node must be mono")
	ErrBlockSize           = errors.New("block length differs from the engine block size")
	ErrNilNode             = errors.New("nil node")
)
