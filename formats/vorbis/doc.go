// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through
// github.com/jfreymuth/oggvorbis. Samples come out of the codec already
// normalized, so no scaling is applied.
package vorbis
