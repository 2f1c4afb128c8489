// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audstim/audio"
)

// WAVE format tags.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// MaxChannels is the widest channel layout the decoder accepts.
const MaxChannels = 8

type wavSource struct {
	dec        *gowav.Decoder
	buf        *goaudio.IntBuffer
	sampleRate int
	channels   int
	bitDepth   int
	float      bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

// BitDepth reports the stored sample width.
func (s *wavSource) BitDepth() int { return s.bitDepth }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("wav: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	if s.float {
		for i, v := range s.buf.Data[:n] {
			dst[i] = math.Float32frombits(uint32(v))
		}
		return n, nil
	}

	return audio.IntToFloat32(dst, s.buf.Data[:n], s.bitDepth)
}

// Decoder reads RIFF/WAVE files holding 16 or 32 bit integer PCM or
// 32 bit IEEE float samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("wav: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	src := &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
	}

	switch {
	case src.sampleRate <= 0:
		return nil, ErrInvalidRate
	case src.channels > MaxChannels:
		return nil, fmt.Errorf("%w: %w: %d", audio.ErrUnsupportedFormat, ErrTooManyChans, src.channels)
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
		if src.bitDepth != 16 && src.bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit integer PCM", audio.ErrUnsupportedFormat, src.bitDepth)
		}
	case formatIEEEFloat:
		if src.bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float PCM", audio.ErrUnsupportedFormat, src.bitDepth)
		}
		src.float = true
	default:
		return nil, fmt.Errorf("%w: WAVE format tag %#x", audio.ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}

	src.buf = &goaudio.IntBuffer{
		Format:         dec.Format(),
		SourceBitDepth: src.bitDepth,
		Data:           make([]int, 4096),
	}

	return src, nil
}
