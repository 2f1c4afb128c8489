// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audstim/utils"
)

// Resampler streams from src at a new sample rate using cubic interpolation.
// It works on interleaved samples and preserves the channel count. When
// downsampling, input frames pass through a one-pole low-pass first.
//
// Output frame k is taken at source position k*srcRate/dstRate and the
// stream ends once that position passes the last source frame, so a source
// of N frames yields about N*dstRate/srcRate frames. Use Resample when an
// exact buffer length matters.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// Sliding window around source frame i: i-1, i, i+1, i+2.
	frames [4][]float32
	// pad counts window slots past the end of the source, filled by
	// repeating the last real frame.
	pad    int
	primed bool

	// Fractional position between frames[1] and frames[2].
	pos float64

	srcBuf []float32
	eof    bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
	filterReady bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       float64(src.SampleRate()) / float64(dstRate),
		channels:    channels,
		srcBuf:      make([]float32, channels),
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	r.useFilter = r.ratio > 1.0

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads the next source frame into dst, or repeats prev when the
// source is exhausted. got reports whether a source frame was read.
func (r *Resampler) readFrame(dst, prev []float32) (got bool, err error) {
	if !r.eof {
		n, err := r.src.ReadSamples(r.srcBuf)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == r.channels {
			copy(dst, r.srcBuf)
			r.filter(dst)
			return true, nil
		}
		r.eof = true
	}

	copy(dst, prev)

	return false, nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.useFilter {
		return
	}

	if !r.filterReady {
		// Seed with the first frame to avoid a warm-up ramp.
		copy(r.filterState, frame)
		r.filterReady = true
		return
	}

	for c := range r.channels {
		frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

func (r *Resampler) prime() error {
	r.primed = true

	got, err := r.readFrame(r.frames[1], r.frames[1])
	if err != nil {
		return err
	}
	if !got {
		r.pad = len(r.frames)
		return io.EOF
	}
	copy(r.frames[0], r.frames[1])

	for i := 2; i < len(r.frames); i++ {
		got, err := r.readFrame(r.frames[i], r.frames[i-1])
		if err != nil {
			return err
		}
		if !got {
			r.pad++
		}
	}

	return nil
}

// advance moves the window forward by one source frame.
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])

	got, err := r.readFrame(r.frames[3], r.frames[2])
	if err != nil {
		return err
	}
	if !got {
		r.pad++
	}

	// frames[1] is past the source end once all of slots 1..3 are padding.
	if r.pad >= 3 {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of r.Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}
	if r.pad >= 3 {
		return 0, io.EOF
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// The last real frame has no successor to interpolate towards.
		if r.pad >= 2 && r.pos > 0 {
			r.pad = 3
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
