// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/audstim/utils"
)

const (
	// antiAliasCutoff is the pass band edge relative to the lower of the two
	// Nyquist rates.
	antiAliasCutoff = 0.95
	// sincZeroCrossings is how many kernel lobes lie on each side of an
	// output sample.
	sincZeroCrossings = 32
	// sincPhases is the number of kernel table entries per input sample.
	sincPhases = 256
)

// ResampledLen is the exact output length Resample produces:
// round(n * dstRate / srcRate).
func ResampledLen(n, srcRate, dstRate int) int {
	return int(math.Round(float64(n) * float64(dstRate) / float64(srcRate)))
}

// Resample converts a mono buffer recorded at srcRate to dstRate and returns
// a new buffer of ResampledLen samples. Output sample k is the band-limited
// value at source position k*srcRate/dstRate, computed with a windowed-sinc
// kernel whose cutoff sits just below the lower Nyquist rate, so
// downsampling is filtered in the same step. Samples past the edges repeat
// the edge value. Equal rates return a copy.
func Resample(samples []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, srcRate, dstRate)
	}

	if srcRate == dstRate || len(samples) == 0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out, nil
	}

	// cutoff is in cycles per input sample.
	cutoff := antiAliasCutoff * 0.5 * math.Min(1, float64(dstRate)/float64(srcRate))
	half := sincZeroCrossings / (2 * cutoff)

	// The kernel is tabulated at sincPhases points per input sample and
	// read back with linear interpolation.
	mid := int(math.Ceil(half * sincPhases))
	kernel := utils.LowPassKernel(cutoff/sincPhases, 2*mid+1)

	last := len(samples) - 1
	at := func(i int) float64 {
		return float64(samples[min(max(i, 0), last)])
	}

	ratio := float64(srcRate) / float64(dstRate)
	out := make([]float32, ResampledLen(len(samples), srcRate, dstRate))

	for k := range out {
		pos := float64(k) * ratio

		var acc, weight float64
		for i := int(math.Ceil(pos - half)); i <= int(math.Floor(pos+half)); i++ {
			d := (float64(i)-pos)*sincPhases + float64(mid)
			j := int(d)
			if j < 0 || j >= len(kernel) {
				continue
			}

			w := float64(kernel[j])
			if j+1 < len(kernel) {
				w += (float64(kernel[j+1]) - w) * (d - float64(j))
			}

			acc += w * at(i)
			weight += w
		}

		if weight != 0 {
			out[k] = float32(acc / weight)
		}
	}

	return out, nil
}
