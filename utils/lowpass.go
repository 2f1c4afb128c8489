// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// LowPassKernel returns a Blackman-windowed sinc FIR kernel with unity DC
// gain. cutoff is in cycles per sample (0 < cutoff < 0.5). An even taps
// count is bumped to the next odd number so the kernel has a center tap.
func LowPassKernel(cutoff float64, taps int) []float32 {
	if taps < 1 {
		taps = 1
	}
	if taps%2 == 0 {
		taps++
	}

	kernel := make([]float64, taps)
	mid := float64(taps-1) / 2

	var sum float64
	for i := range taps {
		x := float64(i) - mid

		h := 2 * cutoff
		if x != 0 {
			h = math.Sin(2*math.Pi*cutoff*x) / (math.Pi * x)
		}

		if taps > 1 {
			w := 0.42 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(taps-1)) +
				0.08*math.Cos(4*math.Pi*float64(i)/float64(taps-1))
			h *= w
		}

		kernel[i] = h
		sum += h
	}

	out := make([]float32, taps)
	for i, h := range kernel {
		out[i] = float32(h / sum)
	}

	return out
}
