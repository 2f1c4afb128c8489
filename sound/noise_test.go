// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audstim/backend"
)

func TestNoise_Bipolar(t *testing.T) {
	t.Parallel()

	n, err := NewNoise(1000, 0.2, streaming(48000, 1024), WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, Bipolar, n.Distribution())

	samples := n.Samples()
	require.Len(t, samples, 48000)

	var sum float64
	var sawNegative bool
	for _, s := range samples {
		assert.GreaterOrEqual(t, s, float32(-0.2))
		assert.Less(t, s, float32(0.2))
		sawNegative = sawNegative || s < 0
		sum += float64(s)
	}

	assert.True(t, sawNegative)
	// Mean of 48000 uniform draws on [-0.2, 0.2) is within a few 1e-3 of zero.
	assert.InDelta(t, 0, sum/float64(len(samples)), 0.005)
}

func TestNoise_Unipolar(t *testing.T) {
	t.Parallel()

	n, err := NewNoise(500, 0.1, nodeGraph(44100), WithDistribution(Unipolar), WithSeed(1))
	require.NoError(t, err)

	var sum float64
	for _, s := range n.Samples() {
		assert.GreaterOrEqual(t, s, float32(0))
		assert.Less(t, s, float32(0.1))
		sum += float64(s)
	}

	assert.InDelta(t, 0.05, sum/float64(len(n.Samples())), 0.005)
}

func TestNoise_Seed(t *testing.T) {
	t.Parallel()

	cfg := streaming(8000, 128)

	a, err := NewNoise(100, 0.01, cfg, WithSeed(42))
	require.NoError(t, err)
	b, err := NewNoise(100, 0.01, cfg, WithSeed(42))
	require.NoError(t, err)
	c, err := NewNoise(100, 0.01, cfg, WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a.Samples(), b.Samples())
	assert.NotEqual(t, a.Samples(), c.Samples())

	seed, ok := a.Seed()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), seed)
	assert.Equal(t, uint64(42), a.Values()[KeySeed])
}

func TestNoise_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewNoise(100, 0.01, backend.Config{}, WithDistribution("pink"))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.ErrorContains(t, err, KeyDistribution)

	_, err = NewNoise(0, 0.01, backend.Config{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNoise_NoBackend(t *testing.T) {
	t.Parallel()

	n, err := NewNoise(300, 0.01, backend.Config{})
	require.NoError(t, err)

	assert.InDelta(t, 300.0, n.Duration(), 0)
	assert.Nil(t, n.Samples())
	_, ok := n.Seed()
	assert.False(t, ok)
	assert.Equal(t, []Param{{KeyDuration, 300.0}, {KeyAmplitude, 0.01}}, n.Params())
}
