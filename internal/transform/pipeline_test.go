package transform

import (
	"math"
	"testing"

	"github.com/mfarouk/trend-corpus/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.NSmooth = 0

	_, err := NewPipeline(cfg)
	require.Error(t, err)

	cfg = testConfig()
	cfg.Alpha = -1
	_, err = NewPipeline(cfg)
	require.Error(t, err)
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	cfg := testConfig()
	cfg.Alpha = 1.0 // keep deltas exact

	p, err := NewPipeline(cfg)
	require.NoError(t, err)

	out, err := p.Run([]float64{1, 2, 3, 2, 1})
	require.NoError(t, err)

	// spike:  [1,1,1,1,1]
	// smooth: [1,2,3,4,5]  (window of 80 never fills)
	// unit:   [0.2,0.4,0.6,0.8,1.0]
	// log:    log10(pt+1)
	expected := []float64{
		math.Log10(1.2),
		math.Log10(1.4),
		math.Log10(1.6),
		math.Log10(1.8),
		math.Log10(2.0),
	}
	require.Len(t, out, 5)
	for i := range expected {
		assert.InDelta(t, expected[i], out[i], 1e-12, "point %d", i)
	}
}

func TestPipeline_Run_EmptySeries(t *testing.T) {
	p, err := NewPipeline(testConfig())
	require.NoError(t, err)

	_, err = p.Run(nil)
	assert.ErrorIs(t, err, models.ErrEmptySeries)

	_, err = p.Run([]float64{})
	assert.ErrorIs(t, err, models.ErrEmptySeries)
}

func TestPipeline_Run_PreservesLengthAndInput(t *testing.T) {
	p, err := NewPipeline(testConfig())
	require.NoError(t, err)

	in := []float64{4, 8, 15, 16, 23, 42}
	orig := append([]float64(nil), in...)

	out, err := p.Run(in)
	require.NoError(t, err)
	assert.Len(t, out, len(in))
	assert.Equal(t, orig, in)
}

func TestPipeline_Run_NegativeInputStaysInLogDomain(t *testing.T) {
	// Spike normalization emits |delta|^alpha, so the later stages only
	// ever see non-negative values even for negative raw input.
	p, err := NewPipeline(testConfig())
	require.NoError(t, err)

	out, err := p.Run([]float64{-10, -50, -2, -80})
	require.NoError(t, err)
	for i, pt := range out {
		assert.GreaterOrEqual(t, pt, 0.0, "point %d", i)
	}
}
