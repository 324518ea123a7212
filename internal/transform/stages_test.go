package transform

import (
	"math"
	"testing"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.CorpusConfig {
	return config.CorpusConfig{
		ReferenceLength: 210,
		NSmooth:         80,
		Alpha:           1.2,
	}
}

func TestSpikeNormalize_AbsoluteDeltas(t *testing.T) {
	cfg := testConfig()
	cfg.Alpha = 1.0

	out, err := SpikeNormalize([]float64{1, 2, 3, 2, 1}, cfg)
	require.NoError(t, err)

	// First point diffs against an implicit previous point of zero
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, out)
}

func TestSpikeNormalize_ZeroPointStaysZero(t *testing.T) {
	cfg := testConfig()
	cfg.Alpha = 2.0

	out, err := SpikeNormalize([]float64{5, 0, 3}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 0.0, out[1])
	// The previous point still advances through the zero
	assert.Equal(t, 9.0, out[2])
}

func TestSpikeNormalize_AlphaAmplifiesSpikes(t *testing.T) {
	cfg := testConfig()
	cfg.Alpha = 2.0

	out, err := SpikeNormalize([]float64{1, 4}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1.0, out[0])
	assert.Equal(t, 9.0, out[1]) // |4-1|^2
}

func TestSpikeNormalize_OutputNonNegative(t *testing.T) {
	cfg := testConfig()

	out, err := SpikeNormalize([]float64{-3, 7, -2, 0, 5, 5}, cfg)
	require.NoError(t, err)

	assert.Len(t, out, 6)
	for i, pt := range out {
		assert.GreaterOrEqual(t, pt, 0.0, "point %d", i)
	}
}

func TestSmooth_CumulativeWhileWindowFills(t *testing.T) {
	cfg := testConfig()
	cfg.NSmooth = 80

	out, err := Smooth([]float64{1, 1, 1, 1, 1}, cfg)
	require.NoError(t, err)

	// Window never fills, so each point is the running total
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, out)
}

func TestSmooth_DropsOldestBeyondWindow(t *testing.T) {
	cfg := testConfig()
	cfg.NSmooth = 2

	out, err := Smooth([]float64{1, 2, 3, 4}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3, 5, 7}, out)
}

func TestSmooth_PreservesLength(t *testing.T) {
	cfg := testConfig()
	cfg.NSmooth = 3

	in := []float64{2, 4, 6, 8, 10, 12, 14}
	out, err := Smooth(in, cfg)
	require.NoError(t, err)
	assert.Len(t, out, len(in))
}

func TestUnitNormalize_DividesByLength(t *testing.T) {
	out, err := UnitNormalize([]float64{1, 2, 3, 4, 5}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.2, 0.4, 0.6, 0.8, 1.0}, out)
}

func TestUnitNormalize_SumScalesByLength(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	var sumIn float64
	for _, pt := range in {
		sumIn += pt
	}

	out, err := UnitNormalize(in, testConfig())
	require.NoError(t, err)

	var sumOut float64
	for _, pt := range out {
		sumOut += pt
	}
	assert.InDelta(t, sumIn/float64(len(in)), sumOut, 1e-12)
}

func TestLogScale_Log10PlusOne(t *testing.T) {
	out, err := LogScale([]float64{0, 9, 99}, testConfig())
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, 0.0, out[0])
	assert.InDelta(t, 1.0, out[1], 1e-12)
	assert.InDelta(t, 2.0, out[2], 1e-12)
}

func TestLogScale_NonNegativeForNonNegativeInput(t *testing.T) {
	in := []float64{0, 0.5, 2, 1000}
	out, err := LogScale(in, testConfig())
	require.NoError(t, err)

	for i, pt := range out {
		assert.GreaterOrEqual(t, pt, 0.0, "point %d", i)
		assert.InDelta(t, math.Log10(in[i]+1), pt, 1e-12)
	}
}

func TestLogScale_RejectsOutOfDomain(t *testing.T) {
	_, err := LogScale([]float64{0.5, -1, 0.5}, testConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLogDomain)

	_, err = LogScale([]float64{-2.5}, testConfig())
	assert.ErrorIs(t, err, models.ErrLogDomain)
}

func TestStages_DoNotMutateInput(t *testing.T) {
	cfg := testConfig()
	in := []float64{1, 2, 3, 2, 1}
	orig := append([]float64(nil), in...)

	for _, stage := range []Stage{SpikeNormalize, Smooth, UnitNormalize, LogScale} {
		_, err := stage(in, cfg)
		require.NoError(t, err)
		assert.Equal(t, orig, in)
	}
}
