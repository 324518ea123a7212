package transform

import (
	"fmt"
	"math"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/models"
)

// Stage is a single transformation step. Stages are pure: they never mutate
// the input slice and always return a freshly allocated series.
type Stage func(series []float64, cfg config.CorpusConfig) ([]float64, error)

// SpikeNormalize replaces each point with the magnitude of its difference
// from the previous raw point, raised to Alpha. The previous point starts at
// zero. Points that are exactly zero stay zero. With Alpha > 1 larger deltas
// (spikes) are amplified super-linearly.
func SpikeNormalize(series []float64, cfg config.CorpusConfig) ([]float64, error) {
	out := make([]float64, len(series))
	prev := 0.0
	for i, pt := range series {
		if pt != 0 {
			out[i] = math.Pow(math.Abs(pt-prev), cfg.Alpha)
		}
		prev = pt
	}
	return out, nil
}

// Smooth emits the moving sum over a trailing window of width NSmooth.
// This is a sum, not an average: changing the window width rescales the
// output magnitude.
func Smooth(series []float64, cfg config.CorpusConfig) ([]float64, error) {
	out := make([]float64, 0, len(series))
	window := make([]float64, 0, cfg.NSmooth)

	for _, pt := range series {
		window = append(window, pt)

		// Remove oldest once we exceed the window width
		if len(window) > cfg.NSmooth {
			copy(window, window[1:])
			window = window[:len(window)-1]
		}

		var sum float64
		for _, v := range window {
			sum += v
		}
		out = append(out, sum)
	}

	return out, nil
}

// UnitNormalize divides every point by the total series length. This offsets
// the magnitude inflation introduced by the moving-sum smoothing step; the
// divisor is deliberately the series length, not the window width.
func UnitNormalize(series []float64, cfg config.CorpusConfig) ([]float64, error) {
	size := float64(len(series))
	out := make([]float64, len(series))
	for i, pt := range series {
		out[i] = pt / size
	}
	return out, nil
}

// LogScale applies log10(pt + 1) elementwise. Upstream stages only produce
// non-negative values, so an argument at or below -1 means the pipeline was
// fed malformed input and is reported rather than turned into a NaN.
func LogScale(series []float64, cfg config.CorpusConfig) ([]float64, error) {
	out := make([]float64, len(series))
	for i, pt := range series {
		if pt <= -1 {
			return nil, fmt.Errorf("%w: point %f at index %d", models.ErrLogDomain, pt, i)
		}
		out[i] = math.Log10(pt + 1)
	}
	return out, nil
}
