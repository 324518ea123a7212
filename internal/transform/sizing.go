package transform

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/models"
)

// Sizing extracts the fixed-length reference window from an already-processed
// reference series. It is not part of the default pipeline.
//
// Trend series keep the ReferenceLength points ending immediately before the
// series maximum (first occurrence on ties). A maximum closer to the start
// than ReferenceLength is an error: a trend window is only meaningful with a
// full run-up before the peak, so the slice is never clamped or wrapped.
//
// Non-trend series keep a window starting at a uniformly random offset.
// The random source is injected so callers and tests control seeding; a nil
// rng falls back to a time-seeded source.
func Sizing(series []float64, isTrend bool, cfg config.CorpusConfig, rng *rand.Rand) ([]float64, error) {
	if len(series) == 0 {
		return nil, models.ErrEmptySeries
	}

	r := cfg.ReferenceLength

	if isTrend {
		maxIdx := 0
		for i, pt := range series {
			if pt > series[maxIdx] {
				maxIdx = i
			}
		}
		if maxIdx < r {
			return nil, fmt.Errorf("%w: need %d points before the maximum at index %d",
				models.ErrSeriesTooShort, r, maxIdx)
		}
		return copyWindow(series, maxIdx-r, r), nil
	}

	if len(series) < r {
		return nil, fmt.Errorf("%w: series has %d points, reference length is %d",
			models.ErrSeriesTooShort, len(series), r)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	start := rng.Intn(len(series) - r + 1)
	return copyWindow(series, start, r), nil
}

func copyWindow(series []float64, start, length int) []float64 {
	out := make([]float64, length)
	copy(out, series[start:start+length])
	return out
}
