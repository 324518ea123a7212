package transform

import (
	"fmt"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Metrics for pipeline runs
	pipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_pipeline_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"status"}, // "success" or "error"
	)

	pipelinePointsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "corpus_pipeline_points_total",
			Help: "Total number of raw points pushed through the pipeline",
		},
	)
)

// Pipeline is the fixed, ordered list of transformation stages applied to
// every raw series before it enters a library: spike normalization,
// smoothing, unit normalization, logarithmic scaling. All four stages are
// length-preserving.
type Pipeline struct {
	cfg    config.CorpusConfig
	stages []Stage
}

// NewPipeline creates a pipeline with the given corpus parameters
func NewPipeline(cfg config.CorpusConfig) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus config: %w", err)
	}

	return &Pipeline{
		cfg: cfg,
		stages: []Stage{
			SpikeNormalize,
			Smooth,
			UnitNormalize,
			LogScale,
		},
	}, nil
}

// Config returns the corpus parameters the pipeline was built with
func (p *Pipeline) Config() config.CorpusConfig {
	return p.cfg
}

// Run pushes a raw series through every stage in order and returns the
// processed series. The input slice is never modified.
func (p *Pipeline) Run(series []float64) ([]float64, error) {
	if len(series) == 0 {
		return nil, models.ErrEmptySeries
	}

	out := make([]float64, len(series))
	copy(out, series)

	for _, stage := range p.stages {
		next, err := stage(out, p.cfg)
		if err != nil {
			pipelineRunsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		out = next
	}

	pipelineRunsTotal.WithLabelValues("success").Inc()
	pipelinePointsTotal.Add(float64(len(series)))
	return out, nil
}
