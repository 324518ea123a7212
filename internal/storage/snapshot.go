package storage

import (
	"encoding/json"
	"time"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/corpus"
	"github.com/mfarouk/trend-corpus/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Metrics for store operations
	storeOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_store_ops_total",
			Help: "Total number of corpus store operations",
		},
		[]string{"backend", "operation", "status"}, // status: "success" or "error"
	)

	storeOpLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "corpus_store_op_latency_seconds",
			Help:    "Corpus store operation latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		},
		[]string{"backend", "operation"},
	)
)

// observeOp records metrics for one store operation
func observeOp(backend, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	storeOpsTotal.WithLabelValues(backend, operation, status).Inc()
	storeOpLatency.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}

// decodeLibrary turns persisted snapshot bytes back into a library. Empty or
// corrupt data recovers to a fresh empty library built with the configured
// corpus parameters; this failure mode is logged but never surfaced.
func decodeLibrary(data []byte, cfg config.CorpusConfig, source string) (*corpus.Library, error) {
	if len(data) == 0 {
		return corpus.NewLibrary(cfg)
	}

	var snap corpus.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("Corpus snapshot is corrupt, starting fresh",
			logger.String("source", source),
			logger.ErrorField(err),
		)
		return corpus.NewLibrary(cfg)
	}

	lib, err := corpus.FromSnapshot(&snap)
	if err != nil {
		logger.Warn("Corpus snapshot could not be restored, starting fresh",
			logger.String("source", source),
			logger.ErrorField(err),
		)
		return corpus.NewLibrary(cfg)
	}

	return lib, nil
}

// encodeLibrary serializes a library's snapshot for persistence
func encodeLibrary(lib *corpus.Library) ([]byte, error) {
	return json.Marshal(lib.Snapshot())
}
