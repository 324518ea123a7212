package corpus

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/models"
	"github.com/mfarouk/trend-corpus/internal/transform"
	"github.com/mfarouk/trend-corpus/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Metrics for library operations
	librarySeriesAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_library_series_added_total",
			Help: "Total number of series added to a library",
		},
		[]string{"label"},
	)

	libraryCombineTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_library_combine_total",
			Help: "Total number of library combine attempts",
		},
		[]string{"status"}, // "success" or "collision"
	)
)

// Library is the corpus of labeled, pipeline-processed series accumulated
// across runs. It holds two insertion-ordered collections, one per label,
// plus the corpus parameters every entry was built with. A Library is not
// safe for concurrent use; the system assumes a single caller.
type Library struct {
	cfg       config.CorpusConfig
	pipeline  *transform.Pipeline
	trends    []*models.Entry
	nonTrends []*models.Entry
}

// NewLibrary creates an empty library with the given corpus parameters
func NewLibrary(cfg config.CorpusConfig) (*Library, error) {
	pipeline, err := transform.NewPipeline(cfg)
	if err != nil {
		return nil, err
	}

	return &Library{
		cfg:      cfg,
		pipeline: pipeline,
	}, nil
}

// Config returns the corpus parameters the library was built with
func (l *Library) Config() config.CorpusConfig {
	return l.cfg
}

// AddSeries runs a raw series through the transformation pipeline and files
// the result under the trend or non-trend label. The label is a per-call
// parameter, never stored configuration.
func (l *Library) AddSeries(raw []float64, isTrend bool) error {
	processed, err := l.pipeline.Run(raw)
	if err != nil {
		return fmt.Errorf("failed to transform series: %w", err)
	}

	entry := &models.Entry{
		ID:      uuid.NewString(),
		Label:   models.LabelFor(isTrend),
		AddedAt: time.Now().UTC(),
		Points:  processed,
	}

	if isTrend {
		l.trends = append(l.trends, entry)
	} else {
		l.nonTrends = append(l.nonTrends, entry)
	}

	librarySeriesAddedTotal.WithLabelValues(entry.Label.String()).Inc()
	logger.Debug("Added series to library",
		logger.String("entry_id", entry.ID),
		logger.String("label", entry.Label.String()),
		logger.Int("points", len(entry.Points)),
	)

	return nil
}

// Trends returns the trend-labeled entries in insertion order
func (l *Library) Trends() []*models.Entry {
	return append([]*models.Entry(nil), l.trends...)
}

// NonTrends returns the non-trend-labeled entries in insertion order
func (l *Library) NonTrends() []*models.Entry {
	return append([]*models.Entry(nil), l.nonTrends...)
}

// Combine reconciles another library into this one. For each label, the
// other library's entries are adopted only if this library holds none for
// that label; two libraries that both hold entries for the same label cannot
// be merged, because picking either list would lose data. In that case
// ErrLabelCollision is returned and nothing is mutated. Combining with an
// empty library is a no-op.
func (l *Library) Combine(other *Library) error {
	if other == nil {
		return nil
	}

	// Check both labels before adopting anything
	if len(other.trends) > 0 && len(l.trends) > 0 {
		libraryCombineTotal.WithLabelValues("collision").Inc()
		return fmt.Errorf("%w: %s", models.ErrLabelCollision, models.LabelTrend)
	}
	if len(other.nonTrends) > 0 && len(l.nonTrends) > 0 {
		libraryCombineTotal.WithLabelValues("collision").Inc()
		return fmt.Errorf("%w: %s", models.ErrLabelCollision, models.LabelNonTrend)
	}

	if len(other.trends) > 0 {
		l.trends = other.trends
	}
	if len(other.nonTrends) > 0 {
		l.nonTrends = other.nonTrends
	}

	libraryCombineTotal.WithLabelValues("success").Inc()
	return nil
}

// Snapshot is the JSON-serializable full state of a library, handed to the
// persistence layer.
type Snapshot struct {
	Config    config.CorpusConfig `json:"config"`
	Trends    []*models.Entry     `json:"trends"`
	NonTrends []*models.Entry     `json:"non_trends"`
}

// Snapshot captures the library's full state
func (l *Library) Snapshot() *Snapshot {
	return &Snapshot{
		Config:    l.cfg,
		Trends:    l.Trends(),
		NonTrends: l.NonTrends(),
	}
}

// FromSnapshot rebuilds a library from persisted state
func FromSnapshot(snap *Snapshot) (*Library, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}

	lib, err := NewLibrary(snap.Config)
	if err != nil {
		return nil, fmt.Errorf("snapshot carries invalid config: %w", err)
	}

	lib.trends = append(lib.trends, snap.Trends...)
	lib.nonTrends = append(lib.nonTrends, snap.NonTrends...)
	return lib, nil
}
