package models

import (
	"time"
)

// Label identifies which collection of a library a series is filed under
type Label string

const (
	// LabelTrend marks a series taken from a known trending signal
	LabelTrend Label = "trend"
	// LabelNonTrend marks a series taken from a known non-trending signal
	LabelNonTrend Label = "non_trend"
)

// String returns the label name
func (l Label) String() string {
	return string(l)
}

// LabelFor returns the label for a boolean trend flag
func LabelFor(isTrend bool) Label {
	if isTrend {
		return LabelTrend
	}
	return LabelNonTrend
}

// Entry is one member of a corpus: a series that has been run through the
// transformation pipeline, plus the bookkeeping needed to merge corpora
// across runs.
type Entry struct {
	ID      string    `json:"id"`
	Label   Label     `json:"label"`
	AddedAt time.Time `json:"added_at"`
	Points  []float64 `json:"points"`
}

// Validate validates an Entry
func (e *Entry) Validate() error {
	if e.ID == "" {
		return ErrInvalidEntry
	}
	if e.Label != LabelTrend && e.Label != LabelNonTrend {
		return ErrInvalidEntry
	}
	if len(e.Points) == 0 {
		return ErrEmptySeries
	}
	return nil
}
