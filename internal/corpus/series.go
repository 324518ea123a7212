package corpus

import (
	"github.com/mfarouk/trend-corpus/internal/models"
)

// Series is a processed numeric sequence that can enumerate all of its
// contiguous fixed-length sub-windows. It wraps an immutable copy of the
// points it was built from.
type Series struct {
	points []float64
}

// NewSeries creates a Series from a slice of points. The slice is copied so
// later caller mutations cannot leak in.
func NewSeries(points []float64) Series {
	cp := make([]float64, len(points))
	copy(cp, points)
	return Series{points: cp}
}

// SeriesOf wraps a library entry's processed points as a Series
func SeriesOf(e *models.Entry) Series {
	return NewSeries(e.Points)
}

// Len returns the number of points in the series
func (s Series) Len() int {
	return len(s.points)
}

// Points returns a copy of the underlying points
func (s Series) Points() []float64 {
	cp := make([]float64, len(s.points))
	copy(cp, s.points)
	return cp
}

// WindowCount returns how many windows of the given length the series
// yields: max(0, len - length + 1)
func (s Series) WindowCount(length int) int {
	if length < 1 || length > len(s.points) {
		return 0
	}
	return len(s.points) - length + 1
}

// Windows returns an iterator over every contiguous sub-window of the given
// length, one per starting offset from 0 to len-length inclusive, advancing
// by one position each step. A length larger than the series yields no
// windows.
func (s Series) Windows(length int) *WindowIter {
	return &WindowIter{points: s.points, length: length}
}

// WindowIter walks the contiguous sub-windows of a Series. It is restartable
// via Reset.
type WindowIter struct {
	points []float64
	length int
	offset int
}

// Next returns the window at the current offset and advances, or false once
// the windows are exhausted. Each window is an independent copy.
func (it *WindowIter) Next() ([]float64, bool) {
	if it.length < 1 || it.offset+it.length > len(it.points) {
		return nil, false
	}
	win := make([]float64, it.length)
	copy(win, it.points[it.offset:it.offset+it.length])
	it.offset++
	return win, true
}

// Reset rewinds the iterator to the first window
func (it *WindowIter) Reset() {
	it.offset = 0
}
