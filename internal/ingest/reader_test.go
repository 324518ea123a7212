package ingest

import (
	"strings"
	"testing"

	"github.com/mfarouk/trend-corpus/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints_OnePointPerLine(t *testing.T) {
	points, err := ReadPoints(strings.NewReader("1\n2.5\n-3\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3, 0}, points)
}

func TestReadPoints_SkipsBlankLines(t *testing.T) {
	points, err := ReadPoints(strings.NewReader("1\n\n  \n2\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, points)
}

func TestReadPoints_TrimsWhitespace(t *testing.T) {
	points, err := ReadPoints(strings.NewReader("  4.2 \n\t7\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{4.2, 7}, points)
}

func TestReadPoints_RejectsNonNumericLine(t *testing.T) {
	_, err := ReadPoints(strings.NewReader("1\ntwo\n3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidPoint)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadPoints_EmptyInput(t *testing.T) {
	points, err := ReadPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)
}
