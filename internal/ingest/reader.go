package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mfarouk/trend-corpus/internal/models"
)

// ReadPoints reads a raw series from r, one numeric point per line. Blank
// lines are skipped; a line that does not parse as a number is an error, the
// pipeline contract is numeric points.
func ReadPoints(r io.Reader) ([]float64, error) {
	var points []float64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		pt, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", models.ErrInvalidPoint, line, text)
		}
		points = append(points, pt)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series: %w", err)
	}

	return points, nil
}
