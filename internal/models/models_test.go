package models

import (
	"testing"
	"time"
)

func TestLabelFor(t *testing.T) {
	if LabelFor(true) != LabelTrend {
		t.Errorf("Expected %s, got %s", LabelTrend, LabelFor(true))
	}
	if LabelFor(false) != LabelNonTrend {
		t.Errorf("Expected %s, got %s", LabelNonTrend, LabelFor(false))
	}
}

func TestEntry_Validate(t *testing.T) {
	valid := &Entry{
		ID:      "e1",
		Label:   LabelTrend,
		AddedAt: time.Now(),
		Points:  []float64{0.1, 0.2},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid entry failed validation: %v", err)
	}

	tests := []struct {
		name  string
		entry Entry
	}{
		{"missing ID", Entry{Label: LabelTrend, Points: []float64{1}}},
		{"unknown label", Entry{ID: "e2", Label: "sideways", Points: []float64{1}}},
		{"empty points", Entry{ID: "e3", Label: LabelNonTrend}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.entry.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
