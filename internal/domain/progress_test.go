package domain_test

import (
	"math"
	"testing"

	"slimcoach/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name                   string
		start, target, current float64
		wantLost               float64
		wantVisual             float64
		wantTrend              domain.Trend
	}{
		{"halfway there", 80, 60, 70, 10, 50, domain.TrendOnTrack},
		{"nothing logged yet", 80, 60, 80, 0, 0, domain.TrendOffTrack},
		{"goal reached", 80, 60, 60, 20, 100, domain.TrendOnTrack},
		{"past the goal clamps at 100", 80, 60, 55, 25, 100, domain.TrendOnTrack},
		{"weight gain clamps at 0", 80, 60, 85, -5, 0, domain.TrendOffTrack},
		{"target equals start", 80, 80, 75, 5, 0, domain.TrendOnTrack},
		{"target above start", 80, 90, 75, 5, 0, domain.TrendOnTrack},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ComputeProgress(tc.start, tc.target, tc.current)
			if !almostEqual(got.LostSoFar, tc.wantLost, 0.001) {
				t.Errorf("LostSoFar = %v; want %v", got.LostSoFar, tc.wantLost)
			}
			if !almostEqual(got.VisualPercent, tc.wantVisual, 0.001) {
				t.Errorf("VisualPercent = %v; want %v", got.VisualPercent, tc.wantVisual)
			}
			if got.Trend != tc.wantTrend {
				t.Errorf("Trend = %v; want %v", got.Trend, tc.wantTrend)
			}
		})
	}
}

func TestComputeProgress_RawPercentFormula(t *testing.T) {
	// For start > target the raw percent must follow
	// (start-current)/(start-target)*100 even outside [0, 100].
	got := domain.ComputeProgress(90, 70, 95)
	if !almostEqual(got.Percent, -25, 0.001) {
		t.Errorf("Percent = %v; want -25", got.Percent)
	}
	if got.VisualPercent != 0 {
		t.Errorf("VisualPercent = %v; want 0", got.VisualPercent)
	}
}
