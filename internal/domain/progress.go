package domain

// Trend is the qualitative direction of weight change relative to the
// starting weight.
type Trend string

const (
	// TrendOnTrack means the current weight is below the start weight.
	TrendOnTrack Trend = "on_track"
	// TrendOffTrack means the current weight is at or above the start weight.
	TrendOffTrack Trend = "off_track"
)

// ProgressSnapshot is the derived weight-loss progress for rendering.
// VisualPercent is clamped to [0, 100] and is the value any 0-100 bar
// should use; Percent is the raw ratio.
type ProgressSnapshot struct {
	LostSoFar     float64 `json:"lostSoFar"`
	Percent       float64 `json:"percent"`
	VisualPercent float64 `json:"visualPercent"`
	Trend         Trend   `json:"trend"`
}

// ComputeProgress derives loss-so-far and completion percentage from the
// profile boundary weights. A target at or above the start weight yields
// zero percent rather than a division by zero or a nonsensical ratio, and
// weight gain produces a negative LostSoFar with a visual percent clamped
// to zero so no bar ever renders with a negative width.
func ComputeProgress(start, target, current float64) ProgressSnapshot {
	totalToLose := start - target
	lost := start - current

	var pct float64
	if totalToLose > 0 {
		pct = lost / totalToLose * 100
	}

	trend := TrendOffTrack
	if current < start {
		trend = TrendOnTrack
	}

	return ProgressSnapshot{
		LostSoFar:     lost,
		Percent:       pct,
		VisualPercent: clamp(pct, 0, 100),
		Trend:         trend,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
