package app

import (
	"context"
	"math"
	"time"

	"slimcoach/internal/domain"
	"slimcoach/internal/i18n"
)

// WeeklyReport is the localized coaching summary for the trailing week.
type WeeklyReport struct {
	Adherence        domain.AdherenceSnapshot `json:"adherence"`
	Recommendation   domain.Recommendation    `json:"recommendation"`
	Title            string                   `json:"title"`
	Body             string                   `json:"body"`
	TotalLossKg      float64                  `json:"totalLossKg"`
	TotalLossPercent float64                  `json:"totalLossPercent"`
	Trend            domain.Trend             `json:"trend"`
}

// ReportService produces weekly coaching reports with localized text.
type ReportService struct {
	repo  domain.ProfileRepository
	texts i18n.Table
}

// NewReportService creates a ReportService rendering text from the given
// translation table.
func NewReportService(repo domain.ProfileRepository, texts i18n.Table) *ReportService {
	return &ReportService{repo: repo, texts: texts}
}

// Weekly builds the report for the seven days ending at now. The category
// text falls back to English when the requested language has no entry.
func (s *ReportService) Weekly(ctx context.Context, userID int64, lang i18n.Language, now time.Time) (*WeeklyReport, error) {
	state, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	adherence := domain.WindowStats(state.DailyHistory, now, domain.AdherenceWindowDays)
	rec := domain.Classify(adherence.DietPercent, adherence.WorkoutPercent)
	text := s.texts.Lookup(lang, rec.Category)

	current := state.CurrentWeight()
	loss := state.StartWeight - current
	lossPct := 0.0
	if state.StartWeight > 0 {
		lossPct = round1(loss / state.StartWeight * 100)
	}

	return &WeeklyReport{
		Adherence:        adherence,
		Recommendation:   rec,
		Title:            text.Title,
		Body:             text.Body,
		TotalLossKg:      round1(loss),
		TotalLossPercent: lossPct,
		Trend:            domain.ComputeProgress(state.StartWeight, state.TargetWeight, current).Trend,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
