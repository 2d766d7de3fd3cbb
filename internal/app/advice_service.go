package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"slimcoach/internal/domain"
	"slimcoach/internal/i18n"
	"slimcoach/internal/metrics"
)

const defaultAdviceTimeout = 30 * time.Second

// AdviceService wraps the advice provider with profile context and localized
// degradation on failure.
type AdviceService struct {
	client  domain.AdviceClient
	metrics *metrics.Manager
	timeout time.Duration
}

// NewAdviceService creates an AdviceService. A non-positive timeout selects
// the default.
func NewAdviceService(client domain.AdviceClient, m *metrics.Manager, timeout time.Duration) *AdviceService {
	if timeout <= 0 {
		timeout = defaultAdviceTimeout
	}
	return &AdviceService{client: client, metrics: m, timeout: timeout}
}

// Ask requests free-text advice for the user's question. It never returns an
// error to the caller: quota exhaustion and provider failures each degrade
// to a fixed fallback string in the requested language.
func (s *AdviceService) Ask(ctx context.Context, state *domain.ProfileState, lang i18n.Language, query string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.GenerateAdvice(ctx, systemInstruction(lang, state), query)
	switch {
	case err == nil:
		s.metrics.IncAdvice("ok")
		return text
	case errors.Is(err, domain.ErrAdviceQuota):
		s.metrics.IncAdvice("quota")
		log.Warnf("advice quota exhausted for user %d", state.UserID)
		return i18n.AdviceQuotaFallback(lang)
	default:
		s.metrics.IncAdvice("error")
		log.Errorf("advice call failed for user %d: %s", state.UserID, err)
		return i18n.AdviceErrorFallback(lang)
	}
}

func systemInstruction(lang i18n.Language, state *domain.ProfileState) string {
	answerIn := "Answer in English."
	if lang == i18n.Amharic {
		answerIn = "Answer in Amharic."
	}
	return fmt.Sprintf(
		"You are a supportive weight loss coach. %s Be encouraging, like a kind doctor. Keep answers concise (under 100 words) and practical. %s",
		answerIn, contextSummary(state),
	)
}

// contextSummary describes the profile for the advice prompt. It never
// includes the user's name or free-form history.
func contextSummary(state *domain.ProfileState) string {
	return fmt.Sprintf("Context about the user: %d years old, currently %.1fkg, %.0fcm tall. Goal weight: %.1fkg.",
		state.Age, state.CurrentWeight(), state.HeightCm, state.TargetWeight)
}
