package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"slimcoach/internal/domain"
	"slimcoach/internal/i18n"
	"slimcoach/internal/metrics"
)

type mockAdviceClient struct {
	generateFn func(ctx context.Context, systemInstruction, query string) (string, error)
}

func (m *mockAdviceClient) GenerateAdvice(ctx context.Context, systemInstruction, query string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, systemInstruction, query)
	}
	return "", domain.ErrAdviceUnavailable
}

func TestAdviceService_Ask_Success(t *testing.T) {
	var gotInstruction, gotQuery string
	client := &mockAdviceClient{
		generateFn: func(ctx context.Context, systemInstruction, query string) (string, error) {
			gotInstruction = systemInstruction
			gotQuery = query
			return "Eat more vegetables.", nil
		},
	}

	svc := NewAdviceService(client, metrics.NewTestManager(), time.Second)
	got := svc.Ask(context.Background(), testState(), i18n.English, "what should I eat?")

	if got != "Eat more vegetables." {
		t.Errorf("expected provider answer, got %q", got)
	}
	if gotQuery != "what should I eat?" {
		t.Errorf("query not forwarded, got %q", gotQuery)
	}
	if !strings.Contains(gotInstruction, "30 years old") {
		t.Errorf("instruction missing age context: %q", gotInstruction)
	}
	if !strings.Contains(gotInstruction, "Answer in English.") {
		t.Errorf("instruction missing language directive: %q", gotInstruction)
	}
}

func TestAdviceService_Ask_AmharicInstruction(t *testing.T) {
	var gotInstruction string
	client := &mockAdviceClient{
		generateFn: func(ctx context.Context, systemInstruction, query string) (string, error) {
			gotInstruction = systemInstruction
			return "ok", nil
		},
	}

	svc := NewAdviceService(client, metrics.NewTestManager(), time.Second)
	svc.Ask(context.Background(), testState(), i18n.Amharic, "q")

	if !strings.Contains(gotInstruction, "Answer in Amharic.") {
		t.Errorf("instruction missing Amharic directive: %q", gotInstruction)
	}
}

func TestAdviceService_Ask_QuotaFallback(t *testing.T) {
	client := &mockAdviceClient{
		generateFn: func(ctx context.Context, systemInstruction, query string) (string, error) {
			return "", domain.ErrAdviceQuota
		},
	}

	svc := NewAdviceService(client, metrics.NewTestManager(), time.Second)

	for _, lang := range []i18n.Language{i18n.English, i18n.Amharic} {
		got := svc.Ask(context.Background(), testState(), lang, "q")
		if got != i18n.AdviceQuotaFallback(lang) {
			t.Errorf("lang %s: expected quota fallback, got %q", lang, got)
		}
	}
}

func TestAdviceService_Ask_GenericFallback(t *testing.T) {
	client := &mockAdviceClient{
		generateFn: func(ctx context.Context, systemInstruction, query string) (string, error) {
			return "", errors.New("connection reset")
		},
	}

	svc := NewAdviceService(client, metrics.NewTestManager(), time.Second)

	for _, lang := range []i18n.Language{i18n.English, i18n.Amharic} {
		got := svc.Ask(context.Background(), testState(), lang, "q")
		if got != i18n.AdviceErrorFallback(lang) {
			t.Errorf("lang %s: expected error fallback, got %q", lang, got)
		}
	}
}

func TestAdviceService_Ask_FallbacksDiffer(t *testing.T) {
	if i18n.AdviceQuotaFallback(i18n.English) == i18n.AdviceErrorFallback(i18n.English) {
		t.Error("quota and error fallbacks should differ")
	}
}
