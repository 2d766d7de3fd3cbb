package domain

import (
	"context"
	"errors"
)

var (
	// ErrAdviceQuota indicates the advice provider rejected the call for
	// rate-limit or quota reasons.
	ErrAdviceQuota = errors.New("advice quota exceeded")
	// ErrAdviceUnavailable indicates any other advice provider failure.
	ErrAdviceUnavailable = errors.New("advice service unavailable")
)

// AdviceClient is the port to the external free-text advice generator. It
// is the only slow, failure-prone collaborator in the system; callers must
// treat its errors as degradable, never as fatal to metric computation.
type AdviceClient interface {
	GenerateAdvice(ctx context.Context, systemInstruction, query string) (string, error)
}
