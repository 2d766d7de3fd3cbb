package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"slimcoach/internal/app"
	"slimcoach/internal/domain"
)

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Kg float64 `json:"kg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entry, err := s.tracker.LogWeight(r.Context(), userID(r), body.Kg, time.Now())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": localDayString(time.Now()), "entry": entry})
}

func (s *Server) handleWeightRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", app.RecentChartEntries)
	items, err := s.tracker.RecentWeights(r.Context(), userID(r), limit)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrProfileExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, app.ErrInvalidProfile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
