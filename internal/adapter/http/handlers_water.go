package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleWaterToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Day  string `json:"day"`
		Hour int    `json:"hour"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day := body.Day
	if day == "" {
		day = localDayString(time.Now())
	}

	snap, err := s.tracker.ToggleWaterSlot(r.Context(), userID(r), day, body.Hour)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "hydration": snap})
}

func (s *Server) handleWaterToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()
	today := localDayString(now)

	state, err := s.tracker.Profile(r.Context(), userID(r))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"day":       today,
		"hydration": state.HydrationStatus(today, now.Hour()),
	})
}
