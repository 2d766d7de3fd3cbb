package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleToggleDiet(w http.ResponseWriter, r *http.Request) {
	s.handleDayToggle(w, r, "diet")
}

func (s *Server) handleToggleWorkout(w http.ResponseWriter, r *http.Request) {
	s.handleDayToggle(w, r, "workout")
}

func (s *Server) handleDayToggle(w http.ResponseWriter, r *http.Request, kind string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Day string `json:"day"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day := body.Day
	if day == "" {
		day = localDayString(time.Now())
	}

	toggle := s.tracker.ToggleDiet
	if kind == "workout" {
		toggle = s.tracker.ToggleWorkout
	}

	rec, err := toggle(r.Context(), userID(r), day)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "record": rec})
}
