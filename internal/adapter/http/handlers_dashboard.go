package adapthttp

import (
	"net/http"
	"time"

	"slimcoach/internal/i18n"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	dash, err := s.tracker.Dashboard(r.Context(), userID(r), time.Now())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lang := i18n.ParseLanguage(r.URL.Query().Get("lang"))
	report, err := s.report.Weekly(r.Context(), userID(r), lang, time.Now())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Query string `json:"query"`
		Lang  string `json:"lang"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "query is required"})
		return
	}

	state, err := s.tracker.Profile(r.Context(), userID(r))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	answer := s.advice.Ask(r.Context(), state, i18n.ParseLanguage(body.Lang), body.Query)
	writeJSON(w, http.StatusOK, map[string]any{"answer": answer})
}
