package adapthttp

import (
	"net/http"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		state, err := s.tracker.Profile(r.Context(), userID(r))
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"name":         state.Name,
			"age":          state.Age,
			"heightCm":     state.HeightCm,
			"startWeight":  state.StartWeight,
			"targetWeight": state.TargetWeight,
		})

	case http.MethodPost:
		var body struct {
			Name         string  `json:"name"`
			Age          int     `json:"age"`
			HeightCm     float64 `json:"heightCm"`
			StartWeight  float64 `json:"startWeight"`
			TargetWeight float64 `json:"targetWeight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		state, err := s.tracker.CreateProfile(r.Context(), userID(r), body.Name, body.Age, body.HeightCm, body.StartWeight, body.TargetWeight)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"name":         state.Name,
			"age":          state.Age,
			"heightCm":     state.HeightCm,
			"startWeight":  state.StartWeight,
			"targetWeight": state.TargetWeight,
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleProfileTarget(w http.ResponseWriter, r *http.Request) {
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

	if err := s.tracker.SetTargetWeight(r.Context(), userID(r), body.Kg); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "targetWeight": body.Kg})
}
