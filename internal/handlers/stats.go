package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	applog "ogcard/internal/log"
	"ogcard/internal/stats"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Stats reports how many cards were served, grouped by theme and layout.
func Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	if !authorizedForStats(r) {
		w.Header().Set("WWW-Authenticate", `Bearer realm="stats"`)
		writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	summary, err := store.Summary(r.Context())
	if err != nil {
		if errors.Is(err, stats.ErrUnavailable) {
			writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: "statistics are not enabled"})
			return
		}
		applog.Error(r.Context(), "failed to summarise render events", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "failed to load statistics"})
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

func authorizedForStats(r *http.Request) bool {
	if statsTokenHash == "" {
		return true
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(statsTokenHash), []byte(strings.TrimSpace(token))) == nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		applog.Error(r.Context(), "failed to encode json response", "error", err)
	}
}
