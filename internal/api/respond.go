package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/auth"
)

// operatorFrom pulls the authenticated operator id, answering 401 itself when
// the middleware did not run.
func operatorFrom(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := auth.OperatorID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError maps domain errors to status codes. Storage internals never
// reach the client beyond the message string.
func respondError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

// parseDateParam accepts a calendar date or a full timestamp and returns the
// parsed time. Calendar-date inputs land at midnight UTC.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
