package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio/database"
	"portfolio/uploads"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func respondValidationError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusBadRequest, validationResponse{
		Error:  "Validation failed",
		Fields: formatValidationErrors(err),
	})
}

// respondStoreError maps gateway errors to statuses. Unexpected errors are
// logged and answered with "Failed to <action>".
func (s *Server) respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFound, action string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, notFound)
	case errors.Is(err, database.ErrDuplicateSlug):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, database.ErrEmptySlug):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, uploads.ErrFileTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, uploads.ErrNoFile):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.requestLog(r).WithError(err).Error("failed to " + action)
		respondError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func (s *Server) requestLog(r *http.Request) *logrus.Entry {
	entry := s.log.WithField("path", r.URL.Path)
	if id := requestID(r); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
