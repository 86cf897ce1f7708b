package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
	"github.com/TWRT/ticktick-connector/internal/schema"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error, context string) {
	writeJSON(w, statusForError(err), map[string]string{
		"error": context + ": " + err.Error(),
	})
}

// statusForError keeps the two error kinds apart: schema violations are the
// caller's fault, remote rejections belong to the upstream service.
func statusForError(err error) int {
	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var apiErr *ticktick.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
