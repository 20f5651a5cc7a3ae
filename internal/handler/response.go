package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/tempdev/site/internal/apperr"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

const invalidBodyMessage = "Invalid request body."

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response failed", "error", err)
	}
}

// writeError renders err as {ok:false, error}. Errors that are not
// *apperr.Error become a generic 500.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.StatusOf(err), errorResponse{
		OK:    false,
		Error: apperr.MessageOf(err, "Server error."),
	})
}

// decodeJSON reads a size-limited JSON body into v. An empty body leaves v
// untouched so missing fields surface as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return apperr.Validation(invalidBodyMessage)
	}
	return nil
}
