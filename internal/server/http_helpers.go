package server

import (
	"encoding/json"
	"io"
	"net/http"
)

// readJSON decodes a request body into dest. Callers tolerate a failed decode
// and proceed with zero values; field-level validation catches the rest.
func readJSON(body io.Reader, dest any) error {
	return json.NewDecoder(body).Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": message,
	})
}
