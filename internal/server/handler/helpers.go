package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON marshals v as JSON and writes it to the response with the
// given HTTP status code. Responses are marked no-store: nothing this
// gateway produces is cacheable. If marshaling fails, it falls back to a
// plain 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(data)
}

// writeError sends a JSON-formatted error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeInvalidPayload sends the 422 validation envelope enumerating every
// violated rule.
func writeInvalidPayload(w http.ResponseWriter, details []string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":   "Invalid payload",
		"details": details,
	})
}
