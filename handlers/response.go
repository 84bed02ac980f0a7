package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// writeError sends the generic fault body. Every service fault is a 500.
func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: message})
}
