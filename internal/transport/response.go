package transport

import (
	"encoding/json"
	"net/http"
	"time"
)

// FieldError is one validation violation, keyed by the JSON path of the
// offending field.
type FieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// Envelope is the uniform response body. Every response, success or failure,
// carries success, message and an ISO-8601 timestamp.
type Envelope struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
	Data      interface{}  `json:"data,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Envelope{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	})
}

func WriteError(w http.ResponseWriter, status int, message string, errs []FieldError) {
	WriteJSON(w, status, Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Errors:    errs,
	})
}
