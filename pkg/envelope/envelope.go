// Package envelope writes the JSON response envelope shared by every endpoint.
package envelope

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Success is the body of a successful response.
type Success struct {
	Status    string    `json:"status"`
	Data      any       `json:"data"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Error is the body of a failed response.
type Error struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Errors    []domain.FieldError `json:"errors,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// WriteSuccess writes data wrapped in the success envelope.
func WriteSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Success{
		Status:    StatusSuccess,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// WriteError writes the error envelope. fields may be nil.
func WriteError(w http.ResponseWriter, status int, message string, fields []domain.FieldError) {
	writeJSON(w, status, Error{
		Status:    StatusError,
		Message:   message,
		Errors:    fields,
		Timestamp: time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
