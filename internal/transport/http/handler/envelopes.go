package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chatwith-notifications/internal/domain"
)

// Envelope is the generic response wrapper. Details carries either the
// itemized validation messages ([]string) or a backend error message (string).
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// CreatedNotification is the partial record returned on a successful create.
// Details and status are intentionally omitted from the response payload.
type CreatedNotification struct {
	ID        string    `json:"id"`
	Lastname  string    `json:"lastname"`
	Firstname string    `json:"firstname"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateEnvelope wraps a successful create response.
type CreateEnvelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    *CreatedNotification `json:"data"`
}

// Pagination describes the requested window. HasMore is a heuristic: true
// iff the page came back full, which can be wrong exactly at the end of the
// collection. Callers that need certainty must request the next page.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// ListEnvelope wraps a successful list response.
type ListEnvelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       []domain.Notification `json:"data"`
	Count      int                   `json:"count"`
	Pagination Pagination            `json:"pagination"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
