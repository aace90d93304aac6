package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/chatwith-notifications/internal/application/notification"
	"github.com/chatwith-notifications/internal/domain"
	"github.com/chatwith-notifications/internal/infrastructure/dynamo"
	"github.com/chatwith-notifications/internal/pkg/validate"
)

const defaultListLimit = 50

// NotificationHandler handles notification intake and retrieval.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// Create validates the raw body, normalizes it, and persists the record.
// The body is decoded into an untyped map first so validation can narrow
// each field itself and report every failure at once.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Envelope{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
		return
	}

	var raw map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			writeJSON(w, http.StatusBadRequest, Envelope{
				Error:   "Invalid JSON body",
				Message: "Request body must be a JSON object",
				Details: err.Error(),
			})
			return
		}
	}

	if res := validate.NotificationInput(raw); !res.IsValid {
		writeJSON(w, http.StatusBadRequest, Envelope{
			Error:   "Validation failed",
			Message: "Invalid input data",
			Details: res.Errors,
		})
		return
	}

	// Validation guarantees every field is a string, so this cannot fail.
	var in domain.NotificationInput
	_ = json.Unmarshal(body, &in)

	stored, err := h.svc.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInsert) {
			writeJSON(w, http.StatusInternalServerError, Envelope{
				Error:   "Insert failed",
				Message: "No data was inserted",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, Envelope{
			Error:   "Database error",
			Message: "Failed to insert notification data",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreateEnvelope{
		Success: true,
		Message: "Notification created successfully",
		Data: &CreatedNotification{
			ID:        stored.NotificationID,
			Lastname:  stored.Lastname,
			Firstname: stored.Firstname,
			Email:     stored.Email,
			Subject:   stored.Subject,
			CreatedAt: stored.CreatedAt,
		},
	})
}

// List returns a page of notifications ordered newest first, optionally
// filtered by exact status.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)

	rows, count, err := h.svc.List(r.Context(), p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Envelope{
			Error:   "Database error",
			Message: "Failed to fetch notifications",
			Details: err.Error(),
		})
		return
	}
	if rows == nil {
		rows = []domain.Notification{}
	}

	writeJSON(w, http.StatusOK, ListEnvelope{
		Success: true,
		Message: "Notifications retrieved successfully",
		Data:    rows,
		Count:   count,
		Pagination: Pagination{
			Limit:  p.Limit,
			Offset: p.Offset,
			// Heuristic: a full page is assumed to have more behind it,
			// even when the collection ends exactly at the page boundary.
			HasMore: len(rows) == p.Limit,
		},
	})
}

func parseListParams(r *http.Request) dynamo.ListParams {
	q := r.URL.Query()

	limit := defaultListLimit
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	offset := 0
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	return dynamo.ListParams{Limit: limit, Offset: offset, Status: q.Get("status")}
}
