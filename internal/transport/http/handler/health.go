package handler

import "net/http"

// HealthHandler handles the liveness endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Check(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "ok"})
}

// Preflight answers OPTIONS on the notification endpoints with an empty 200.
// The CORS middleware only intercepts OPTIONS requests that carry preflight
// headers; bare OPTIONS lands here instead of in MethodNotAllowed.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// MethodNotAllowed is the router-wide 405 responder.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, Envelope{
		Error:   "Method not allowed",
		Message: "The HTTP method is not supported by this endpoint",
	})
}

// NotFound is the router-wide 404 responder.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, Envelope{Error: "Not found"})
}
