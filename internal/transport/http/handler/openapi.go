package handler

import (
	"fmt"
	"net/http"
	"os"
)

// fallbackSpec is served when no openapi.yaml exists at any candidate path.
// The %s placeholder receives the request's Host header.
const fallbackSpec = `openapi: 3.0.3
info:
  title: ChatWith Notifications API
  description: A notification-intake API backed by DynamoDB.
  version: 1.0.0
servers:
  - url: %s
    description: Production server
paths:
  /api/notifications:
    post:
      summary: Create a notification
      responses:
        '201':
          description: Created
  /api/notifications/get:
    get:
      summary: Get notifications
      responses:
        '200':
          description: Success
  /api/openapi:
    get:
      summary: Get OpenAPI specification
      responses:
        '200':
          description: OpenAPI YAML file
`

// SpecHandler serves the API description document from the first candidate
// path that exists, falling back to an embedded minimal document.
type SpecHandler struct {
	paths []string
}

func NewSpecHandler(paths []string) *SpecHandler {
	return &SpecHandler{paths: paths}
}

func (h *SpecHandler) Get(w http.ResponseWriter, r *http.Request) {
	var content []byte
	for _, p := range h.paths {
		if b, err := os.ReadFile(p); err == nil {
			content = b
			break
		}
	}
	if content == nil {
		content = []byte(fmt.Sprintf(fallbackSpec, r.Host))
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `inline; filename="openapi.yaml"`)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
