package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecHandler_ServesFirstExistingFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")
	present := filepath.Join(dir, "openapi.yaml")
	require.NoError(t, os.WriteFile(present, []byte("openapi: 3.0.3\ninfo:\n  title: From Disk\n"), 0600))

	h := NewSpecHandler([]string{missing, present})
	r := httptest.NewRequest(http.MethodGet, "/api/openapi", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/x-yaml", rr.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="openapi.yaml"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Body.String(), "From Disk")
}

func TestSpecHandler_FallbackReflectsHost(t *testing.T) {
	h := NewSpecHandler([]string{filepath.Join(t.TempDir(), "nope.yaml")})
	r := httptest.NewRequest(http.MethodGet, "http://api.example.com/api/openapi", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/x-yaml", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "url: api.example.com")
	assert.Contains(t, rr.Body.String(), "openapi: 3.0.3")
}

func TestSpecHandler_ProbesPathsInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("first"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("second"), 0600))

	h := NewSpecHandler([]string{first, second})
	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/api/openapi", nil))

	assert.Equal(t, "first", rr.Body.String())
}
