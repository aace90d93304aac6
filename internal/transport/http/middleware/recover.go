package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chatwith-notifications/internal/pkg/logger"
	"go.uber.org/zap"
)

// Recover converts panics into a 500 JSON envelope with the underlying
// message, so uncaught failures surface to the caller instead of dropping
// the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.L().Error("panic recovered",
					zap.Any("panic", rec), zap.String("path", r.URL.Path), zap.Stack("stack"))
				writeInternalError(w, fmt.Sprintf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeInternalError(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "Internal server error",
		"message": "An unexpected error occurred",
		"details": detail,
	})
}
