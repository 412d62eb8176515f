package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// Recovery converts panics into 500 responses so a bad payload cannot take
// the server down.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic_recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					respondAuthError(w, http.StatusInternalServerError, "Internal server error", logger)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
