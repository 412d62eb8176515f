package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/request"
	"github.com/fightpulse/fightpulse-api/internal/services/identity"
	"github.com/fightpulse/fightpulse-api/internal/services/oidc"
	"go.uber.org/zap"
)

// Auth validates the bearer token, syncs the claim into a local user record
// and attaches the user to the request context. Every guarded route pays this
// sync; the identity service keeps the hot path to a single write.
func Auth(verifier *oidc.Verifier, identitySvc *identity.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondAuthError(w, http.StatusUnauthorized, "Missing Authorization header", logger)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondAuthError(w, http.StatusUnauthorized, "Invalid Authorization header format", logger)
				return
			}

			ctx := r.Context()
			claim, err := verifier.Verify(ctx, parts[1])
			if err != nil {
				logger.Debug("token_verification_failed", zap.Error(err))
				respondAuthError(w, http.StatusUnauthorized, "Invalid or expired token", logger)
				return
			}

			user, err := identitySvc.SyncUser(ctx, claim)
			if err != nil {
				if apperror.IsKind(err, apperror.KindMissingClaim) {
					respondAuthError(w, http.StatusUnauthorized, err.Error(), logger)
					return
				}
				logger.Error("user_sync_failed", zap.Error(err))
				respondAuthError(w, http.StatusInternalServerError, "Failed to sync user", logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(request.WithUser(ctx, user)))
		})
	}
}

func respondAuthError(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"success":   false,
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed_to_encode_auth_error_response", zap.Error(err))
	}
}
