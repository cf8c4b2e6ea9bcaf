package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dreed/habit-tracker/internal/session"
	"go.uber.org/zap"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "token"
)

// Auth gates protected routes on the TOKEN header. The client sends the
// opaque session token in a custom TOKEN header rather than a standard
// Authorization bearer header.
func Auth(sessions session.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("TOKEN")
			if token == "" {
				jsonError(w, http.StatusUnauthorized, "missing token")
				return
			}

			identity, ok := sessions.Get(token)
			if !ok {
				logger.Warn("rejected unknown session token",
					zap.String("path", r.URL.Path))
				jsonError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the identity resolved by Auth for this request.
func GetIdentity(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(session.Identity)
	return identity, ok
}

// GetToken returns the raw session token Auth validated.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

func jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
