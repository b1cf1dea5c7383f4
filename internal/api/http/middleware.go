package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"rentdesk-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates the bearer token and attaches the claims to the
// request context. The claims are identity only; authorization happens in
// the service layer against the profile store on every mutation.
func AuthMiddleware(tm security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "authorization token is not provided")
				return
			}

			token := header
			if len(token) > 7 && strings.EqualFold(token[0:7], "bearer ") {
				token = token[7:]
			}

			claims, err := tm.ValidateToken(token)
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(apiResponse{Error: message})
}

// actorFromContext returns the authenticated actor id, or 0 when the
// request carried no claims (which auth-protected routes never allow).
func actorFromContext(ctx context.Context) int64 {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}
