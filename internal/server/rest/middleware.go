package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophmarket/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authMiddleware extracts the bearer token, verifies it, and stores the
// authenticated user id in the request context. Owner-scoped handlers trust
// this id and check ownership only.
func (s *RestServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the id placed by authMiddleware. The empty
// string means the handler was reached without the middleware, which is a
// routing bug.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
