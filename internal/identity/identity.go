// Package identity carries the authenticated user id forwarded by the
// identity provider through the request context.
package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/courtside/pickem/internal/logger"
)

// HeaderUserID is set by the identity provider on authenticated requests
const HeaderUserID = "X-User-ID"

const (
	LogMsgMalformedUserID = "Rejected malformed user id"
	ErrMsgMalformedUserID = "Invalid user id"
)

type ctxKey struct{}

// WithUserID returns a context carrying userID
func WithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, ctxKey{}, userID)
	return logger.WithUserID(ctx, userID)
}

// UserID returns the authenticated user id, or "" for anonymous requests
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware reads HeaderUserID. Requests without it pass through anonymous;
// a value that is not a UUID is rejected with 401.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgMalformedUserID, "path", r.URL.Path)
			http.Error(w, ErrMsgMalformedUserID, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id.String())))
	})
}
