package middleware

import (
	"context"
	"net/http"

	"github.com/igrejaviva/comunidade-api/internal/domain"
	"github.com/igrejaviva/comunidade-api/internal/infrastructure/security"
)

type SessionVerifier interface {
	VerifySession(token string) (security.SessionClaims, error)
}

// UserReader loads the current user row so a deactivated account loses access
// even while its session token is still within its expiry window.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Session resolves the session cookie into a user and injects it into the
// request context. It never rejects: requests without a valid session simply
// continue as anonymous, and RequireUser draws the line for protected routes.
func Session(verifier SessionVerifier, users UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ReadSessionCookie(r)
			if err != nil || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.VerifySession(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil || !u.IsActive {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithUser(r.Context(), u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				writeErr(w, r, domain.ErrSessionMissing())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
