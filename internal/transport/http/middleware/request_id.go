package middleware

import (
	"net/http"

	"github.com/google/uuid"

	pkgctx "github.com/igrejaviva/comunidade-api/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID tags every request with an id, reusing the client-provided one
// when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := pkgctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
