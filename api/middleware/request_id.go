package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/pkg/logger"
)

// Header that carries the request id in and out of the service.
const requestIDHeader = "X-Request-Id"

// RequestID tags each request with an id for log correlation. An inbound
// X-Request-Id is honored so ids survive proxy hops; otherwise a fresh
// one is minted and echoed back.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
