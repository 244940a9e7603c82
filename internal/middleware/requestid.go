package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type CtxKey int

const (
	CtxRequestID CtxKey = iota
)

const RequestIDHeader = "X-Request-Id"

// RequestID reuses a valid incoming X-Request-Id or assigns a new one, and
// echoes it back in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get(RequestIDHeader))
			if err != nil {
				id = uuid.New()
			}
			w.Header().Set(RequestIDHeader, id.String())
			ctx := context.WithValue(r.Context(), CtxRequestID, id.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestID).(string)
	return id
}
