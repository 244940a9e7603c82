package middleware

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// responseRecorder remembers what the handler sent back.
type responseRecorder struct {
	http.ResponseWriter
	status   int
	written  int64
	upgraded bool
}

func (rr *responseRecorder) WriteHeader(status int) {
	rr.status = status
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	n, err := rr.ResponseWriter.Write(b)
	rr.written += int64(n)
	return n, err
}

// Hijack lets the websocket upgrader take over the connection.
func (rr *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	rr.upgraded = true
	return h.Hijack()
}

func (rr *responseRecorder) Unwrap() http.ResponseWriter {
	return rr.ResponseWriter
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Logging writes one entry per request once it is done: at warn level for
// client errors, error level for server errors. Websocket streams are
// logged when they close. Must run inside RequestID to pick up the id.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rr, r)

			msg := "request handled"
			if rr.upgraded {
				msg = "websocket closed"
			}
			logger.LogAttrs(r.Context(), levelFor(rr.status), msg,
				slog.String("requestId", GetRequestID(r.Context())),
				slog.Group("request",
					slog.String("method", r.Method),
					slog.String("uri", r.URL.RequestURI()),
					slog.String("remoteAddr", r.RemoteAddr),
					slog.String("forwardedFor", r.Header.Get("X-Forwarded-For")),
				),
				slog.Group("response",
					slog.Int("status", rr.status),
					slog.Int64("bytes", rr.written),
					slog.Int64("durationMs", time.Since(start).Milliseconds()),
				),
			)
		})
	}
}
