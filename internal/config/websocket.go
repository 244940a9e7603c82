package config

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader     websocket.Upgrader
	WriteTimeout time.Duration
}

// NewWebSocket checks origins against WS_ALLOWED_ORIGINS, falling back to
// AllowedOrigins when it is unset.
func NewWebSocket() (*WebSocket, error) {
	allowed := AllowedOrigins()
	if origins, ok := os.LookupEnv("WS_ALLOWED_ORIGINS"); ok {
		allowed = splitOrigins(origins)
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if allowed == nil {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, o := range allowed {
				if o == origin {
					return true
				}
			}
			return false
		},
	}

	ws := &WebSocket{
		Upgrader:     upgrader,
		WriteTimeout: 10 * time.Second,
	}

	return ws, nil
}
