package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const corsMaxAge = 600

// Cors admits the origins in allowed, or any origin when allowed is empty.
// Browsers may read the request id of every response.
func Cors(allowed []string) Middleware {
	origins := allowed
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodHead, http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         corsMaxAge,
	}).Handler
}
