package middleware

import (
	"log"
	"net/http"
	"time"
)

// Logging is a middleware that logs HTTP requests with the cache disposition
// the handler recorded, if any.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		cacheStatus := wrapped.Header().Get("X-Cache")
		if cacheStatus == "" {
			cacheStatus = "-"
		}

		log.Printf(
			"[HTTP] %s %s %d %s cache=%s rid=%s",
			r.Method,
			r.URL.RequestURI(),
			wrapped.statusCode,
			duration,
			cacheStatus,
			GetRequestID(r.Context()),
		)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
