package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"tweet-timeline-cache/pkg/apierror"
	"tweet-timeline-cache/pkg/response"
)

// Recovery is a middleware that recovers from panics and converts them into
// a JSON 500 instead of tearing down the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC rid=%s: %v\n%s", GetRequestID(r.Context()), err, debug.Stack())
				response.Error(w, apierror.InternalError("internal server error"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
