package response

import (
	"encoding/json"
	"net/http"

	"tweet-timeline-cache/pkg/apierror"
)

// setStandardHeaders stamps the header set every payload response carries.
// The CORS values are fixed by the public contract.
func setStandardHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET,HEAD,POST,OPTIONS")
	w.Header().Set("Access-Control-Max-Age", "86400")
}

// RawJSON writes a pre-serialized JSON body verbatim with the standard
// headers. Used for cached payloads, which must be returned byte-for-byte.
func RawJSON(w http.ResponseWriter, statusCode int, body []byte) {
	setStandardHeaders(w)
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// JSON marshals data and sends it with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	setStandardHeaders(w)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// OK sends a 200 OK response.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Error sends an error response.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apierror.Error)
	if !ok {
		apiErr = apierror.InternalError("an unexpected error occurred")
	}

	setStandardHeaders(w)
	w.WriteHeader(apiErr.StatusCode)
	_, _ = w.Write(apiErr.ToJSON())
}
