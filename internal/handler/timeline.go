package handler

import (
	"net/http"
	"strconv"

	"tweet-timeline-cache/internal/service"
	"tweet-timeline-cache/pkg/apierror"
	"tweet-timeline-cache/pkg/response"
)

const (
	// DefaultUserID is the subject served when the request names none.
	DefaultUserID = "1472197491844026370"

	// DefaultMaxResults is the page size forwarded upstream when the request
	// omits max_results or supplies something unparsable.
	DefaultMaxResults = 6
)

// terminalErrorMessage is the fixed body of the only 500 this endpoint emits.
const terminalErrorMessage = "Failed to fetch data and no cache available"

// TimelineHandler handles the timeline endpoint.
type TimelineHandler struct {
	timelineService *service.TimelineService
}

// NewTimelineHandler creates a new timeline handler.
func NewTimelineHandler(timelineService *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// GetTimeline handles GET /?userid=<string>&max_results=<int>
//
// Parameters are extracted and defaulted before any cache or upstream I/O.
// The body is whatever the service produced - cached, freshly fetched, or
// stale fallback - always verbatim JSON.
func (h *TimelineHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userid")
	if userID == "" {
		userID = DefaultUserID
	}

	maxResults := DefaultMaxResults
	if raw := r.URL.Query().Get("max_results"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			maxResults = n
		}
	}

	body, source, err := h.timelineService.GetTimeline(r.Context(), userID, maxResults)
	if err != nil {
		response.Error(w, apierror.InternalError(terminalErrorMessage))
		return
	}

	w.Header().Set("X-Cache", source.CacheStatus())
	response.RawJSON(w, http.StatusOK, body)
}
