package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"tweet-timeline-cache/internal/model"
)

// DefaultBaseURL is the Twitter API v2 endpoint.
const DefaultBaseURL = "https://api.twitter.com"

// Fixed field-expansion parameters sent with every timeline request.
const (
	expansions  = "author_id"
	tweetFields = "created_at,public_metrics"
	userFields  = "name,username,profile_image_url,verified"
)

// Client fetches tweet timelines from the Twitter API v2.
type Client struct {
	http        *http.Client
	baseURL     *url.URL
	bearerToken string
}

// NewClient creates an upstream client. baseURL falls back to DefaultBaseURL
// when empty; timeout bounds each request at the transport level.
func NewClient(baseURL, bearerToken string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}

	return &Client{
		http:        &http.Client{Timeout: timeout},
		baseURL:     u,
		bearerToken: bearerToken,
	}, nil
}

// FetchTimeline retrieves the recent tweet timeline for a user and returns
// the verbatim response bytes. The body is unmarshalled once to verify it is
// the expected timeline shape; an unparseable body is an error just like a
// non-2xx status.
func (c *Client) FetchTimeline(ctx context.Context, userID string, maxResults int) ([]byte, error) {
	u := *c.baseURL
	u.Path = path.Join(u.Path, "2", "users", userID, "tweets")

	q := u.Query()
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("expansions", expansions)
	q.Set("tweet.fields", tweetFields)
	q.Set("user.fields", userFields)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	var timeline model.Timeline
	if err := json.Unmarshal(body, &timeline); err != nil {
		return nil, fmt.Errorf("failed to parse upstream response: %w", err)
	}

	return body, nil
}
