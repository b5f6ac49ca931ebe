package model

// Timeline is the upstream tweet timeline response shape. The service stores
// and serves the raw bytes verbatim; this type exists to validate that an
// upstream body actually parses before it is cached.
type Timeline struct {
	Data     []Tweet          `json:"data"`
	Includes TimelineIncludes `json:"includes"`
	Meta     TimelineMeta     `json:"meta"`
}

// Tweet is a single tweet in the timeline.
type Tweet struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// TimelineIncludes carries the expanded objects referenced by the timeline.
type TimelineIncludes struct {
	Users []TimelineUser `json:"users"`
}

// TimelineUser is an expanded author record.
type TimelineUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Verified        bool   `json:"verified,omitempty"`
}

// TimelineMeta is the upstream pagination envelope.
type TimelineMeta struct {
	ResultCount int    `json:"result_count"`
	NewestID    string `json:"newest_id"`
	OldestID    string `json:"oldest_id"`
}
