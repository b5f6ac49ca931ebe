package model

import "time"

// Object is a single stored cache entry: the verbatim JSON payload last
// fetched from upstream for one subject, plus the write timestamp the store
// recorded for it.
type Object struct {
	Key        string            `json:"key"`
	Body       []byte            `json:"body"`
	UploadedAt time.Time         `json:"uploaded_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Age returns how long ago the object was written relative to now.
// Future-dated timestamps yield a negative age.
func (o *Object) Age(now time.Time) time.Duration {
	return now.Sub(o.UploadedAt)
}
