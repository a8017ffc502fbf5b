package domain

import "time"

// SiteContent is a small key-value text fragment (headlines, subtitles)
// editable without a code change. Keyed by string key, not numeric id.
type SiteContent struct {
	ID        int       `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
