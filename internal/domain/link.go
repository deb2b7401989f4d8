package domain

import (
	"encoding/json"
	"time"
)

type Link struct {
	Slug      string
	URL       string
	Status    int
	ExpiresAt time.Time
}

// Remaining reports how long the link stays resolvable after now.
func (l *Link) Remaining(now time.Time) time.Duration {
	return l.ExpiresAt.Sub(now)
}

// CreateLinkRequest keeps the raw JSON of each field so that absent, null and
// wrongly typed values can be told apart during validation.
type CreateLinkRequest struct {
	URL    json.RawMessage `json:"url"`
	Status json.RawMessage `json:"status"`
	Slug   json.RawMessage `json:"slug"`
}

// NewLink is a normalized creation request. An empty Slug asks for a
// generated one.
type NewLink struct {
	URL    string
	Status int
	Slug   string
}

type CreateLinkResponse struct {
	Slug      string `json:"slug"`
	Shortened string `json:"shortened"`
}
