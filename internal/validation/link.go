package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"shorty/internal/domain"
)

const (
	DefaultStatus = http.StatusFound
	MinSlugLength = 1
	MaxSlugLength = 32

	// A slug must survive as a single path segment of the short URL.
	reservedSlugChars = "/?#"
)

// LinkValidator turns a raw creation request into a domain.NewLink. Checks
// run in order url, status, slug and the first failure is returned.
type LinkValidator struct {
	urls *URLValidator
}

func NewLinkValidator(urls *URLValidator) *LinkValidator {
	return &LinkValidator{urls: urls}
}

func (v *LinkValidator) Validate(req domain.CreateLinkRequest) (domain.NewLink, error) {
	rawURL, ok := decodeString(req.URL)
	if !ok {
		return domain.NewLink{}, ErrInvalidURL
	}
	normalized := NormalizeURL(rawURL)
	if err := v.urls.ValidateURL(normalized); err != nil {
		return domain.NewLink{}, err
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return domain.NewLink{}, err
	}

	slug, err := parseSlug(req.Slug)
	if err != nil {
		return domain.NewLink{}, err
	}

	return domain.NewLink{URL: normalized, Status: status, Slug: slug}, nil
}

func parseStatus(raw json.RawMessage) (int, error) {
	if isAbsent(raw) {
		return DefaultStatus, nil
	}

	// Only JSON numbers decode into float64; "302" and true are rejected here.
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, ErrInvalidStatus
	}
	switch n {
	case http.StatusMovedPermanently:
		return http.StatusMovedPermanently, nil
	case http.StatusFound:
		return http.StatusFound, nil
	default:
		return 0, ErrInvalidStatus
	}
}

func parseSlug(raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", nil
	}

	slug, ok := decodeString(raw)
	if !ok {
		return "", ErrInvalidSlug
	}
	if n := utf8.RuneCountInString(slug); n < MinSlugLength || n > MaxSlugLength {
		return "", ErrInvalidSlug
	}
	if strings.ContainsAny(slug, reservedSlugChars) {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

func decodeString(raw json.RawMessage) (string, bool) {
	if isAbsent(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
