package validation

import "errors"

var (
	ErrInvalidURL          = errors.New("invalid url")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidSlug         = errors.New("invalid slug")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
)
