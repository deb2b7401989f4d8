package validation

import (
	"fmt"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

const (
	maxURLLength   = 2083
	maxLabelLength = 63
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

// URLValidator answers "is this a usable absolute URL". Hosts must be an IP
// literal or a domain name with a top-level domain.
type URLValidator struct {
	allowPrivateIPs bool
}

func NewURLValidator(allowPrivateIPs bool) *URLValidator {
	return &URLValidator{allowPrivateIPs: allowPrivateIPs}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if rawURL == "" || len(rawURL) > maxURLLength {
		return ErrInvalidURL
	}
	if strings.ContainsAny(rawURL, "<>") || strings.IndexFunc(rawURL, unicode.IsSpace) != -1 {
		return ErrInvalidURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}
	if !allowedSchemes[strings.ToLower(parsed.Scheme)] || parsed.Opaque != "" || parsed.Host == "" {
		return ErrInvalidURL
	}

	if port := parsed.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return ErrInvalidURL
		}
	}

	host := parsed.Hostname()
	if addr, err := netip.ParseAddr(host); err == nil {
		if v.allowPrivateIPs {
			return nil
		}
		if err := ValidatePublicAddr(addr); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidURL, err)
		}
		return nil
	}

	if !isDomainName(host) {
		return ErrInvalidURL
	}
	return nil
}

func isDomainName(host string) bool {
	host = strings.TrimSuffix(host, ".")
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels {
		if !isLabel(label) {
			return false
		}
	}

	tld := strings.ToLower(labels[len(labels)-1])
	if strings.HasPrefix(tld, "xn--") {
		return len(tld) > len("xn--")
	}
	if len([]rune(tld)) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isLabel(label string) bool {
	if label == "" || len(label) > maxLabelLength {
		return false
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}
	for _, r := range label {
		if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
