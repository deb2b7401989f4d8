package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shorty/internal/validation"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Example.com/page", "https://example.com/page"},
		{"example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"Https://example.com", "https://example.com"},
		{"HTTPS://example.com", "https://hTTPS://example.com"},
		{"Élan.fr", "https://élan.fr"},
		{"ftp://example.com", "https://ftp://example.com"},
		{"", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	inputs := []string{
		"Example.com/page",
		"https://example.com/a?b=c",
		"http://x.org",
		"Https://Example.com",
		"Élan.fr",
		"",
	}

	for _, in := range inputs {
		once := validation.NormalizeURL(in)
		assert.Equal(t, once, validation.NormalizeURL(once), "input %q", in)
	}
}
