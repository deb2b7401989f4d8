package validation_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"shorty/internal/validation"
)

func TestValidatePublicAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr error
	}{
		// Public IPs
		{"public ipv4", "8.8.8.8", nil},
		{"public ipv6", "2001:4860:4860::8888", nil},
		{"ipv4-mapped public", "::ffff:8.8.8.8", nil},

		// Loopback
		{"loopback ipv4", "127.0.0.1", validation.ErrPrivateIPNotAllowed},
		{"loopback ipv6", "::1", validation.ErrPrivateIPNotAllowed},

		// Private ranges
		{"private 10.x", "10.0.0.1", validation.ErrPrivateIPNotAllowed},
		{"private 172.31.x", "172.31.255.255", validation.ErrPrivateIPNotAllowed},
		{"private 192.168.x", "192.168.1.1", validation.ErrPrivateIPNotAllowed},
		{"ipv4-mapped private", "::ffff:192.168.1.1", validation.ErrPrivateIPNotAllowed},
		{"unique local ipv6", "fd00::1", validation.ErrPrivateIPNotAllowed},

		// Link-local and multicast
		{"link-local ipv4", "169.254.1.1", validation.ErrPrivateIPNotAllowed},
		{"link-local ipv6", "fe80::1", validation.ErrPrivateIPNotAllowed},
		{"multicast", "224.0.0.1", validation.ErrPrivateIPNotAllowed},

		// Reserved
		{"cgnat", "100.64.0.1", validation.ErrPrivateIPNotAllowed},
		{"cgnat upper", "100.127.255.255", validation.ErrPrivateIPNotAllowed},
		{"just above cgnat", "100.128.0.1", nil},
		{"ietf protocol", "192.0.0.1", validation.ErrPrivateIPNotAllowed},
		{"test-net-1", "192.0.2.1", validation.ErrPrivateIPNotAllowed},
		{"test-net-2", "198.51.100.1", validation.ErrPrivateIPNotAllowed},
		{"test-net-3", "203.0.113.1", validation.ErrPrivateIPNotAllowed},
		{"ipv6 documentation", "2001:db8::1", validation.ErrPrivateIPNotAllowed},

		// Unspecified
		{"unspecified ipv4", "0.0.0.0", validation.ErrPrivateIPNotAllowed},
		{"unspecified ipv6", "::", validation.ErrPrivateIPNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidatePublicAddr(netip.MustParseAddr(tt.addr))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
