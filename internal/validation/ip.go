package validation

import "net/netip"

// Ranges not covered by the netip predicates.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
	netip.MustParsePrefix("2001:db8::/32"),   // IPv6 documentation
}

// ValidatePublicAddr rejects addresses that do not route on the public
// internet. Hostnames are never resolved, so only IP literals reach here.
func ValidatePublicAddr(addr netip.Addr) error {
	addr = addr.Unmap()

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}
	return nil
}
