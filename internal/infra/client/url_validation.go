package client

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrInvalidURL indicates that an endpoint URL failed validation.
var ErrInvalidURL = errors.New("invalid endpoint URL")

// validateURL validates an endpoint URL before making an HTTP request.
// Only http/https schemes with a non-empty host are accepted. When
// denyPrivateIPs is set, private, loopback, and link-local addresses are
// additionally blocked to prevent Server-Side Request Forgery when endpoint
// URLs come from configuration.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	// Literal IPs are checked directly; names are resolved first.
	if ip := net.ParseIP(hostname); ip != nil {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: host %s is in a private range", ErrInvalidURL, hostname)
		}
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		// Unresolvable hosts fail later at request time with a clearer error.
		return nil
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: host %s resolves to a private address", ErrInvalidURL, hostname)
		}
	}

	return nil
}

// isPrivateIP reports whether the address is loopback, link-local, or in a
// private range (which includes cloud metadata endpoints).
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsPrivate()
}
