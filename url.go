package docscrape

import (
	"net"
	"net/url"
	"strings"
)

// ParseURL parses rawURL. Returns EMALFORMED if it cannot be parsed.
func ParseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, WrapError(EMALFORMED, err, "malformed URL %q", rawURL)
	}
	return u, nil
}

// Domain returns the lowercased host of rawURL without its port.
// Returns EMALFORMED if rawURL cannot be parsed and ENODOMAIN if it has no
// host, as with relative or opaque URLs.
func Domain(rawURL string) (string, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return "", err
	}
	host := u.Hostname()
	if host == "" {
		return "", Errorf(ENODOMAIN, "URL %q has no domain", rawURL)
	}
	return strings.ToLower(host), nil
}

// SameDomain reports whether a and b have exactly the same domain.
// Subdomains count as different domains. URLs without a domain never match.
func SameDomain(a, b string) bool {
	da, err := Domain(a)
	if err != nil {
		return false
	}
	db, err := Domain(b)
	if err != nil {
		return false
	}
	return da == db
}

// StripFragment returns the canonical form of rawURL with its fragment
// removed. For http and https URLs the host is lowercased, a default port
// is dropped and an empty path becomes "/". Every other component is
// preserved.
func StripFragment(rawURL string) (string, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return "", err
	}
	u.Fragment = ""
	u.RawFragment = ""
	canonicalize(u)
	return u.String(), nil
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

func canonicalize(u *url.URL) {
	defaultPort, ok := defaultPorts[u.Scheme]
	if !ok || u.Host == "" {
		return
	}
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && port != defaultPort {
		u.Host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		u.Host = "[" + host + "]"
	} else {
		u.Host = host
	}
	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
		u.RawPath = ""
	}
}
