package fetch

import (
	"net/url"
	"strings"
)

// loginWalledHosts are job boards that require authentication to view a
// posting. Direct fetching them returns a login page, so import pipelines
// skip straight to the search-grounded fallback.
var loginWalledHosts = []string{
	"linkedin.com",
	"glassdoor.com",
}

// IsLoginWalled reports whether the URL's host is a known login-walled
// domain. Malformed URLs are not treated as walled; they fail later at
// fetch time with a proper error.
func IsLoginWalled(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, walled := range loginWalledHosts {
		if host == walled || strings.HasSuffix(host, "."+walled) {
			return true
		}
	}
	return false
}

// WalledHostName returns a display name for a login-walled URL's host,
// used to word the import warning ("LinkedIn jobs require...").
func WalledHostName(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	switch {
	case strings.Contains(host, "linkedin"):
		return "LinkedIn"
	case strings.Contains(host, "glassdoor"):
		return "Glassdoor"
	default:
		return parsed.Hostname()
	}
}
