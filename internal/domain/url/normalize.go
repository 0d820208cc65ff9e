// Package url resolves page targets given on the command line.
package url

import (
	"net/url"
	"strings"
)

// Normalize turns a page target into something the loader can open.
// Targets with an http, https or file scheme are returned unchanged, as are
// paths for which isFile reports true. Remaining inputs that look like a host
// ("example.com/post") get an https:// prefix. isFile may be nil.
func Normalize(input string, isFile func(string) bool) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if HasScheme(input) {
		return input
	}
	if isFile != nil && isFile(input) {
		return input
	}
	if LooksLikeHost(input) {
		return "https://" + input
	}
	return input
}

// HasScheme reports whether input starts with a scheme the loader understands.
func HasScheme(input string) bool {
	lower := strings.ToLower(input)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "file://")
}

// IsRemote reports whether target is fetched over HTTP.
func IsRemote(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LooksLikeHost reports whether input reads as a host name, optionally followed
// by a path: it has a dot before any slash and no spaces. Relative and absolute
// file paths never qualify.
func LooksLikeHost(input string) bool {
	if input == "" || strings.ContainsAny(input, " \t") {
		return false
	}
	if strings.HasPrefix(input, ".") || strings.HasPrefix(input, "/") || strings.HasPrefix(input, "~") {
		return false
	}

	host, _, _ := strings.Cut(input, "/")
	return strings.Contains(host, ".") && !strings.HasSuffix(host, ".")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so example.com and www.example.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
