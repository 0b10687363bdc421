// Package clientinfo renders a human-readable description of an HTTP client
// from its User-Agent header, for request logs and diagnostics. Parsing is
// best-effort; unrecognised agents still produce a stable non-empty string.
package clientinfo

import (
	"strings"

	"github.com/mssola/useragent"
)

// Describe returns a short display string such as "Chrome on Mac OS X".
// An empty user agent yields "Unknown Device".
func Describe(rawUA string) string {
	if rawUA == "" {
		return "Unknown Device"
	}

	ua := useragent.New(rawUA)

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	os := ua.OSInfo().Name
	if os == "" {
		os = ua.Platform()
	}
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + os)
}
