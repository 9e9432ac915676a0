package hunt

import "strings"

// minPostingLen is the shortest trimmed fragment that can plausibly be a
// job title; anything shorter is UI chrome.
const minPostingLen = 10

// navArtifactExact is the blocklist of link texts that are navigation, not
// postings. Matched exactly, case-insensitively.
var navArtifactExact = []string{
	"jobs",
	"search for jobs",
	"see all jobs",
	"view all",
	"search other jobs",
}

// navArtifactPrefixes reject fragments that lead with search-result or
// alert-management phrasing.
var navArtifactPrefixes = []string{
	"jobs similar to",
	"jobs in ",
	"manage job",
}

// IsNavigationArtifact reports whether a text fragment is UI chrome
// masquerading as a job listing: search links, alert management text,
// unsubscribe footers. Fragments ending in " jobs" are search-result link
// text ("Engineering Manager jobs"), while titles merely containing "jobs"
// mid-string pass.
func IsNavigationArtifact(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if len(trimmed) < minPostingLen {
		return true
	}

	for _, artifact := range navArtifactExact {
		if lower == artifact {
			return true
		}
	}

	for _, prefix := range navArtifactPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	if strings.Contains(lower, "unsubscribe") || strings.Contains(lower, "privacy") {
		return true
	}

	if strings.HasSuffix(trimmed, " jobs") || strings.HasSuffix(trimmed, " Jobs") {
		return true
	}

	return false
}

// IsSearchLink reports whether a URL points at search results or alert
// settings rather than a single posting.
//
// Examples:
//   - https://www.linkedin.com/comm/jobs/search?keywords=...
//   - https://www.linkedin.com/comm/jobs/alerts
func IsSearchLink(url string) bool {
	return strings.Contains(url, "/jobs/search") ||
		strings.Contains(url, "/search?") ||
		strings.Contains(url, "/jobs/alerts")
}

// CleanTrackingURL strips the query string from a posting URL. Alert emails
// wrap job links in tracking redirects whose parameters vary per send, so
// the bare path is the stable dedup key. Returns "" for an empty input.
func CleanTrackingURL(url string) string {
	if url == "" {
		return ""
	}
	if idx := strings.IndexByte(url, '?'); idx >= 0 {
		return url[:idx]
	}
	return url
}
