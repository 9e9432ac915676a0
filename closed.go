package hunt

import "strings"

// closedPhrases mark a posting as no longer accepting applications.
// Matched case-insensitively as substrings of the cleaned text.
var closedPhrases = []string{
	"no longer accepting applications",
	"this position has been filled",
	"application window has closed",
	"this job is no longer available",
	"applications are no longer being accepted",
	"position is closed",
}

// DetectClosed reports whether the cleaned posting text contains a closure
// phrase. A closed posting still yields its other extracted fields.
func DetectClosed(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range closedPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
