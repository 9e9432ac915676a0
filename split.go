package hunt

import (
	"regexp"
	"strings"
)

// multiSpace matches the 2+ space runs LinkedIn alert emails use to
// separate a title from the employer name.
var multiSpace = regexp.MustCompile(`\s{2,}`)

// SplitPosting splits a one-line posting fragment into title, employer, and
// location. The LinkedIn alert layout ("Title    Employer · Location") is
// tried first; generic separators follow. Employer and location are ""
// when no pattern yields them. Absence is legal, not an error.
func SplitPosting(text string) (title, employer, location string) {
	text = strings.TrimSpace(text)

	if t, e, l, ok := splitLinkedInLayout(text); ok {
		return t, e, l
	}

	// " at " separator, e.g. "Software Engineer at Google".
	if idx := strings.Index(strings.ToLower(text), " at "); idx >= 0 {
		e := strings.TrimSpace(text[idx+len(" at "):])
		if e != "" {
			return strings.TrimSpace(text[:idx]), e, ""
		}
	}

	// Last " - " separator, e.g. "DevOps Lead - Amazon". Skipped when the
	// candidate employer looks like the tail of a hyphenated job title
	// ("Staff Engineer - Platform" must stay whole).
	if idx := strings.LastIndex(text, " - "); idx >= 0 {
		e := strings.TrimSpace(text[idx+len(" - "):])
		lower := strings.ToLower(e)
		if e != "" && !strings.Contains(lower, "engineer") && !strings.Contains(lower, "developer") {
			return strings.TrimSpace(text[:idx]), e, ""
		}
	}

	// Last ", " separator. Skipped when the tail looks like a location
	// clause rather than a company name.
	if idx := strings.LastIndex(text, ", "); idx >= 0 {
		e := strings.TrimSpace(text[idx+len(", "):])
		if e != "" && len(e) < 50 && !strings.Contains(e, "Remote") && !strings.Contains(e, "Hybrid") {
			return strings.TrimSpace(text[:idx]), e, ""
		}
	}

	return text, "", ""
}

// splitLinkedInLayout handles the LinkedIn job-alert card layout: the middot
// separates employer from location, and the last run of 2+ spaces before the
// middot separates title from employer. Both halves must be non-empty for
// the layout to apply.
func splitLinkedInLayout(text string) (title, employer, location string, ok bool) {
	midIdx := strings.Index(text, "·")
	if midIdx < 0 {
		return "", "", "", false
	}

	before := strings.TrimSpace(text[:midIdx])
	location = strings.TrimSpace(text[midIdx+len("·"):])

	runs := multiSpace.FindAllStringIndex(before, -1)
	if len(runs) == 0 {
		return "", "", "", false
	}
	last := runs[len(runs)-1]

	title = strings.TrimSpace(before[:last[0]])
	employer = strings.TrimSpace(before[last[1]:])
	if title == "" || employer == "" {
		return "", "", "", false
	}
	return title, employer, location, true
}
