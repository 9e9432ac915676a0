package hunt

// Cleaner turns raw posting HTML into plain text suitable for field
// extraction and storage. Implementations drop scripts, UI chrome, and
// trailing boilerplate while preserving block and list structure.
type Cleaner interface {
	// Clean renders an HTML fragment as plain text. Malformed input
	// degrades to best-effort output; absence of content yields "".
	Clean(html string) string
}

// AlertParser extracts candidate postings from a job-alert email.
// The from address selects a source-specific layout parser.
type AlertParser interface {
	Parse(from, subject, body string) ([]ParsedJob, error)
}
