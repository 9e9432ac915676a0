package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobhunt-dev/hunt"
)

// Ensure AlertParser implements hunt.AlertParser at compile time.
var _ hunt.AlertParser = (*AlertParser)(nil)

// linkedInJobLinks selects posting links in LinkedIn alert emails.
const linkedInJobLinks = `a[href*='linkedin.com/comm/jobs']`

// indeedJobLinks selects any Indeed link; job links are then narrowed by
// URL shape since Indeed mixes posting and navigation links freely.
const indeedJobLinks = `a[href*='indeed.com']`

// genericTitlePattern recognizes common engineering job titles in emails
// without a known layout.
var genericTitlePattern = regexp.MustCompile(
	`(?i)(senior|staff|principal|lead|junior|sr\.?|jr\.?)?\s*` +
		`(software|devops|platform|infrastructure|site reliability|sre|cloud|backend|frontend|full[- ]?stack|data|ml|machine learning)\s*` +
		`(engineer|developer|architect|manager|lead|specialist)`)

// AlertParser extracts candidate postings from job-alert email bodies.
// The sender address selects the layout: LinkedIn and Indeed have
// recognizable card structures; anything else falls back to title-pattern
// scanning over the flattened text.
type AlertParser struct{}

// NewAlertParser creates a new AlertParser.
func NewAlertParser() *AlertParser {
	return &AlertParser{}
}

// Parse extracts candidate postings from one email.
func (p *AlertParser) Parse(from, subject, body string) ([]hunt.ParsedJob, error) {
	fromLower := strings.ToLower(from)
	switch {
	case strings.Contains(fromLower, "linkedin.com"):
		return parseLinkedInAlert(body)
	case strings.Contains(fromLower, "indeed.com"):
		return parseIndeedAlert(body)
	default:
		return parseGenericAlert(body)
	}
}

func parseLinkedInAlert(body string) ([]hunt.ParsedJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, hunt.Errorf(hunt.EINVALID, "failed to parse email HTML: %v", err)
	}

	var jobs []hunt.ParsedJob
	doc.Find(linkedInJobLinks).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())

		if text == "" || hunt.IsNavigationArtifact(text) || hunt.IsSearchLink(href) {
			return
		}

		if job, ok := candidateFromLink(text, href, hunt.SourceLinkedIn); ok {
			jobs = append(jobs, job)
		}
	})

	// Alerts without recognizable card links still mention titles in the
	// surrounding copy.
	if len(jobs) == 0 {
		jobs = scanTitles(doc.Text(), hunt.SourceLinkedIn)
	}

	return dedupeByTitle(jobs), nil
}

func parseIndeedAlert(body string) ([]hunt.ParsedJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, hunt.Errorf(hunt.EINVALID, "failed to parse email HTML: %v", err)
	}

	var jobs []hunt.ParsedJob
	doc.Find(indeedJobLinks).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())

		if text == "" || hunt.IsNavigationArtifact(text) || hunt.IsSearchLink(href) {
			return
		}
		if !isIndeedJobURL(href) {
			return
		}

		if job, ok := candidateFromLink(text, href, hunt.SourceIndeed); ok {
			jobs = append(jobs, job)
		}
	})

	return dedupeByTitle(jobs), nil
}

func parseGenericAlert(body string) ([]hunt.ParsedJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, hunt.Errorf(hunt.EINVALID, "failed to parse email HTML: %v", err)
	}
	return dedupeByTitle(scanTitles(doc.Text(), hunt.SourceEmail)), nil
}

// candidateFromLink builds a ParsedJob from one posting link's text and href.
func candidateFromLink(text, href string, source hunt.Source) (hunt.ParsedJob, bool) {
	title, employer, location := hunt.SplitPosting(text)
	if title == "" {
		return hunt.ParsedJob{}, false
	}

	payMin, payMax := hunt.ExtractPayRange(text)
	return hunt.ParsedJob{
		Title:    title,
		Employer: employer,
		URL:      hunt.CleanTrackingURL(href),
		Location: location,
		PayMin:   payMin,
		PayMax:   payMax,
		JobCode:  hunt.ExtractJobCode(text + " " + href),
		Closed:   hunt.DetectClosed(text),
		Source:   source,
		RawText:  text,
	}, true
}

// isIndeedJobURL reports whether an Indeed link points at a posting rather
// than navigation.
func isIndeedJobURL(href string) bool {
	return strings.Contains(href, "/viewjob") ||
		strings.Contains(href, "/rc/clk") ||
		strings.Contains(href, "jk=")
}

// scanTitles extracts candidates from flattened email text by matching
// common engineering title patterns.
func scanTitles(text string, source hunt.Source) []hunt.ParsedJob {
	var jobs []hunt.ParsedJob
	for _, match := range genericTitlePattern.FindAllString(text, -1) {
		title := strings.TrimSpace(match)
		if len(title) <= 5 {
			continue
		}
		payMin, payMax := hunt.ExtractPayRange(text)
		raw := text
		if len(raw) > 500 {
			raw = raw[:500]
		}
		jobs = append(jobs, hunt.ParsedJob{
			Title:   title,
			PayMin:  payMin,
			PayMax:  payMax,
			Source:  source,
			RawText: raw,
		})
	}
	return jobs
}

// dedupeByTitle drops candidates whose normalized title was already seen in
// the same email. Alert emails repeat the same card in header and body.
func dedupeByTitle(jobs []hunt.ParsedJob) []hunt.ParsedJob {
	seen := make(map[string]bool, len(jobs))
	kept := jobs[:0]
	for _, job := range jobs {
		key := hunt.NormalizeTitle(job.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, job)
	}
	return kept
}
