package mock

import "github.com/jobhunt-dev/hunt"

var _ hunt.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of hunt.Cleaner.
type Cleaner struct {
	CleanFn func(html string) string
}

func (c *Cleaner) Clean(html string) string {
	return c.CleanFn(html)
}

var _ hunt.AlertParser = (*AlertParser)(nil)

// AlertParser is a mock implementation of hunt.AlertParser.
type AlertParser struct {
	ParseFn func(from, subject, body string) ([]hunt.ParsedJob, error)
}

func (p *AlertParser) Parse(from, subject, body string) ([]hunt.ParsedJob, error) {
	return p.ParseFn(from, subject, body)
}
