package mock

import (
	"context"

	"github.com/jobhunt-dev/hunt"
)

var _ hunt.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of hunt.Analyzer.
type Analyzer struct {
	AnalyzeFn  func(ctx context.Context, job *hunt.Job) (string, error)
	KeywordsFn func(ctx context.Context, job *hunt.Job) ([]string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, job *hunt.Job) (string, error) {
	return a.AnalyzeFn(ctx, job)
}

func (a *Analyzer) Keywords(ctx context.Context, job *hunt.Job) ([]string, error) {
	return a.KeywordsFn(ctx, job)
}
