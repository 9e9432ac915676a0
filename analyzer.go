package hunt

import "context"

// Analyzer produces AI-assisted assessments of stored jobs.
type Analyzer interface {
	// Analyze returns a prose assessment of the posting.
	Analyze(ctx context.Context, job *Job) (string, error)

	// Keywords returns the skills and technologies the posting asks for.
	Keywords(ctx context.Context, job *Job) ([]string, error)
}
