//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestAnalyzer_Integration_AnalyzesPosting(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	analyzer := gemini.NewAnalyzer(client)

	job := &hunt.Job{
		Title:    "Senior Platform Engineer",
		Employer: "Acme Corp",
		RawText:  "We are looking for a platform engineer with deep Go and Kubernetes experience to build our internal deployment tooling.",
	}

	assessment, err := analyzer.Analyze(ctx, job)
	require.NoError(t, err)
	assert.NotEmpty(t, assessment)

	keywords, err := analyzer.Keywords(ctx, job)
	require.NoError(t, err)
	assert.NotEmpty(t, keywords)
}
