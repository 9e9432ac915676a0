// Package gemini provides AI-assisted job analysis using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobhunt-dev/hunt"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements hunt.Analyzer at compile time.
var _ hunt.Analyzer = (*Analyzer)(nil)

// Analyzer implements hunt.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze returns a prose assessment of the posting.
func (a *Analyzer) Analyze(ctx context.Context, job *hunt.Job) (string, error) {
	if err := validateJob(job); err != nil {
		return "", err
	}

	return a.generate(ctx, BuildAnalyzePrompt(job))
}

// Keywords returns the skills and technologies the posting asks for.
func (a *Analyzer) Keywords(ctx context.Context, job *hunt.Job) ([]string, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}

	text, err := a.generate(ctx, BuildKeywordsPrompt(job))
	if err != nil {
		return nil, err
	}

	return ParseKeywords(text), nil
}

func (a *Analyzer) generate(ctx context.Context, prompt string) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", hunt.Errorf(hunt.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

func validateJob(job *hunt.Job) error {
	if job == nil {
		return hunt.Errorf(hunt.EINVALID, "job required")
	}
	if job.RawText == "" {
		return hunt.Errorf(hunt.EINVALID, "job has no description to analyze")
	}
	return nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant evaluating job postings for a software engineer. Base your answers only on the posting text provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildAnalyzePrompt builds the user prompt for a prose assessment.
func BuildAnalyzePrompt(job *hunt.Job) string {
	var sb strings.Builder
	writePosting(&sb, job)
	sb.WriteString("\nSummarize this posting in a short paragraph: the role, the required experience, and anything unusual about the terms. Note any red flags.")
	return sb.String()
}

// BuildKeywordsPrompt builds the user prompt for skill extraction.
func BuildKeywordsPrompt(job *hunt.Job) string {
	var sb strings.Builder
	writePosting(&sb, job)
	sb.WriteString("\nList the skills and technologies this posting asks for as a single comma-separated line. No commentary.")
	return sb.String()
}

func writePosting(sb *strings.Builder, job *hunt.Job) {
	sb.WriteString("<posting>\n")
	fmt.Fprintf(sb, "<title>%s</title>\n", job.Title)
	if job.Employer != "" {
		fmt.Fprintf(sb, "<employer>%s</employer>\n", job.Employer)
	}
	if job.Location != "" {
		fmt.Fprintf(sb, "<location>%s</location>\n", job.Location)
	}
	fmt.Fprintf(sb, "<description>%s</description>\n", job.RawText)
	sb.WriteString("</posting>\n")
}

// ParseKeywords splits a comma-separated model response into clean keywords.
func ParseKeywords(text string) []string {
	var keywords []string
	for _, line := range strings.Split(text, "\n") {
		for _, field := range strings.Split(line, ",") {
			keyword := strings.Trim(strings.TrimSpace(field), ".-• ")
			if keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
	}
	return keywords
}
