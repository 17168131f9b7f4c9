// Package gen wraps the generation calls against the language backend:
// cover letters, interview preparation guides, and structured résumé
// analysis. The chat coach lives in the coach package; gen covers the
// one-shot request/response calls whose failures propagate to the
// caller.
package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/entrhq/jobflow/pkg/llm"
	"github.com/entrhq/jobflow/pkg/llm/openai"
	"github.com/entrhq/jobflow/pkg/types"
)

var (
	// ErrNoCredential means no API key is configured. Callers surface this
	// before any request round-trip is attempted.
	ErrNoCredential = errors.New("API key is required, add it in settings")

	// ErrMalformedResponse means the model answered, but not with the JSON
	// shape the résumé analysis requires. Distinct from credential and
	// transport errors so callers can message the user accurately.
	ErrMalformedResponse = errors.New("failed to parse analysis result")
)

// Generator issues generation calls through an LLM provider.
type Generator struct {
	provider llm.Provider
}

// Option configures a Generator.
type Option func(*Generator)

// WithProvider substitutes the LLM provider, mainly for tests.
func WithProvider(p llm.Provider) Option {
	return func(g *Generator) {
		g.provider = p
	}
}

// New creates a generator for the given API key. An empty key fails with
// ErrNoCredential — this is the checked precondition for every
// generation call, so construction is the only place the key is needed.
func New(apiKey string, opts ...Option) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoCredential
	}

	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}

	if g.provider == nil {
		provider, err := openai.NewProvider(apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider: %w", err)
		}
		g.provider = provider
	}

	return g, nil
}

// CoverLetter generates a cover letter for the role at the company,
// grounded in the candidate's skills text. The result is stored verbatim
// on the job by the caller.
func (g *Generator) CoverLetter(ctx context.Context, role, company, skills string) (string, error) {
	prompt := fmt.Sprintf(coverLetterPrompt, role, company, skills)
	return g.complete(ctx, prompt, "cover letter")
}

// InterviewGuide generates an interview preparation guide for the role
// at the company.
func (g *Generator) InterviewGuide(ctx context.Context, role, company, skills string) (string, error) {
	prompt := fmt.Sprintf(interviewGuidePrompt, role, company, skills, company)
	return g.complete(ctx, prompt, "interview guide")
}

func (g *Generator) complete(ctx context.Context, prompt, what string) (string, error) {
	reply, err := g.provider.Complete(ctx, []*types.Message{types.NewUserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", what, err)
	}
	if reply.Content == "" {
		return "", fmt.Errorf("failed to generate %s: empty response", what)
	}
	return reply.Content, nil
}

// AnalyzeResume sends a résumé document (PDF or image) to the model and
// returns the extracted fields as a partial résumé update. Extracted
// list items get fresh ids, since the model does not produce them.
//
// A malformed model response fails with ErrMalformedResponse; an
// unsupported or corrupt document fails before any request is made.
func (g *Generator) AnalyzeResume(ctx context.Context, fileBytes []byte) (*types.ResumePatch, error) {
	mime, err := sniffDocument(fileBytes)
	if err != nil {
		return nil, err
	}

	msg := types.NewUserMessage(analyzeResumePrompt)
	msg.Attachment = &types.Attachment{MIME: mime, Data: fileBytes}

	reply, err := g.provider.Complete(ctx, []*types.Message{msg})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	raw := []byte(stripFences(reply.Content))
	if err := validateAnalysis(raw); err != nil {
		return nil, err
	}

	var result struct {
		FullName   *string `json:"fullName"`
		Summary    *string `json:"summary"`
		Skills     *string `json:"skills"`
		Experience []struct {
			Title   string `json:"title"`
			Date    string `json:"date"`
			Content string `json:"content"`
		} `json:"experience"`
		Education []struct {
			Title   string `json:"title"`
			Date    string `json:"date"`
			Content string `json:"content"`
		} `json:"education"`
		Projects []struct {
			Name        string   `json:"name"`
			Description string   `json:"description"`
			Tech        []string `json:"tech"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	patch := &types.ResumePatch{
		FullName: result.FullName,
		Summary:  result.Summary,
		Skills:   result.Skills,
	}
	for _, e := range result.Experience {
		patch.Experience = append(patch.Experience, types.Section{
			ID: uuid.New().String(), Title: e.Title, Date: e.Date, Content: e.Content,
		})
	}
	for _, e := range result.Education {
		patch.Education = append(patch.Education, types.Section{
			ID: uuid.New().String(), Title: e.Title, Date: e.Date, Content: e.Content,
		})
	}
	for _, p := range result.Projects {
		patch.Projects = append(patch.Projects, types.Project{
			ID: uuid.New().String(), Name: p.Name, Description: p.Description, Tech: p.Tech,
		})
	}

	return patch, nil
}

// sniffDocument identifies the document type and verifies it is one the
// backend can read. PDFs additionally get a structural check so an
// unreadable file fails here instead of as an opaque model error.
func sniffDocument(fileBytes []byte) (string, error) {
	if len(fileBytes) == 0 {
		return "", fmt.Errorf("resume document is empty")
	}

	mime := http.DetectContentType(fileBytes)
	switch mime {
	case "application/pdf":
		if err := api.Validate(bytes.NewReader(fileBytes), nil); err != nil {
			return "", fmt.Errorf("resume PDF is unreadable: %w", err)
		}
		return mime, nil
	case "image/png", "image/jpeg", "image/webp":
		return mime, nil
	default:
		return "", fmt.Errorf("unsupported resume document type %q (use PDF, PNG, JPEG, or WebP)", mime)
	}
}

// stripFences drops markdown code fences the model sometimes wraps
// around the JSON despite being told not to.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
