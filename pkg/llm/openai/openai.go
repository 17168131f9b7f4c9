// Package openai implements the llm.Provider interface against any
// OpenAI-compatible chat-completions API. The default endpoint is
// Gemini's OpenAI-compatibility layer, which is what the product ships
// with, but WithBaseURL makes the provider work against OpenAI itself,
// Azure, or a local server.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/openai/openai-go"

	"github.com/entrhq/jobflow/pkg/types"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash-lite"

	// defaultTimeout bounds a single completion round-trip.
	defaultTimeout = 60 * time.Second
)

// Provider implements llm.Provider for OpenAI-compatible APIs.
type Provider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// ProviderOption is a function that configures a Provider.
type ProviderOption func(*Provider)

// WithModel sets the model to use for completions.
func WithModel(model string) ProviderOption {
	return func(p *Provider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithBaseURL sets a custom base URL for OpenAI-compatible APIs.
func WithBaseURL(baseURL string) ProviderOption {
	return func(p *Provider) {
		if baseURL != "" {
			p.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the default HTTP client, e.g. to change the
// request timeout.
func WithHTTPClient(client *http.Client) ProviderOption {
	return func(p *Provider) {
		if client != nil {
			p.httpClient = client
		}
	}
}

// NewProvider creates a provider with the given API key. If apiKey is
// empty it falls back to the GEMINI_API_KEY environment variable; a key
// must come from one of the two.
func NewProvider(apiKey string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (provide via parameter or GEMINI_API_KEY environment variable)")
	}

	p := &Provider{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Complete sends the messages to the chat-completions endpoint and
// returns the model's reply.
func (p *Provider) Complete(ctx context.Context, messages []*types.Message) (*types.Message, error) {
	reqBody := map[string]interface{}{
		"model":    p.model,
		"messages": convertMessages(messages),
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("API request failed with status %d (failed to read error body: %w)", resp.StatusCode, readErr)
		}
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}

	role := completion.Choices[0].Message.Role
	if role == "" {
		role = string(types.RoleAssistant)
	}

	return &types.Message{
		Role:    types.MessageRole(role),
		Content: completion.Choices[0].Message.Content,
	}, nil
}

// GetModel returns the model name being used.
func (p *Provider) GetModel() string {
	return p.model
}

// GetBaseURL returns the base URL being used for API requests.
func (p *Provider) GetBaseURL() string {
	return p.baseURL
}

// convertMessages converts our Message format to OpenAI's
// ChatCompletionMessageParamUnion format. A message with an attachment
// becomes a multi-part user message carrying the document as an inline
// data URL alongside the text.
func convertMessages(messages []*types.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, msg := range messages {
		if msg.Attachment != nil {
			out = append(out, openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(msg.Content),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL(msg.Attachment),
				}),
			}))
			continue
		}

		switch msg.Role {
		case types.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case types.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}

	return out
}

func dataURL(att *types.Attachment) string {
	return "data:" + att.MIME + ";base64," + base64.StdEncoding.EncodeToString(att.Data)
}
