// Package llm provides the abstraction over the generative-language
// backend. Callers build a message list and receive a single reply; the
// concrete provider handles API communication and nothing else, so it
// stays reusable outside the coach and generation layers.
package llm

import (
	"context"

	"github.com/entrhq/jobflow/pkg/types"
)

// Provider is the narrow contract to the generative-language backend.
//
// Complete sends the messages and returns the model's reply. Message
// attachments (résumé documents) are encoded by the provider; callers
// never deal with wire formats. Errors are transport or service
// failures; an empty-but-successful response is not an error.
type Provider interface {
	Complete(ctx context.Context, messages []*types.Message) (*types.Message, error)

	// GetModel returns the model name being used.
	GetModel() string
}
