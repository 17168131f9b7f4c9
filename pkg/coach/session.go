package coach

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/entrhq/jobflow/pkg/gen"
	"github.com/entrhq/jobflow/pkg/llm"
	"github.com/entrhq/jobflow/pkg/llm/openai"
	"github.com/entrhq/jobflow/pkg/logging"
	"github.com/entrhq/jobflow/pkg/store"
	"github.com/entrhq/jobflow/pkg/types"
)

// State is the session's send gate.
type State int

const (
	// StateIdle means no request is in flight; Send is accepted.
	StateIdle State = iota
	// StateAwaitingReply means one request is in flight; concurrent
	// sends are rejected, not queued.
	StateAwaitingReply
)

var (
	// ErrBusy rejects a send while a reply is still in flight.
	ErrBusy = errors.New("a reply is already in flight")

	// ErrEmptyMessage rejects an empty or whitespace-only message.
	ErrEmptyMessage = errors.New("message is empty")
)

// ProviderFactory builds an LLM provider for the credential configured
// at send time. The credential lives in settings and can change between
// sends, so the provider is constructed per call.
type ProviderFactory func(apiKey string) (llm.Provider, error)

// Session manages the ordered message history of the coach dialog and
// the protocol for one outbound exchange per user message.
//
// History is append-only and unbounded within a session; every turn is
// resent on every call, so latency and cost grow with conversation
// length. That is a known property of the design, not something the
// session tries to fix.
type Session struct {
	mu      sync.Mutex
	state   State
	history []*types.Message

	store       *store.Store
	newProvider ProviderFactory
	timeout     time.Duration
	log         *logging.Logger
	counter     *tokenCounter
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithProviderFactory substitutes how providers are built, mainly for
// tests.
func WithProviderFactory(f ProviderFactory) SessionOption {
	return func(s *Session) {
		s.newProvider = f
	}
}

// WithTimeout bounds each outbound call. The upstream design leaves a
// hung call waiting forever; the session adds this bound so AwaitingReply
// cannot become a permanent state.
func WithTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewSession creates a session over the given store. History is seeded
// with the assistant's greeting.
func NewSession(st *store.Store, opts ...SessionOption) *Session {
	log, _ := logging.NewLogger("coach")

	s := &Session{
		store:   st,
		history: []*types.Message{types.NewAssistantMessage(Greeting)},
		timeout: 60 * time.Second,
		log:     log,
		counter: newTokenCounter(),
		newProvider: func(apiKey string) (llm.Provider, error) {
			return openai.NewProvider(apiKey)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current send-gate state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns a snapshot of the conversation so far.
func (s *Session) History() []*types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Send submits a user message and returns the assistant's reply.
//
// The send is rejected — without touching history — when the text is
// empty, a reply is already in flight, or no API credential is
// configured. An accepted send appends the user turn, dispatches the
// briefing plus the full prior history plus the new message, and always
// returns the session to Idle: on backend failure the assistant turn is
// the fixed fallback text and the error goes only to the log.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	apiKey := s.store.APIKey()
	if apiKey == "" {
		return "", gen.ErrNoCredential
	}

	s.mu.Lock()
	if s.state == StateAwaitingReply {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.state = StateAwaitingReply
	prior := make([]*types.Message, len(s.history))
	copy(prior, s.history)
	s.history = append(s.history, types.NewUserMessage(text))
	s.mu.Unlock()

	// The store stays mutable while the call is in flight: the briefing
	// is a snapshot taken here, and the store's own locks are not held
	// across the request.
	briefing := BuildBriefing(s.store.Jobs(), s.store.Resume())

	messages := make([]*types.Message, 0, len(prior)+2)
	messages = append(messages, types.NewSystemMessage(briefing))
	messages = append(messages, prior...)
	messages = append(messages, types.NewUserMessage(text))

	s.log.Debugf("sending %d messages (~%d prompt tokens, history resent in full)",
		len(messages), s.counter.estimate(messages))

	reply, err := s.dispatch(ctx, apiKey, messages)

	s.mu.Lock()
	if err != nil {
		s.log.Errorf("coach call failed: %v", err)
		reply = FallbackReply
	}
	s.history = append(s.history, types.NewAssistantMessage(reply))
	s.state = StateIdle
	s.mu.Unlock()

	return reply, nil
}

func (s *Session) dispatch(ctx context.Context, apiKey string, messages []*types.Message) (string, error) {
	provider, err := s.newProvider(apiKey)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := provider.Complete(callCtx, messages)
	if err != nil {
		return "", err
	}
	if reply.Content == "" {
		return emptyReply, nil
	}
	return reply.Content, nil
}
