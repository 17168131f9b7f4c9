package coach

import (
	"github.com/pkoukk/tiktoken-go"

	"github.com/entrhq/jobflow/pkg/types"
)

// tokenCounter gives a best-effort prompt-size estimate for the
// side-channel log. Since the session resends the whole history on
// every call, the estimate makes the growth visible. Encoding setup can
// fail offline; the counter then degrades to a character heuristic.
type tokenCounter struct {
	enc *tiktoken.Tiktoken
}

func newTokenCounter() *tokenCounter {
	enc, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	if err != nil {
		return &tokenCounter{}
	}
	return &tokenCounter{enc: enc}
}

func (c *tokenCounter) estimate(messages []*types.Message) int {
	total := 0
	for _, m := range messages {
		if c.enc != nil {
			total += len(c.enc.Encode(m.Content, nil, nil))
		} else {
			total += len(m.Content) / 4
		}
	}
	return total
}
