package analyst

import (
	"context"
	"sync"
)

// staticInvoker is a mock transport that always returns the same reply and
// remembers the last prompt for assertions.
type staticInvoker struct {
	reply string

	mu     sync.Mutex
	prompt string
}

func (s *staticInvoker) Generate(ctx context.Context, model string, prompt string) (string, error) {
	s.mu.Lock()
	s.prompt = prompt
	s.mu.Unlock()
	return s.reply, nil
}

func (s *staticInvoker) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// errInvoker is a mock transport that always fails.
type errInvoker struct {
	err error
}

func (e *errInvoker) Generate(ctx context.Context, model string, prompt string) (string, error) {
	return "", e.err
}

// NewForTesting creates a Client over the given transport, skipping the
// credential requirement and the real Gemini client.
func NewForTesting(inv Invoker) (*Client, error) {
	return NewClient(context.Background(), WithInvoker(inv))
}
