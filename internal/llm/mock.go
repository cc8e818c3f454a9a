package llm

import (
	"context"
)

// MockClient is a configurable text-generation client for testing.
// Set the response fields to control what Complete returns.
type MockClient struct {
	CompleteResponse string
	CompleteError    error

	// Call tracking for assertions
	CompleteCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		CompleteResponse: `{"recommendations":[]}`,
	}
}

func (c *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.CompleteCalls = append(c.CompleteCalls, prompt)
	if c.CompleteError != nil {
		return "", c.CompleteError
	}
	return c.CompleteResponse, nil
}

// Reset clears recorded calls and resets responses to defaults.
func (c *MockClient) Reset() {
	c.CompleteResponse = `{"recommendations":[]}`
	c.CompleteError = nil
	c.CompleteCalls = nil
}
