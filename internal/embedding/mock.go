package embedding

import (
	"context"
	"hash/fnv"
)

// MockClient produces deterministic pseudo-embeddings for testing and for
// running without an OpenAI credential. Identical inputs yield identical
// vectors so similarity search stays stable across calls.
type MockClient struct {
	Dim       int
	EmbedErr  error
	EmbedCall []string
}

func NewMockClient() *MockClient {
	return &MockClient{Dim: 1536}
}

func (c *MockClient) Embed(ctx context.Context, text string) ([]float32, error) {
	c.EmbedCall = append(c.EmbedCall, text)
	if c.EmbedErr != nil {
		return nil, c.EmbedErr
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, c.Dim)
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		vec[i] = float32(int64(seed>>33)%1000) / 1000.0
	}
	return vec, nil
}
