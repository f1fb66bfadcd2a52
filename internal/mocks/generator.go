package mocks

import (
	"context"
	"sync"
)

// MockGenerator is a mock implementation of assistant.Generator
type MockGenerator struct {
	mu           sync.Mutex
	Response     string
	Err          error
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Prompts      []string
}

func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Calls returns how many prompts were sent
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
