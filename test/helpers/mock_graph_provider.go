package helpers

import (
	"context"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
)

// MockGraphProvider serves a fixed graph snapshot
type MockGraphProvider struct {
	graph       *galaxy.Graph
	err         error
	Invalidated int
}

// NewMockGraphProvider creates a provider that always serves the given graph
func NewMockGraphProvider(graph *galaxy.Graph) *MockGraphProvider {
	return &MockGraphProvider{graph: graph}
}

// FailWith makes Snapshot return the given error
func (m *MockGraphProvider) FailWith(err error) {
	m.err = err
}

// Snapshot implements galaxy.GraphProvider
func (m *MockGraphProvider) Snapshot(ctx context.Context) (*galaxy.Graph, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.graph, nil
}

// Invalidate implements galaxy.GraphProvider
func (m *MockGraphProvider) Invalidate() {
	m.Invalidated++
}
