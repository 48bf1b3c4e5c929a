package port

import (
	"context"
	"encoding/json"
)

// EnrichmentStrategy defines a pluggable document enrichment (Strategy Pattern).
// Each strategy turns one document's raw text into a structured result.
type EnrichmentStrategy interface {
	// Name returns the unique name of this strategy (e.g. "summarize", "tags").
	Name() string

	// Description returns a human-readable description of what this strategy produces.
	Description() string

	// Enrich executes the enrichment on the given text and returns the
	// structured result as JSON. Unparsable model output is recovered with a
	// documented fallback, never surfaced as an error.
	Enrich(ctx context.Context, text string) (json.RawMessage, error)
}

// EnrichmentEngine orchestrates multiple strategies.
type EnrichmentEngine struct {
	strategies map[string]EnrichmentStrategy
}

// NewEnrichmentEngine creates a new engine with the given strategies.
func NewEnrichmentEngine(strategies ...EnrichmentStrategy) *EnrichmentEngine {
	m := make(map[string]EnrichmentStrategy, len(strategies))
	for _, s := range strategies {
		m[s.Name()] = s
	}
	return &EnrichmentEngine{strategies: m}
}

// Run executes the named strategy.
func (e *EnrichmentEngine) Run(ctx context.Context, strategyName string, text string) (json.RawMessage, error) {
	s, ok := e.strategies[strategyName]
	if !ok {
		return nil, ErrStrategyNotFound
	}
	return s.Enrich(ctx, text)
}

// AvailableStrategies returns the names of all registered strategies.
func (e *EnrichmentEngine) AvailableStrategies() []string {
	names := make([]string, 0, len(e.strategies))
	for name := range e.strategies {
		names = append(names, name)
	}
	return names
}
