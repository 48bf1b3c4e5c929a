package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mattear/doclens-ai/internal/port"
)

// EnrichService runs LLM enrichment strategies over stored documents.
type EnrichService struct {
	engine *port.EnrichmentEngine
	store  port.DocumentStore
}

// NewEnrichService creates a new enrichment service with the given engine.
func NewEnrichService(engine *port.EnrichmentEngine, store port.DocumentStore) *EnrichService {
	return &EnrichService{engine: engine, store: store}
}

// Enrich executes the named strategy against one document's text.
func (s *EnrichService) Enrich(ctx context.Context, docID, strategyName string) (json.RawMessage, error) {
	doc, err := s.store.GetDocumentByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	slog.Info("running enrichment", "strategy", strategyName, "document", docID)
	result, err := s.engine.Run(ctx, strategyName, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("run enrichment %s: %w", strategyName, err)
	}
	return result, nil
}

// ListStrategies returns the available strategy names.
func (s *EnrichService) ListStrategies() []string {
	return s.engine.AvailableStrategies()
}
