package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mattear/doclens-ai/internal/cluster"
	"github.com/mattear/doclens-ai/internal/domain"
	"github.com/mattear/doclens-ai/internal/port"
)

// ClusterService orchestrates clustering runs over the stored corpus and
// serves related-document lookups from the persisted result.
type ClusterService struct {
	store port.DocumentStore
}

// NewClusterService creates a new cluster service.
func NewClusterService(store port.DocumentStore) *ClusterService {
	return &ClusterService{store: store}
}

// Run loads the full corpus, executes the clustering pipeline, and persists
// the resulting cluster set as the current one.
func (s *ClusterService) Run(ctx context.Context, method string, maxClusters int) (*domain.ClusterSet, error) {
	m, err := cluster.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	corpus := make([]cluster.Document, len(docs))
	for i, d := range docs {
		corpus[i] = cluster.Document{ID: d.ID, Text: d.Content}
	}

	slog.Info("clustering run", "method", m.String(), "documents", len(corpus))
	set, err := cluster.Run(corpus, cluster.Options{Method: m, MaxClusters: maxClusters})
	if err != nil {
		return nil, err
	}

	run := &domain.ClusterRun{ID: uuid.NewString(), Method: m.String()}
	if err := s.store.SaveClusterSet(ctx, run, set); err != nil {
		return nil, fmt.Errorf("persist clusters: %w", err)
	}
	return set, nil
}

// Latest returns the most recently persisted cluster set.
func (s *ClusterService) Latest(ctx context.Context) (*domain.ClusterSet, error) {
	return s.store.LatestClusterSet(ctx)
}

// Related returns the other members of the cluster containing the given
// document, in similarity order. An empty slice means the document is not
// part of any cluster.
func (s *ClusterService) Related(ctx context.Context, docID string) ([]domain.ClusterDocument, error) {
	set, err := s.store.LatestClusterSet(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range set.Clusters {
		for _, m := range c.Documents {
			if m.ID != docID {
				continue
			}
			related := make([]domain.ClusterDocument, 0, len(c.Documents)-1)
			for _, other := range c.Documents {
				if other.ID != docID {
					related = append(related, other)
				}
			}
			return related, nil
		}
	}
	return []domain.ClusterDocument{}, nil
}
