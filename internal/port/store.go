package port

import (
	"context"

	"github.com/mattear/doclens-ai/internal/domain"
)

// DocumentStore abstracts persistence of documents and clustering results.
type DocumentStore interface {
	// CreateDocument inserts a new document record.
	CreateDocument(ctx context.Context, d *domain.Document) (*domain.Document, error)

	// GetDocumentByID retrieves a single document.
	GetDocumentByID(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents ordered by creation time.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// SaveClusterSet atomically replaces the persisted clustering result.
	SaveClusterSet(ctx context.Context, run *domain.ClusterRun, set *domain.ClusterSet) error

	// LatestClusterSet returns the most recently persisted clustering result,
	// or an empty set when no run has been stored.
	LatestClusterSet(ctx context.Context) (*domain.ClusterSet, error)
}
