package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mattear/doclens-ai/internal/cluster"
	"github.com/mattear/doclens-ai/internal/domain"
	"github.com/mattear/doclens-ai/internal/port"
)

// fakeStore is an in-memory DocumentStore for service tests.
type fakeStore struct {
	docs      []domain.Document
	savedRun  *domain.ClusterRun
	savedSet  *domain.ClusterSet
	latestSet *domain.ClusterSet
}

func (f *fakeStore) CreateDocument(_ context.Context, d *domain.Document) (*domain.Document, error) {
	f.docs = append(f.docs, *d)
	return d, nil
}

func (f *fakeStore) GetDocumentByID(_ context.Context, id string) (*domain.Document, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return &f.docs[i], nil
		}
	}
	return nil, port.ErrDocumentNotFound
}

func (f *fakeStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	return f.docs, nil
}

func (f *fakeStore) DeleteDocument(_ context.Context, id string) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return port.ErrDocumentNotFound
}

func (f *fakeStore) SaveClusterSet(_ context.Context, run *domain.ClusterRun, set *domain.ClusterSet) error {
	f.savedRun = run
	f.savedSet = set
	f.latestSet = set
	return nil
}

func (f *fakeStore) LatestClusterSet(_ context.Context) (*domain.ClusterSet, error) {
	if f.latestSet == nil {
		return &domain.ClusterSet{Clusters: []domain.Cluster{}}, nil
	}
	return f.latestSet, nil
}

func seededStore(texts []string) *fakeStore {
	store := &fakeStore{}
	for i, text := range texts {
		store.docs = append(store.docs, domain.Document{
			ID:      "doc-" + string(rune('a'+i)),
			Title:   "Document " + string(rune('A'+i)),
			Content: text,
		})
	}
	return store
}

func TestClusterServiceRunPersistsResult(t *testing.T) {
	texts := make([]string, 0, 10)
	for i := 0; i < 5; i++ {
		texts = append(texts, "contract agreement breach damages payment invoice schedule")
	}
	for i := 0; i < 5; i++ {
		texts = append(texts, "contract agreement breach damages property easement deed")
	}
	store := seededStore(texts)
	svc := NewClusterService(store)

	set, err := svc.Run(context.Background(), "kmeans", 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(set.Clusters) == 0 {
		t.Fatal("expected at least one cluster")
	}
	if store.savedSet != set {
		t.Error("result was not persisted via SaveClusterSet")
	}
	if store.savedRun == nil || store.savedRun.Method != "kmeans" {
		t.Errorf("savedRun = %+v", store.savedRun)
	}
	if store.savedRun.ID == "" {
		t.Error("run ID must be set")
	}
}

func TestClusterServiceRunSmallCorpus(t *testing.T) {
	store := seededStore([]string{"one document only about contracts and agreements"})
	svc := NewClusterService(store)

	set, err := svc.Run(context.Background(), "dbscan", 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(set.Clusters) != 0 {
		t.Errorf("got %d clusters for a 1-document corpus, want 0", len(set.Clusters))
	}
	if store.savedSet == nil {
		t.Error("empty result should still be persisted")
	}
}

func TestClusterServiceRunUnknownMethod(t *testing.T) {
	svc := NewClusterService(&fakeStore{})

	_, err := svc.Run(context.Background(), "agglomerative", 10)
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !strings.Contains(err.Error(), "agglomerative") {
		t.Errorf("error should name the rejected method, got %v", err)
	}
}

func TestClusterServiceRelated(t *testing.T) {
	store := &fakeStore{
		latestSet: &domain.ClusterSet{Clusters: []domain.Cluster{
			{
				ID:   "c1",
				Name: "Document Cluster 1",
				Documents: []domain.ClusterDocument{
					{ID: "a", Similarity: 0.9},
					{ID: "b", Similarity: 0.8},
					{ID: "c", Similarity: 0.7},
				},
			},
		}},
	}
	svc := NewClusterService(store)

	related, err := svc.Related(context.Background(), "b")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(related) != 2 || related[0].ID != "a" || related[1].ID != "c" {
		t.Errorf("related = %+v", related)
	}

	none, err := svc.Related(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("unclustered document should yield empty non-nil slice, got %+v", none)
	}
}

func TestClusterServiceRunInputError(t *testing.T) {
	store := seededStore([]string{"a b", "a b", "a b", "a b", "a b"})
	store.docs[1].ID = store.docs[0].ID
	svc := NewClusterService(store)

	_, err := svc.Run(context.Background(), "kmeans", 10)
	var inputErr *cluster.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError for duplicate document IDs, got %v", err)
	}
}
