// Package cluster implements the document clustering pipeline: TF-IDF term
// weighting, optional truncated-SVD dimensionality reduction, partitioning
// by k-means or DBSCAN, per-cluster keyword extraction, pairwise cosine
// similarity, and result assembly.
//
// One call to Run processes one fixed corpus start to finish. Every stage is
// synchronous and the matrices it produces are owned by that run alone.
package cluster

import (
	"fmt"
	"log/slog"

	"github.com/mattear/doclens-ai/internal/domain"
)

// minCorpusSize is the corpus size below which vector-space estimates are
// unreliable; smaller corpora short-circuit to an empty cluster list.
const minCorpusSize = 5

// Document is one corpus entry. Corpus order defines the row index used by
// every stage of the pipeline.
type Document struct {
	ID   string
	Text string
}

// Method selects the clustering strategy.
type Method int

const (
	// MethodKMeans partitions every document into one of k centroids.
	MethodKMeans Method = iota
	// MethodDBSCAN groups by neighborhood density and may label documents
	// as noise.
	MethodDBSCAN
)

// ParseMethod maps the external method names onto the strategy variants.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "kmeans":
		return MethodKMeans, nil
	case "dbscan":
		return MethodDBSCAN, nil
	default:
		return 0, fmt.Errorf("unknown clustering method %q (want kmeans or dbscan)", s)
	}
}

// String returns the external name of the method.
func (m Method) String() string {
	if m == MethodDBSCAN {
		return "dbscan"
	}
	return "kmeans"
}

// Options configures one pipeline run.
type Options struct {
	Method Method
	// MaxClusters is accepted for API compatibility. It is bounded by half
	// the corpus size but not consumed by either strategy; k comes from the
	// corpus-size heuristic alone.
	MaxClusters int
}

// Run executes the full pipeline over the corpus and returns the assembled
// cluster set. Corpora smaller than minCorpusSize yield an empty (non-nil)
// cluster list without running any stage.
func Run(docs []Document, opts Options) (*domain.ClusterSet, error) {
	n := len(docs)
	if n < minCorpusSize {
		slog.Info("corpus too small for clustering", "documents", n, "minimum", minCorpusSize)
		return &domain.ClusterSet{Clusters: []domain.Cluster{}}, nil
	}

	docIDs := make([]string, n)
	texts := make([]string, n)
	seen := make(map[string]bool, n)
	for i, d := range docs {
		if seen[d.ID] {
			return nil, &InputError{Reason: fmt.Sprintf("duplicate document id %q", d.ID)}
		}
		seen[d.ID] = true
		docIDs[i] = d.ID
		texts[i] = d.Text
	}

	model, err := buildTFIDF(texts, stopwordSet())
	if err != nil {
		return nil, err
	}

	vectors := reduceDimensions(model)

	// Bounded but unconsumed; see Options.MaxClusters.
	maxClusters := opts.MaxClusters
	if n/2 < maxClusters {
		maxClusters = n / 2
	}
	slog.Debug("clustering corpus", "documents", n, "terms", len(model.vocab),
		"method", opts.Method.String(), "max_clusters", maxClusters)

	var (
		labels   []int
		keywords map[int][]string
	)
	switch opts.Method {
	case MethodDBSCAN:
		labels = runDBSCAN(vectors, dbscanEps, dbscanMinSamples)
		keywords = densityKeywords(model, labels)
	default:
		k := clusterCount(n)
		res := runKMeans(vectors, k)
		labels = res.labels
		keywords = centroidKeywords(model, res, k)
	}

	sim := cosineMatrix(vectors)
	set := assemble(docIDs, labels, keywords, sim)
	slog.Info("clustering complete", "documents", n, "clusters", len(set.Clusters))
	return set, nil
}

// clusterCount is the centroid-strategy heuristic: scale with corpus size,
// clamped to a range sane for human review.
func clusterCount(n int) int {
	k := n / 5
	if k < 2 {
		k = 2
	}
	if k > 5 {
		k = 5
	}
	return k
}

// centroidKeywords ranks vocabulary terms by centroid weight for every
// k-means cluster.
func centroidKeywords(model *tfidfModel, res kmeansResult, k int) map[int][]string {
	out := make(map[int][]string, k)
	for c := 0; c < k; c++ {
		out[c] = topTermsByWeight(res.centroids.RawRowView(c), model.vocab, keywordCandidates)
	}
	return out
}

// densityKeywords ranks terms by the aggregate TF-IDF weight of each DBSCAN
// cluster's members.
func densityKeywords(model *tfidfModel, labels []int) map[int][]string {
	out := make(map[int][]string)
	for _, label := range distinctLabels(labels) {
		var members []int
		for i, l := range labels {
			if l == label {
				members = append(members, i)
			}
		}
		weights := aggregateRowWeights(model, members)
		out[label] = topTermsByWeight(weights, model.vocab, keywordCandidates)
	}
	return out
}
