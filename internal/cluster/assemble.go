package cluster

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/mattear/doclens-ai/internal/domain"
)

// assemble combines labels, keyword candidates, and the similarity matrix
// into the final cluster list. Groups with fewer than two members (and all
// noise-labeled documents) are discarded.
func assemble(docIDs []string, labels []int, keywords map[int][]string, sim [][]float64) *domain.ClusterSet {
	clusters := make([]domain.Cluster, 0)

	for _, label := range distinctLabels(labels) {
		var members []int
		for i, l := range labels {
			if l == label {
				members = append(members, i)
			}
		}
		if len(members) < 2 {
			continue
		}

		docs := make([]domain.ClusterDocument, 0, len(members))
		for _, idx := range members {
			var total float64
			for _, other := range members {
				if other != idx {
					total += sim[idx][other]
				}
			}
			avg := total / float64(len(members)-1)
			docs = append(docs, domain.ClusterDocument{
				ID:         docIDs[idx],
				Similarity: round3(avg),
			})
		}
		sort.SliceStable(docs, func(a, b int) bool {
			return docs[a].Similarity > docs[b].Similarity
		})

		candidates := keywords[label]
		if len(candidates) > keywordsPerCluster {
			candidates = candidates[:keywordsPerCluster]
		}

		clusters = append(clusters, domain.Cluster{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("Document Cluster %d", len(clusters)+1),
			Description: fmt.Sprintf("Group of %d similar documents", len(members)),
			Keywords:    candidates,
			Documents:   docs,
		})
	}

	return &domain.ClusterSet{Clusters: clusters}
}

// distinctLabels returns the non-noise labels in ascending order, which is
// the order clusters were discovered by both strategies.
func distinctLabels(labels []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, l := range labels {
		if l == noiseLabel || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
