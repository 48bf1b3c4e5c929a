package cluster

import "sort"

// keywordCandidates is how many ranked terms each cluster keeps internally;
// only the top keywordsPerCluster survive into the final output.
const (
	keywordCandidates  = 10
	keywordsPerCluster = 5
)

// topTermsByWeight ranks vocabulary terms by the given weight vector,
// descending, and returns up to n terms. Column index maps into the
// vocabulary; ties break toward the alphabetically earlier term so results
// are stable across runs.
func topTermsByWeight(weights []float64, vocab []string, n int) []string {
	type scored struct {
		col    int
		weight float64
	}
	cols := make([]scored, 0, len(weights))
	for col, w := range weights {
		if col >= len(vocab) {
			break
		}
		cols = append(cols, scored{col: col, weight: w})
	}

	sort.SliceStable(cols, func(a, b int) bool {
		return cols[a].weight > cols[b].weight
	})

	if len(cols) > n {
		cols = cols[:n]
	}
	terms := make([]string, len(cols))
	for i, s := range cols {
		terms[i] = vocab[s.col]
	}
	return terms
}

// aggregateRowWeights sums the sparse TF-IDF rows of the given member
// documents into one dense weight vector over the vocabulary. Used by the
// density strategy, which has no centroids to rank against.
func aggregateRowWeights(model *tfidfModel, members []int) []float64 {
	weights := make([]float64, len(model.vocab))
	for _, idx := range members {
		for col, v := range model.rows[idx] {
			weights[col] += v
		}
	}
	return weights
}
