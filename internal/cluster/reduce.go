package cluster

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Dimensionality reduction kicks in only for corpora large enough that the
// projection preserves more signal than it destroys.
const (
	reduceThreshold = 20
	maxComponents   = 50
)

// reduceDimensions projects the sparse TF-IDF matrix into a dense
// lower-dimensional space via truncated SVD when the corpus exceeds
// reduceThreshold documents; smaller corpora pass through as dense rows.
// Row ordering is preserved.
func reduceDimensions(model *tfidfModel) [][]float64 {
	n := len(model.rows)
	if n <= reduceThreshold {
		return denseRows(model)
	}

	components := maxComponents
	if n-1 < components {
		components = n - 1
	}
	if len(model.vocab) < components {
		components = len(model.vocab)
	}

	dense := mat.NewDense(n, len(model.vocab), nil)
	for i, row := range model.rows {
		for col, v := range row {
			dense.Set(i, col, v)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDThin); !ok {
		slog.Warn("SVD failed to converge, using unreduced vectors", "documents", n)
		return denseRows(model)
	}

	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)

	reduced := make([][]float64, n)
	for i := range reduced {
		vec := make([]float64, components)
		for j := 0; j < components; j++ {
			vec[j] = u.At(i, j) * sigma[j]
		}
		reduced[i] = vec
	}
	return reduced
}

// denseRows materializes the sparse rows as dense vectors.
func denseRows(model *tfidfModel) [][]float64 {
	out := make([][]float64, len(model.rows))
	for i, row := range model.rows {
		vec := make([]float64, len(model.vocab))
		for col, v := range row {
			vec[col] = v
		}
		out[i] = vec
	}
	return out
}
