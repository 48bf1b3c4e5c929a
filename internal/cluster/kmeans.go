package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	kmeansSeed     = 42
	kmeansMaxIters = 100
)

// kmeansResult carries the per-document labels and the final centroids.
// Centroids live in the same space as the input vectors.
type kmeansResult struct {
	labels    []int
	centroids *mat.Dense
}

// runKMeans partitions vectors into k groups by iterative centroid
// assignment, minimizing within-cluster squared Euclidean distance.
// Deterministic: the fixed seed drives the k-means++ initialization.
func runKMeans(vectors [][]float64, k int) kmeansResult {
	n := len(vectors)
	dim := len(vectors[0])

	data := mat.NewDense(n, dim, nil)
	for i, v := range vectors {
		data.SetRow(i, v)
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	centroids := seedCentroids(data, k, rng)

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < kmeansMaxIters; iter++ {
		changed := false
		for i := 0; i < n; i++ {
			best, bestDist := 0, math.Inf(1)
			for c := 0; c < k; c++ {
				if d := sqDistance(data.RawRowView(i), centroids.RawRowView(c)); d < bestDist {
					best, bestDist = c, d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := mat.NewDense(k, dim, nil)
		counts := make([]int, k)
		for i := 0; i < n; i++ {
			c := labels[i]
			counts[c]++
			row := data.RawRowView(i)
			for j := 0; j < dim; j++ {
				sums.Set(c, j, sums.At(c, j)+row[j])
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Empty cluster: keep its previous centroid. The assembler
				// drops groups with fewer than two members anyway.
				continue
			}
			for j := 0; j < dim; j++ {
				centroids.Set(c, j, sums.At(c, j)/float64(counts[c]))
			}
		}
	}

	return kmeansResult{labels: labels, centroids: centroids}
}

// seedCentroids picks k initial centroids with k-means++ weighting: each
// subsequent centroid is drawn with probability proportional to its squared
// distance from the nearest already-chosen centroid.
func seedCentroids(data *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, dim := data.Dims()
	centroids := mat.NewDense(k, dim, nil)
	centroids.SetRow(0, data.RawRowView(rng.Intn(n)))

	for c := 1; c < k; c++ {
		weights := make([]float64, n)
		var total float64
		for i := 0; i < n; i++ {
			minDist := math.Inf(1)
			for prev := 0; prev < c; prev++ {
				if d := sqDistance(data.RawRowView(i), centroids.RawRowView(prev)); d < minDist {
					minDist = d
				}
			}
			weights[i] = minDist
			total += minDist
		}

		if total == 0 {
			// All points coincide with existing centroids.
			centroids.SetRow(c, data.RawRowView(rng.Intn(n)))
			continue
		}

		target := rng.Float64() * total
		var cum float64
		for i, w := range weights {
			cum += w
			if cum >= target {
				centroids.SetRow(c, data.RawRowView(i))
				break
			}
		}
	}
	return centroids
}

// sqDistance is the squared Euclidean distance between two equal-length vectors.
func sqDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
