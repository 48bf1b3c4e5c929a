package cluster

import "math"

// DBSCAN parameters: documents within dbscanEps (Euclidean) of each other
// are neighbors; a point whose neighborhood (itself included) holds at
// least dbscanMinSamples points is a core point.
const (
	dbscanEps        = 0.5
	dbscanMinSamples = 2

	// noiseLabel marks documents not density-reachable from any core point.
	noiseLabel = -1
)

// runDBSCAN assigns a cluster label to every vector; points in sparse
// regions receive noiseLabel and are excluded from downstream assembly.
func runDBSCAN(vectors [][]float64, eps float64, minSamples int) []int {
	n := len(vectors)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = noiseLabel
	}
	visited := make([]bool, n)

	next := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := epsNeighbors(vectors, i, eps)
		if len(neighbors) < minSamples {
			continue // stays noise unless later reached from a core point
		}

		labels[i] = next
		expandCluster(vectors, neighbors, next, eps, minSamples, visited, labels)
		next++
	}
	return labels
}

// expandCluster grows a cluster from a core point's neighborhood,
// recursively absorbing the neighborhoods of any core points found.
func expandCluster(vectors [][]float64, neighbors []int, label int, eps float64, minSamples int, visited []bool, labels []int) {
	inQueue := make(map[int]bool, len(neighbors))
	for _, idx := range neighbors {
		inQueue[idx] = true
	}

	for i := 0; i < len(neighbors); i++ {
		idx := neighbors[i]
		if labels[idx] == noiseLabel {
			labels[idx] = label
		}
		if visited[idx] {
			continue
		}
		visited[idx] = true

		next := epsNeighbors(vectors, idx, eps)
		if len(next) < minSamples {
			continue
		}
		for _, nb := range next {
			if !inQueue[nb] {
				inQueue[nb] = true
				neighbors = append(neighbors, nb)
			}
		}
	}
}

// epsNeighbors returns the indices within eps of point i, including i itself.
func epsNeighbors(vectors [][]float64, i int, eps float64) []int {
	var out []int
	for j := range vectors {
		if euclidean(vectors[i], vectors[j]) <= eps {
			out = append(out, j)
		}
	}
	return out
}

func euclidean(a, b []float64) float64 {
	return math.Sqrt(sqDistance(a, b))
}
