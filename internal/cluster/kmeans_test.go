package cluster

import (
	"reflect"
	"testing"
)

func twoBlobVectors() [][]float64 {
	return [][]float64{
		{1.0, 0.0, 0.1},
		{0.9, 0.1, 0.0},
		{1.0, 0.1, 0.1},
		{0.9, 0.0, 0.0},
		{0.0, 1.0, 0.9},
		{0.1, 0.9, 1.0},
		{0.0, 1.0, 1.0},
		{0.1, 0.9, 0.9},
	}
}

func TestKMeansLabelsInRange(t *testing.T) {
	vectors := twoBlobVectors()
	res := runKMeans(vectors, 2)

	if len(res.labels) != len(vectors) {
		t.Fatalf("got %d labels for %d vectors", len(res.labels), len(vectors))
	}
	for i, l := range res.labels {
		if l < 0 || l >= 2 {
			t.Errorf("label[%d] = %d, want value in [0, 2)", i, l)
		}
	}
}

func TestKMeansSeparatesDistinctBlobs(t *testing.T) {
	vectors := twoBlobVectors()
	res := runKMeans(vectors, 2)

	first := res.labels[:4]
	second := res.labels[4:]
	for _, l := range first {
		if l != first[0] {
			t.Fatalf("first blob split across clusters: %v", res.labels)
		}
	}
	for _, l := range second {
		if l != second[0] {
			t.Fatalf("second blob split across clusters: %v", res.labels)
		}
	}
	if first[0] == second[0] {
		t.Fatalf("blobs merged into one cluster: %v", res.labels)
	}
}

func TestKMeansIsDeterministic(t *testing.T) {
	vectors := twoBlobVectors()
	a := runKMeans(vectors, 2)
	b := runKMeans(vectors, 2)
	if !reflect.DeepEqual(a.labels, b.labels) {
		t.Errorf("repeated runs disagree: %v vs %v", a.labels, b.labels)
	}
}

func TestKMeansIdenticalVectorsDoNotPanic(t *testing.T) {
	vectors := [][]float64{
		{1, 0}, {1, 0}, {1, 0}, {1, 0}, {1, 0},
	}
	res := runKMeans(vectors, 2)
	if len(res.labels) != 5 {
		t.Fatalf("got %d labels, want 5", len(res.labels))
	}
}

func TestClusterCountHeuristic(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{5, 2},
		{9, 2},
		{10, 2},
		{15, 3},
		{20, 4},
		{25, 5},
		{100, 5},
	}
	for _, c := range cases {
		if got := clusterCount(c.n); got != c.want {
			t.Errorf("clusterCount(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
