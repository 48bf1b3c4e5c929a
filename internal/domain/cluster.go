package domain

import "time"

// Cluster is one topical group of documents produced by a clustering run.
type Cluster struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Documents   []ClusterDocument `json:"documents"`
}

// ClusterDocument is a cluster member with its average similarity to the
// other members of the same cluster, rounded to three decimal places.
type ClusterDocument struct {
	ID         string  `json:"id"`
	Similarity float64 `json:"similarity"`
}

// ClusterSet is the top-level clustering output: the full list of clusters
// found in one run. Serialized shape: {"clusters": [...]}.
type ClusterSet struct {
	Clusters []Cluster `json:"clusters"`
}

// ClusterRun records when a persisted cluster set was produced and how.
type ClusterRun struct {
	ID        string    `json:"id"         db:"id"`
	Method    string    `json:"method"     db:"method"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
