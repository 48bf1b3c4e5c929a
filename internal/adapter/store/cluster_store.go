package store

import (
	"context"
	"fmt"

	"github.com/mattear/doclens-ai/internal/domain"
)

// SaveClusterSet atomically replaces the persisted clustering result with
// the output of a new run. Clusters and their members are written inside one
// transaction so readers never observe a half-replaced set.
func (s *PostgresStore) SaveClusterSet(ctx context.Context, run *domain.ClusterRun, set *domain.ClusterSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cluster_members`); err != nil {
		return fmt.Errorf("clear cluster members: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM clusters`); err != nil {
		return fmt.Errorf("clear clusters: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cluster_runs`); err != nil {
		return fmt.Errorf("clear cluster runs: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cluster_runs (id, method) VALUES ($1, $2)`,
		run.ID, run.Method,
	); err != nil {
		return fmt.Errorf("insert cluster run: %w", err)
	}

	clusterStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO clusters (id, run_id, name, description, keywords, position)
		 VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("prepare cluster insert: %w", err)
	}
	defer clusterStmt.Close()

	memberStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cluster_members (cluster_id, document_id, similarity, position)
		 VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("prepare member insert: %w", err)
	}
	defer memberStmt.Close()

	for ci, c := range set.Clusters {
		keywords, err := keywordsToArray(c.Keywords)
		if err != nil {
			return err
		}
		if _, err := clusterStmt.ExecContext(ctx, c.ID, run.ID, c.Name, c.Description, keywords, ci); err != nil {
			return fmt.Errorf("insert cluster: %w", err)
		}
		for mi, m := range c.Documents {
			if _, err := memberStmt.ExecContext(ctx, c.ID, m.ID, m.Similarity, mi); err != nil {
				return fmt.Errorf("insert cluster member: %w", err)
			}
		}
	}

	return tx.Commit()
}

// LatestClusterSet returns the most recently persisted clustering result.
// An empty (non-nil) set is returned when no run has been stored yet.
func (s *PostgresStore) LatestClusterSet(ctx context.Context) (*domain.ClusterSet, error) {
	query := `SELECT id, name, description, keywords FROM clusters ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clusters: %w", err)
	}
	defer rows.Close()

	set := &domain.ClusterSet{Clusters: []domain.Cluster{}}
	for rows.Next() {
		var c domain.Cluster
		var keywords string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &keywords); err != nil {
			return nil, fmt.Errorf("scan cluster: %w", err)
		}
		c.Keywords = arrayToKeywords(keywords)
		c.Documents = []domain.ClusterDocument{}
		set.Clusters = append(set.Clusters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range set.Clusters {
		members, err := s.clusterMembers(ctx, set.Clusters[i].ID)
		if err != nil {
			return nil, err
		}
		set.Clusters[i].Documents = members
	}
	return set, nil
}

func (s *PostgresStore) clusterMembers(ctx context.Context, clusterID string) ([]domain.ClusterDocument, error) {
	query := `SELECT document_id, similarity FROM cluster_members WHERE cluster_id = $1 ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, clusterID)
	if err != nil {
		return nil, fmt.Errorf("list cluster members: %w", err)
	}
	defer rows.Close()

	members := []domain.ClusterDocument{}
	for rows.Next() {
		var m domain.ClusterDocument
		if err := rows.Scan(&m.ID, &m.Similarity); err != nil {
			return nil, fmt.Errorf("scan cluster member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
