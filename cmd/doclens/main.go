// Command doclens clusters a corpus of documents in one batch run: it reads
// a JSON object of document id to text, groups the documents into topical
// clusters, and writes the cluster set as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattear/doclens-ai/internal/cluster"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("clustering failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		method      string
		maxClusters int
	)

	cmd := &cobra.Command{
		Use:           "doclens",
		Short:         "Cluster documents into topical groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClustering(inputPath, outputPath, method, maxClusters)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "input JSON file with document texts")
	cmd.Flags().StringVar(&outputPath, "output", "", "output JSON file for clustering results")
	cmd.Flags().StringVar(&method, "method", "kmeans", "clustering method: kmeans or dbscan")
	cmd.Flags().IntVar(&maxClusters, "max-clusters", 10, "maximum number of clusters")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runClustering(inputPath, outputPath, method string, maxClusters int) error {
	m, err := cluster.ParseMethod(method)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	docs, err := cluster.DecodeCorpus(in)
	if err != nil {
		return err
	}

	set, err := cluster.Run(docs, cluster.Options{Method: m, MaxClusters: maxClusters})
	if err != nil {
		return err
	}

	// The output file is written only after a fully successful run; a failed
	// run leaves no partial output behind.
	out, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	slog.Info("clustering complete", "clusters", len(set.Clusters), "output", outputPath)
	return nil
}
