package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-gff/internal/duckdb"
)

func newExportCmd() *cobra.Command {
	var (
		outputPath string
		appendRows bool
	)

	cmd := &cobra.Command{
		Use:   "export <gff-file>",
		Short: "Export the hierarchy to a DuckDB database",
		Long: `Export genes, transcripts, distinct exons, and transcript-exon links
to DuckDB tables for SQL queries.`,
		Example: `  vibe-gff export annotation.gff3 -o annotation.duckdb
  vibe-gff export --append chr13.gff3 -o annotation.duckdb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return &usageError{errors.New("--output is required")}
			}
			// Ensure output has .duckdb extension
			if ext := filepath.Ext(outputPath); ext != ".duckdb" && ext != ".db" {
				outputPath += ".duckdb"
			}
			return withLogger(func(logger *zap.Logger) error {
				return runExport(cmd, args[0], outputPath, appendRows, logger)
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output DuckDB file path")
	cmd.Flags().BoolVar(&appendRows, "append", false, "Add to an existing database instead of replacing it")
	return cmd
}

func runExport(cmd *cobra.Command, inputPath, outputPath string, appendRows bool, logger *zap.Logger) error {
	fp, err := duckdb.StatFile(inputPath)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	if !appendRows {
		if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove existing database: %w", err)
		}
	}

	store, err := duckdb.Open(outputPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if id, ok, err := store.FindSource(fp); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s is already exported to %s as source %d; skipping\n",
			inputPath, outputPath, id)
		return nil
	}

	f, _, err := loadForest(inputPath, logger)
	if err != nil {
		return err
	}

	sourceID, err := store.WriteSource(fp)
	if err != nil {
		return err
	}
	if err := store.WriteForest(sourceID, f); err != nil {
		return fmt.Errorf("write hierarchy: %w", err)
	}

	c, err := store.Counts()
	if err != nil {
		return err
	}
	logger.Info("export complete",
		zap.String("output", outputPath),
		zap.Int64("source_id", sourceID),
		zap.Bool("compressed", fp.Compressed))
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d genes, %d transcripts, %d exons (%d shared) to %s\n",
		c.Genes, c.Transcripts, c.Exons, c.SharedExons, outputPath)
	return nil
}
