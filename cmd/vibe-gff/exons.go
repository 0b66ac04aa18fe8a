package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-gff/internal/output"
)

func newExonsCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "exons <gff-file>",
		Short: "Write transcript exons in reading order as tab-delimited rows",
		Example: `  vibe-gff exons annotation.gff3
  vibe-gff exons -o exons.tsv annotation.gff3.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogger(func(logger *zap.Logger) error {
				f, _, err := loadForest(args[0], logger)
				if err != nil {
					return err
				}

				var out io.Writer = cmd.OutOrStdout()
				if outputFile != "" {
					file, err := os.Create(outputFile)
					if err != nil {
						return fmt.Errorf("create output file: %w", err)
					}
					defer file.Close()
					out = file
				}

				w := output.NewTabWriter(out)
				if err := w.WriteHeader(); err != nil {
					return fmt.Errorf("write header: %w", err)
				}
				if err := w.WriteForest(f); err != nil {
					return fmt.Errorf("write exons: %w", err)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
