package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-gff/internal/gff"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <gff-file>",
		Short: "Print hierarchy statistics for a GFF3 file",
		Example: `  vibe-gff summary annotation.gff3
  vibe-gff summary --skip-unresolved annotation.gff3.gz
  zcat annotation.gff3.gz | vibe-gff summary -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogger(func(logger *zap.Logger) error {
				f, s, err := loadForest(args[0], logger)
				if err != nil {
					return err
				}
				writeSummary(cmd.OutOrStdout(), f, s)
				return nil
			})
		},
	}
}

func writeSummary(w io.Writer, f *gff.Forest, s gff.Stats) {
	fmt.Fprintf(w, "Lines:          %d\n", s.Lines)
	fmt.Fprintf(w, "  Comments:     %d\n", s.Comments)
	fmt.Fprintf(w, "  Skipped:      %d\n", s.Skipped)
	fmt.Fprintf(w, "Sequences:      %d\n", f.SeqNames().Len())
	fmt.Fprintf(w, "Genes:          %d\n", s.Genes)
	fmt.Fprintf(w, "Transcripts:    %d\n", s.Transcripts)
	fmt.Fprintf(w, "Exon lines:     %d\n", s.ExonLines)
	fmt.Fprintf(w, "Distinct exons: %d\n", s.Exons)
	fmt.Fprintf(w, "Shared exons:   %d\n", s.SharedExons)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-16s %8s %12s %8s %8s %8s\n", "#Chrom", "Genes", "Transcripts", "Plus", "Minus", "Unknown")
	for _, c := range f.Chromosomes() {
		fmt.Fprintf(w, "%-16s %8d %12d %8d %8d %8d\n", c.Name, len(c.Genes), c.TranscriptCount(),
			len(c.Transcripts(gff.StrandPlus)), len(c.Transcripts(gff.StrandMinus)),
			len(c.Transcripts(gff.StrandUnknown)))
	}
}
