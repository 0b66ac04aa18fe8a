package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genes <gff-file> <chrom:pos>",
		Short:   "List genes overlapping a genomic position",
		Example: `  vibe-gff genes annotation.gff3 chr12:25245350`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chrom, pos, err := parsePosition(args[1])
			if err != nil {
				return &usageError{err}
			}
			return withLogger(func(logger *zap.Logger) error {
				f, _, err := loadForest(args[0], logger)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, g := range f.FindGenes(chrom, pos) {
					name := g.Name
					if name == "" {
						name = "-"
					}
					fmt.Fprintf(out, "%s\t%s\t%s:%d-%d\t%s\t%d transcripts\t%d exons\n",
						g.ID, name, strings.ToLower(chrom), g.Interval.Start, g.Interval.End,
						g.Interval.Strand, len(g.Transcripts), len(g.Exons))
				}
				return nil
			})
		},
	}
}

// parsePosition parses "chrom:pos".
func parsePosition(s string) (string, uint64, error) {
	chrom, p, ok := strings.Cut(s, ":")
	if !ok || chrom == "" {
		return "", 0, fmt.Errorf("invalid position %q: expected chrom:pos", s)
	}
	pos, err := strconv.ParseUint(strings.ReplaceAll(p, ",", ""), 10, 64)
	if err != nil || pos == 0 {
		return "", 0, fmt.Errorf("invalid position %q: bad coordinate", s)
	}
	return chrom, pos, nil
}
