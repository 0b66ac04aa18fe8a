// Package output provides hierarchy output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-gff/internal/gff"
)

// TabWriter writes transcript exons in tab-delimited format, one row per
// exon in transcript reading order.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Chrom",
			"Gene",
			"Gene_name",
			"Transcript",
			"Strand",
			"Exon_rank",
			"Exon_start",
			"Exon_end",
			"Exon_id",
			"Shared",
			"CDS_start",
			"CDS_end",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes the exons of a single transcript on chrom.
func (tw *TabWriter) Write(chrom string, t *gff.Transcript) error {
	geneID, geneName := "-", "-"
	if t.Gene != nil {
		geneID = orDash(t.Gene.ID)
		geneName = orDash(t.Gene.Name)
	}

	cdsStart, cdsEnd := "-", "-"
	if t.IsProteinCoding() {
		cdsStart = strconv.FormatUint(t.CDSStart, 10)
		cdsEnd = strconv.FormatUint(t.CDSEnd, 10)
	}

	for i, e := range t.Exons {
		shared := "-"
		if e.IsShared() {
			shared = "YES"
		}
		values := []string{
			chrom,
			geneID,
			geneName,
			orDash(t.ID),
			t.Interval.Strand.String(),
			strconv.Itoa(i + 1),
			strconv.FormatUint(e.Interval.Start, 10),
			strconv.FormatUint(e.Interval.End, 10),
			orDash(e.ID),
			shared,
			cdsStart,
			cdsEnd,
		}
		if _, err := tw.w.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteForest writes every transcript of f, chromosome by chromosome in
// input order, genes in input order.
func (tw *TabWriter) WriteForest(f *gff.Forest) error {
	for _, c := range f.Chromosomes() {
		for _, g := range c.Genes {
			for _, t := range g.Transcripts {
				if err := tw.Write(c.Name, t); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
