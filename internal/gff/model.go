package gff

import (
	"slices"
	"sort"
)

// Gene is a locus grouping one or more transcripts. A gene owns every exon
// of its transcripts; Exons is sorted by interval and holds no two exons
// with equal intervals.
type Gene struct {
	ID       string
	Name     string
	Source   string
	Interval Interval
	Score    float64
	Phase    byte

	Exons       []*Exon
	Transcripts []*Transcript
}

// Transcript is one spliced product of a gene. Exons references exons
// owned by Gene, in the order they were attached (reading order once the
// minus-strand pass has run).
type Transcript struct {
	ID       string
	Name     string
	Source   string
	Interval Interval
	Score    float64
	Phase    byte

	Gene     *Gene
	Exons    []*Exon
	CDSStart uint64 // 0 if no CDS feature was seen
	CDSEnd   uint64
}

// Exon is a genomic interval retained in one or more transcripts of the
// same gene. Transcripts lists every transcript referencing it.
type Exon struct {
	ID       string
	Name     string
	Source   string
	Interval Interval
	Score    float64
	Phase    byte

	Gene        *Gene
	Transcripts []*Transcript
}

// IsProteinCoding returns true if a CDS span was recorded for the transcript.
func (t *Transcript) IsProteinCoding() bool {
	return t.CDSStart > 0 && t.CDSEnd > 0
}

// extendCDS widens the CDS span to cover [start, end].
func (t *Transcript) extendCDS(start, end uint64) {
	if t.CDSStart == 0 || start < t.CDSStart {
		t.CDSStart = start
	}
	if end > t.CDSEnd {
		t.CDSEnd = end
	}
}

// IsShared returns true if more than one transcript references the exon.
func (e *Exon) IsShared() bool {
	return len(e.Transcripts) > 1
}

func (e *Exon) hasTranscript(t *Transcript) bool {
	for _, tt := range e.Transcripts {
		if tt == t {
			return true
		}
	}
	return false
}

func (g *Gene) addTranscript(t *Transcript) {
	t.Gene = g
	g.Transcripts = append(g.Transcripts, t)
}

// AddExon inserts e into the gene's sorted exon list on behalf of t and
// returns the exon t now references. If the gene already holds an exon
// with the same interval, that exon is shared with t and returned instead
// of e.
func (g *Gene) AddExon(e *Exon, t *Transcript) *Exon {
	n := len(g.Exons)

	// Single-isoform genes list their exons in coordinate order.
	if len(g.Transcripts) <= 1 && (n == 0 || g.Exons[n-1].Interval.Less(e.Interval)) {
		g.Exons = append(g.Exons, e)
		g.attach(e, t)
		return e
	}

	i := sort.Search(n, func(i int) bool {
		return !g.Exons[i].Interval.Less(e.Interval)
	})
	if i < n && g.Exons[i].Interval == e.Interval {
		shared := g.Exons[i]
		if !shared.hasTranscript(t) {
			g.attach(shared, t)
		}
		return shared
	}

	g.Exons = slices.Insert(g.Exons, i, e)
	g.attach(e, t)
	return e
}

func (g *Gene) attach(e *Exon, t *Transcript) {
	e.Gene = g
	e.Transcripts = append(e.Transcripts, t)
	t.Exons = append(t.Exons, e)
}
