package gff

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// DefaultMinLineLength is the length below which a line is treated as blank.
const DefaultMinLineLength = 10

// Stats counts what a Builder has seen.
type Stats struct {
	Lines       int // lines offered to the builder
	Comments    int // comment and blank lines
	Skipped     int // malformed lines and lines with unresolved parents
	Genes       int
	Transcripts int
	ExonLines   int // exon attachments requested, one per exon parent
	Exons       int // distinct exon objects created
	SharedExons int // exon attachments collapsed onto an existing exon
}

// Builder folds feature lines into a Forest. Lines must be grouped by
// sequence name and list every parent before its children.
type Builder struct {
	seqs           *SeqTable
	forest         *Forest
	cur            *Chromosome
	logger         *zap.Logger
	minLineLen     int
	skipUnresolved bool
	lineNumber     int
	stats          Stats
	finished       bool
}

// NewBuilder creates a builder with its own sequence name table.
func NewBuilder() *Builder {
	seqs := NewSeqTable()
	return &Builder{
		seqs:       seqs,
		forest:     newForest(seqs),
		logger:     zap.NewNop(),
		minLineLen: DefaultMinLineLength,
	}
}

// SetLogger sets the logger receiving parse warnings.
func (b *Builder) SetLogger(l *zap.Logger) {
	b.logger = l
}

// SetSeqTable makes the builder intern sequence names into t. It must be
// called before the first line is added.
func (b *Builder) SetSeqTable(t *SeqTable) {
	b.seqs = t
	b.forest.seqs = t
}

// SetMinLineLength sets the length below which lines are skipped as blank.
func (b *Builder) SetMinLineLength(n int) {
	b.minLineLen = n
}

// SetSkipUnresolved configures whether a line whose parent cannot be found
// is dropped with a warning instead of aborting the build.
func (b *Builder) SetSkipUnresolved(skip bool) {
	b.skipUnresolved = skip
}

// Stats returns the counters accumulated so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Build reads src to exhaustion and returns the finished forest.
func (b *Builder) Build(src LineSource) (*Forest, error) {
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read GFF line: %w", err)
		}
		if err := b.AddLine(line); err != nil {
			return nil, err
		}
	}
	return b.Finish(), nil
}

// Finish runs the minus-strand exon ordering pass once and returns the
// forest. No lines may be added afterwards.
func (b *Builder) Finish() *Forest {
	if !b.finished {
		b.forest.reverseMinusStrandExons()
		b.finished = true
	}
	return b.forest
}

// isComment reports whether raw is a comment or too short to be a feature.
func (b *Builder) isComment(raw string) bool {
	return len(raw) < b.minLineLen || strings.HasPrefix(strings.TrimLeft(raw, " \t\r\n\v\f"), "#")
}

// AddLine parses raw and folds it into the forest. It returns an
// *UnresolvedParentError when a parent is missing and unresolved parents
// are not being skipped.
func (b *Builder) AddLine(raw string) error {
	if b.finished {
		return errors.New("gff: line added after Finish")
	}
	b.lineNumber++
	b.stats.Lines++

	if b.isComment(raw) {
		b.stats.Comments++
		return nil
	}

	l := ParseLine(raw)
	for _, w := range l.Warnings {
		b.logger.Warn(w,
			zap.Int("line_number", b.lineNumber),
			zap.String("line", raw))
	}
	if l.Malformed {
		b.skip("skipping malformed GFF line", raw)
		return nil
	}
	if !l.GFF3 {
		b.skip("skipping GFF line without ID or Parent", raw)
		return nil
	}

	b.enterChromosome(l.Chrom)

	switch l.Type {
	case FeatureGene:
		b.addGene(l)
	case FeatureMRNA:
		return b.addTranscript(l)
	case FeatureExon:
		return b.addExon(l)
	case FeatureCDS, FeatureStartCodon, FeatureStopCodon:
		b.addCDS(l)
	}
	return nil
}

func (b *Builder) skip(msg, raw string) {
	b.stats.Skipped++
	b.logger.Warn(msg,
		zap.Int("line_number", b.lineNumber),
		zap.String("line", raw))
}

// enterChromosome opens a new container whenever the sequence name changes.
// Earlier containers are never reopened.
func (b *Builder) enterChromosome(name string) {
	if b.cur != nil && b.cur.Name == name {
		return
	}
	b.cur = newChromosome(name, b.seqs.Intern(name))
	b.forest.chroms = append(b.forest.chroms, b.cur)
}

func (b *Builder) interval(l *Line) Interval {
	return NewInterval(b.cur.SeqID, l.Start, l.End, l.Strand)
}

func (b *Builder) addGene(l *Line) {
	b.cur.addGene(&Gene{
		ID:       l.ID,
		Name:     l.Name,
		Source:   l.Source,
		Interval: b.interval(l),
		Score:    l.Score,
		Phase:    l.Phase,
	})
	b.stats.Genes++
}

func (b *Builder) addTranscript(l *Line) error {
	parent := l.ParentID()
	g := b.cur.Gene(parent)
	if g == nil {
		return b.unresolved(l, parent, FeatureGene)
	}

	t := &Transcript{
		ID:       l.ID,
		Name:     l.Name,
		Source:   l.Source,
		Interval: b.interval(l),
		Score:    l.Score,
		Phase:    l.Phase,
	}
	g.addTranscript(t)
	b.cur.transcripts.Add(t)
	b.stats.Transcripts++
	return nil
}

// addExon attaches the exon to every transcript listed in its Parent.
func (b *Builder) addExon(l *Line) error {
	if len(l.Parents) == 0 {
		return b.unresolved(l, "", FeatureMRNA)
	}
	for i, parent := range l.Parents {
		// a parent listed twice attaches once
		if slices.Contains(l.Parents[:i], parent) {
			continue
		}
		t := b.cur.Transcript(parent, l.Strand)
		if t == nil {
			if err := b.unresolved(l, parent, FeatureMRNA); err != nil {
				return err
			}
			continue
		}

		e := &Exon{
			ID:       l.ID,
			Name:     l.Name,
			Source:   l.Source,
			Interval: b.interval(l),
			Score:    l.Score,
			Phase:    l.Phase,
		}
		b.stats.ExonLines++
		if stored := t.Gene.AddExon(e, t); stored == e {
			b.stats.Exons++
		} else {
			b.stats.SharedExons++
		}
	}
	return nil
}

// addCDS widens the CDS span of each resolvable parent transcript. CDS
// features are not part of the hierarchy, so a missing parent is only
// a warning.
func (b *Builder) addCDS(l *Line) {
	for _, parent := range l.Parents {
		t := b.cur.Transcript(parent, l.Strand)
		if t == nil {
			b.logger.Warn("CDS parent transcript not found",
				zap.Int("line_number", b.lineNumber),
				zap.String("parent", parent),
				zap.String("type", l.TypeText))
			continue
		}
		t.extendCDS(l.Start, l.End)
	}
}

func (b *Builder) unresolved(l *Line, parent string, kind FeatureType) error {
	err := &UnresolvedParentError{
		LineNumber: b.lineNumber,
		Line:       l.Raw,
		Parent:     parent,
		Kind:       kind,
		Strand:     l.Strand,
	}
	if !b.skipUnresolved {
		return err
	}
	b.stats.Skipped++
	b.logger.Warn("dropping line with unresolved parent", zap.Error(err))
	return nil
}
