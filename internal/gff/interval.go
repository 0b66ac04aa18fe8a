// Package gff builds a gene/transcript/exon hierarchy from GFF3 feature lines.
package gff

// Strand is the orientation of a feature relative to the reference sequence.
type Strand int8

const (
	StrandUnknown Strand = 0
	StrandPlus    Strand = 1
	StrandMinus   Strand = -1
)

// parseStrand converts a strand column to a Strand.
func parseStrand(s string) Strand {
	switch s {
	case "+":
		return StrandPlus
	case "-":
		return StrandMinus
	}
	return StrandUnknown
}

// String returns the GFF column representation of the strand.
func (s Strand) String() string {
	switch s {
	case StrandPlus:
		return "+"
	case StrandMinus:
		return "-"
	}
	return "."
}

// Interval is a 1-based, inclusive genomic range on an interned sequence.
// Start <= End always holds for intervals built with NewInterval.
type Interval struct {
	SeqID  int
	Start  uint64
	End    uint64
	Strand Strand
}

// NewInterval returns an interval, swapping start and end if they are reversed.
func NewInterval(seqID int, start, end uint64, strand Strand) Interval {
	if end < start {
		start, end = end, start
	}
	return Interval{SeqID: seqID, Start: start, End: end, Strand: strand}
}

// Less orders intervals by start, then end. Strand and sequence only break
// ties between intervals that otherwise cover the same bases.
func (iv Interval) Less(o Interval) bool {
	if iv.Start != o.Start {
		return iv.Start < o.Start
	}
	if iv.End != o.End {
		return iv.End < o.End
	}
	if iv.Strand != o.Strand {
		return iv.Strand < o.Strand
	}
	return iv.SeqID < o.SeqID
}

// Contains returns true if pos lies within the interval.
func (iv Interval) Contains(pos uint64) bool {
	return pos >= iv.Start && pos <= iv.End
}

// Len returns the number of bases covered by the interval.
func (iv Interval) Len() uint64 {
	return iv.End - iv.Start + 1
}

// SeqTable interns sequence names to small integer ids in first-seen order.
// One table is shared by every interval built during a parsing run.
type SeqTable struct {
	ids   map[string]int
	names []string
}

// NewSeqTable creates an empty sequence name table.
func NewSeqTable() *SeqTable {
	return &SeqTable{ids: make(map[string]int)}
}

// Intern returns the id for name, assigning the next id if name is new.
func (t *SeqTable) Intern(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

// Lookup returns the id for name without assigning one.
func (t *SeqTable) Lookup(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the sequence name for id, or "" if id is unknown.
func (t *SeqTable) Name(id int) string {
	if id < 0 || id >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Len returns the number of interned names.
func (t *SeqTable) Len() int {
	return len(t.names)
}
