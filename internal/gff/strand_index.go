package gff

type transcriptKey struct {
	id     string
	strand Strand
}

// StrandIndex keeps a chromosome's transcripts partitioned by strand, in
// insertion order, with an (id, strand) map for parent lookup.
type StrandIndex struct {
	plus    []*Transcript
	minus   []*Transcript
	unknown []*Transcript
	byKey   map[transcriptKey]*Transcript
}

func newStrandIndex() *StrandIndex {
	return &StrandIndex{byKey: make(map[transcriptKey]*Transcript)}
}

// Add registers t under its strand. A later transcript with the same id
// and strand replaces the earlier one for lookups.
func (s *StrandIndex) Add(t *Transcript) {
	switch t.Interval.Strand {
	case StrandPlus:
		s.plus = append(s.plus, t)
	case StrandMinus:
		s.minus = append(s.minus, t)
	default:
		s.unknown = append(s.unknown, t)
	}
	s.byKey[transcriptKey{t.ID, t.Interval.Strand}] = t
}

// Find returns the transcript with the given id on strand, or nil.
func (s *StrandIndex) Find(id string, strand Strand) *Transcript {
	return s.byKey[transcriptKey{id, strand}]
}

// Strand returns the transcripts on strand in insertion order.
func (s *StrandIndex) Strand(strand Strand) []*Transcript {
	switch strand {
	case StrandPlus:
		return s.plus
	case StrandMinus:
		return s.minus
	}
	return s.unknown
}

// Len returns the number of indexed transcripts.
func (s *StrandIndex) Len() int {
	return len(s.plus) + len(s.minus) + len(s.unknown)
}
